package state

import (
	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
)

// ApplyTransitions применяет результат оценки к коллекции и множеству уведомленных.
// Входные значения не изменяются, возвращаются новые.
func ApplyTransitions(items []models.TrackedItem, cls proximity.Classification, notified models.NotifiedSet) ([]models.TrackedItem, models.NotifiedSet) {
	updated := models.CloneItems(items)
	nextNotified := notified.Clone()

	away := make(map[uuid.UUID]struct{}, len(cls.ToAlert))
	for _, t := range cls.ToAlert {
		away[t.Item.ID] = struct{}{}
		nextNotified[t.Item.ID] = struct{}{}
	}
	back := make(map[uuid.UUID]struct{}, len(cls.ToReturn))
	for _, t := range cls.ToReturn {
		back[t.Item.ID] = struct{}{}
		delete(nextNotified, t.Item.ID)
	}

	for i := range updated {
		if _, ok := away[updated[i].ID]; ok {
			updated[i].IsAway = true
		}
		if _, ok := back[updated[i].ID]; ok {
			updated[i].IsAway = false
		}
	}

	return updated, nextNotified
}

// EditItem меняет имя, иконку и радиус предмета, сохраняя координату и дату создания.
// Редактирование заново "взводит" отслеживание: isAway сбрасывается, id удаляется из notified.
func EditItem(items []models.TrackedItem, id uuid.UUID, input models.ItemInput, notified models.NotifiedSet) ([]models.TrackedItem, models.NotifiedSet, models.TrackedItem, bool) {
	updated := models.CloneItems(items)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		updated[i].Name = input.Name
		updated[i].IconID = input.IconID
		updated[i].AlertDistance = input.AlertDistance
		updated[i].IsAway = false

		nextNotified := notified.Clone()
		delete(nextNotified, id)
		return updated, nextNotified, updated[i], true
	}
	return items, notified, models.TrackedItem{}, false
}

// RemoveItem удаляет предмет из коллекции и из множества уведомленных
func RemoveItem(items []models.TrackedItem, id uuid.UUID, notified models.NotifiedSet) ([]models.TrackedItem, models.NotifiedSet, bool) {
	updated := make([]models.TrackedItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		updated = append(updated, item)
	}
	if !found {
		return items, notified, false
	}

	nextNotified := notified.Clone()
	delete(nextNotified, id)
	return updated, nextNotified, true
}

// Package proximity классифицирует отслеживаемые предметы по текущей координате устройства.
package proximity

import (
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/pkg/geo"
)

// Transition - предмет, сменивший состояние, и расстояние до него в момент оценки
type Transition struct {
	Item     models.TrackedItem
	Distance float64
}

// Classification - результат одного прохода оценки
type Classification struct {
	ToAlert  []Transition
	ToReturn []Transition
}

// Empty сообщает, что оценка не нашла ни одного перехода
func (c Classification) Empty() bool {
	return len(c.ToAlert) == 0 && len(c.ToReturn) == 0
}

// Evaluate раскладывает предметы на newly-away и newly-returned.
// Граница радиуса считается "рядом". Предметы без координаты или радиуса пропускаются.
// Функция чистая: входные данные не изменяются.
func Evaluate(current *models.Location, items []models.TrackedItem, notified models.NotifiedSet) Classification {
	var result Classification
	if current == nil || len(items) == 0 {
		return result
	}

	for _, item := range items {
		if !item.Tracked() {
			continue
		}

		d := geo.Distance(current.Latitude, current.Longitude, item.Location.Latitude, item.Location.Longitude)

		switch {
		case d > item.AlertDistance && !item.IsAway && !notified.Has(item.ID):
			result.ToAlert = append(result.ToAlert, Transition{Item: item, Distance: d})
		case d <= item.AlertDistance && item.IsAway:
			// возврат не смотрит на notified: вернувшийся предмет распознается всегда
			result.ToReturn = append(result.ToReturn, Transition{Item: item, Distance: d})
		}
	}

	return result
}

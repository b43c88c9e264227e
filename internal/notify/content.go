package notify

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/proximity"
)

// batchNamesShown - сколько предметов перечисляется в групповом уведомлении до "and N more"
const batchNamesShown = 2

func roundMeters(d float64) int {
	return int(math.Round(d))
}

// AwayNotification - уведомление об одном оставленном предмете
func AwayNotification(t proximity.Transition) models.Notification {
	return models.Notification{
		Type:  models.NotificationItemAway,
		Title: "⚠️ Don't Forget!",
		Body:  fmt.Sprintf("You're %dm away from your %s", roundMeters(t.Distance), t.Item.Name),
		Data: map[string]any{
			"itemId":   t.Item.ID.String(),
			"itemName": t.Item.Name,
			"distance": roundMeters(t.Distance),
			"type":     models.NotificationItemAway,
		},
		Priority: "high",
		Badge:    1,
		Sound:    "default",
	}
}

// MultipleAwayNotification - одно групповое уведомление на несколько предметов
func MultipleAwayNotification(ts []proximity.Transition) models.Notification {
	count := len(ts)
	labels := make([]string, 0, count)
	ids := make([]string, 0, count)
	for _, t := range ts {
		labels = append(labels, fmt.Sprintf("%s (%dm)", t.Item.Name, roundMeters(t.Distance)))
		ids = append(ids, t.Item.ID.String())
	}

	body := "You're away from " + strings.Join(labels, ", ")
	if count > batchNamesShown {
		body = fmt.Sprintf("You're away from %s and %d more", strings.Join(labels[:batchNamesShown], ", "), count-batchNamesShown)
	}

	return models.Notification{
		Type:  models.NotificationMultipleItemsAway,
		Title: fmt.Sprintf("⚠️ Don't Forget %d Items!", count),
		Body:  body,
		Data: map[string]any{
			"itemIds":   ids,
			"itemCount": count,
			"type":      models.NotificationMultipleItemsAway,
		},
		Priority: "high",
		Badge:    count,
		Sound:    "default",
	}
}

// ReturnedNotification - уведомление о возвращении в радиус
func ReturnedNotification(item models.TrackedItem) models.Notification {
	return models.Notification{
		Type:  models.NotificationItemReturned,
		Title: "✅ Welcome Back!",
		Body:  fmt.Sprintf("You're back within range of your %s", item.Name),
		Data: map[string]any{
			"itemId":   item.ID.String(),
			"itemName": item.Name,
			"type":     models.NotificationItemReturned,
		},
		Priority: "default",
		Badge:    0,
		Sound:    "default",
	}
}

// AwayAlert - то же содержимое в виде модального окна приложения
func AwayAlert(ts []proximity.Transition, now time.Time) models.InAppAlert {
	if len(ts) == 1 {
		return models.InAppAlert{
			Title:     "⚠️ Don't Forget!",
			Message:   fmt.Sprintf("You're %dm away from your %s!", roundMeters(ts[0].Distance), ts[0].Item.Name),
			CreatedAt: now,
		}
	}

	lines := make([]string, 0, len(ts))
	for _, t := range ts {
		lines = append(lines, fmt.Sprintf("• %s (%dm away)", t.Item.Name, roundMeters(t.Distance)))
	}
	return models.InAppAlert{
		Title:     fmt.Sprintf("⚠️ Don't Forget %d Items!", len(ts)),
		Message:   strings.Join(lines, "\n"),
		CreatedAt: now,
	}
}

func transitionIDs(ts []proximity.Transition) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.Item.ID)
	}
	return ids
}

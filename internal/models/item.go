package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - координата устройства или сохраненного предмета
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TrackedItem - предмет, который пользователь не хочет забыть.
// Location и CreatedAt задаются при создании и больше не меняются.
type TrackedItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IconID        string    `json:"iconId"`
	Location      *Location `json:"location"`
	AlertDistance float64   `json:"alertDistance"`
	IsAway        bool      `json:"isAway"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Tracked сообщает, можно ли отслеживать предмет: без координаты или радиуса он никогда не алертит
func (i TrackedItem) Tracked() bool {
	return i.Location != nil && i.AlertDistance > 0
}

// ItemInput - изменяемые пользователем поля предмета
type ItemInput struct {
	Name          string
	IconID        string
	AlertDistance float64
}

// CloneItems возвращает копию слайса, чтобы снимки не разделяли память с владельцем
func CloneItems(items []TrackedItem) []TrackedItem {
	out := make([]TrackedItem, len(items))
	copy(out, items)
	return out
}

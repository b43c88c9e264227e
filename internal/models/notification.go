package models

import "time"

// Типы уведомлений, передаются в поле data.type
const (
	NotificationItemAway          = "item_away"
	NotificationMultipleItemsAway = "multiple_items_away"
	NotificationItemReturned      = "item_returned"
)

// Notification - содержимое push-уведомления
type Notification struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Body     string         `json:"body"`
	Data     map[string]any `json:"data,omitempty"`
	Priority string         `json:"priority"`
	Badge    int            `json:"badge"`
	Sound    string         `json:"sound"`
}

// Vibration - именованный паттерн вибрации и его тайминги в миллисекундах
type Vibration struct {
	Pattern   string `json:"pattern"`
	TimingsMs []int  `json:"timings_ms"`
}

// InAppAlert - модальное сообщение внутри приложения
type InAppAlert struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

package v1

import (
	"time"

	"github.com/google/uuid"
)

// ItemRequest DTO для создания и редактирования предмета
// @Description DTO для создания и редактирования предмета
type ItemRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	IconID        string  `json:"icon_id" validate:"required"`
	AlertDistance float64 `json:"alert_distance" validate:"required,gt=0"`
}

// LocationDTO координата
// @Description Координата
type LocationDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ItemResponse DTO для ответа с информацией о предмете
// @Description DTO для ответа с информацией о предмете
type ItemResponse struct {
	ID                uuid.UUID    `json:"id"`
	Name              string       `json:"name"`
	IconID            string       `json:"icon_id"`
	IconName          string       `json:"icon_name"`
	Location          *LocationDTO `json:"location,omitempty"`
	AlertDistance     float64      `json:"alert_distance"`
	AlertDistanceText string       `json:"alert_distance_text"`
	IsAway            bool         `json:"is_away"`
	Distance          *float64     `json:"distance,omitempty"`
	DistanceText      string       `json:"distance_text,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
}

// PermissionsRequest DTO с решениями пользователя по разрешениям
// @Description DTO с решениями пользователя по разрешениям
type PermissionsRequest struct {
	Location      string `json:"location" validate:"required,oneof=granted denied"`
	Notifications string `json:"notifications" validate:"required,oneof=granted denied"`
}

// TrackingStatusResponse DTO состояния отслеживания
// @Description DTO состояния отслеживания
type TrackingStatusResponse struct {
	State         string       `json:"state"`
	Location      *LocationDTO `json:"location,omitempty"`
	ItemCount     int          `json:"item_count"`
	AwayCount     int          `json:"away_count"`
	NotifiedCount int          `json:"notified_count"`
}

// AlertResponse DTO модального сообщения
// @Description DTO модального сообщения
type AlertResponse struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// PremiumRequest DTO для изменения премиум-доступа
// @Description DTO для изменения премиум-доступа
type PremiumRequest struct {
	Premium *bool `json:"premium" validate:"required"`
}

// PremiumResponse DTO премиум-доступа
// @Description DTO премиум-доступа
type PremiumResponse struct {
	Premium   bool   `json:"premium"`
	ItemCount int    `json:"item_count"`
	ItemLimit int    `json:"item_limit,omitempty"`
	Message   string `json:"message,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	FixCount int `json:"fix_count"`
}

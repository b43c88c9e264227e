package models

import (
	"time"
)

// LocationFix представляет запись о полученной координате устройства
type LocationFix struct {
	ID         int64     `json:"id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	AwayCount  int       `json:"away_count"`
	RecordedAt time.Time `json:"recorded_at"`
}

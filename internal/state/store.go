// Package state хранит и сохраняет состояние алертов по предметам.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotFound возвращается хранилищем, если по ключу ничего не сохранено
var ErrNotFound = errors.New("collection not found")

// Storage - внешнее key-value хранилище сериализованной коллекции
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
}

// Store сериализует коллекцию предметов в JSON и сохраняет ее целиком под одним ключом
type Store struct {
	storage Storage
	key     string
	logger  *logrus.Logger
}

func NewStore(storage Storage, key string, logger *logrus.Logger) *Store {
	return &Store{
		storage: storage,
		key:     key,
		logger:  logger,
	}
}

// itemRecord - сохраненная запись; указатели отличают отсутствующие поля от нулевых
type itemRecord struct {
	ID            *uuid.UUID       `json:"id"`
	Name          *string          `json:"name"`
	IconID        string           `json:"iconId"`
	Location      *models.Location `json:"location"`
	AlertDistance float64          `json:"alertDistance"`
	IsAway        bool             `json:"isAway"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Load читает коллекцию. Отсутствие данных - это пустая коллекция.
// Битые записи (без id или имени, нераспознаваемые) молча отбрасываются.
func (s *Store) Load(ctx context.Context) ([]models.TrackedItem, error) {
	payload, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []models.TrackedItem{}, nil
		}
		return nil, fmt.Errorf("state: could not load items: %w", err)
	}

	items, skipped, err := DecodeItems(payload)
	if err != nil {
		return nil, fmt.Errorf("state: could not decode items: %w", err)
	}
	if skipped > 0 {
		s.logger.WithFields(logrus.Fields{
			"component": "state",
			"key":       s.key,
			"skipped":   skipped,
		}).Warn("Dropped malformed item records on load")
	}
	return items, nil
}

// Save сохраняет коллекцию целиком: хранилище либо принимает ее полностью, либо возвращает ошибку
func (s *Store) Save(ctx context.Context, items []models.TrackedItem) error {
	payload, err := EncodeItems(items)
	if err != nil {
		return fmt.Errorf("state: could not encode items: %w", err)
	}
	if err := s.storage.Save(ctx, s.key, payload); err != nil {
		return fmt.Errorf("state: could not save items: %w", err)
	}
	return nil
}

// EncodeItems сериализует коллекцию в упорядоченный JSON-список
func EncodeItems(items []models.TrackedItem) ([]byte, error) {
	if items == nil {
		items = []models.TrackedItem{}
	}
	return json.Marshal(items)
}

// DecodeItems разбирает JSON-список, пропуская битые записи. Возвращает число пропущенных.
func DecodeItems(payload []byte) ([]models.TrackedItem, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, 0, err
	}

	items := make([]models.TrackedItem, 0, len(raw))
	skipped := 0
	for _, r := range raw {
		var rec itemRecord
		if err := json.Unmarshal(r, &rec); err != nil {
			skipped++
			continue
		}
		if rec.ID == nil || *rec.ID == uuid.Nil || rec.Name == nil || *rec.Name == "" {
			skipped++
			continue
		}
		items = append(items, models.TrackedItem{
			ID:            *rec.ID,
			Name:          *rec.Name,
			IconID:        rec.IconID,
			Location:      rec.Location,
			AlertDistance: rec.AlertDistance,
			IsAway:        rec.IsAway,
			CreatedAt:     rec.CreatedAt,
		})
	}
	return items, skipped, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dont_forget_tracker/internal/models"
	"github.com/shenikar/dont_forget_tracker/internal/state"
)

// DB - часть *pgxpool.Pool, которой пользуется репозиторий
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ItemRepository struct {
	db          DB
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewItemRepository(db DB, redisClient *redis.Client, cacheTTL time.Duration) *ItemRepository {
	return &ItemRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Load возвращает сериализованную коллекцию: сначала из кеша, затем из бд
func (r *ItemRepository) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.getFromCache(ctx, key)
	if err == nil && payload != nil {
		return payload, nil
	}

	query := `
		SELECT payload
		FROM item_collections
		WHERE key = $1;
	`
	err = r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, state.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load item collection: %w", err)
	}

	// Ошибка кеша не мешает чтению
	_ = r.setCache(ctx, key, payload)
	return payload, nil
}

// Save целиком заменяет коллекцию одной командой. Кеш сбрасывается до записи,
// после записи заполняется заново; закоммиченная запись не возвращает ошибку.
func (r *ItemRepository) Save(ctx context.Context, key string, payload []byte) error {
	// без сброса кеш пережил бы запись со старым значением
	if err := r.invalidateCache(ctx, key); err != nil {
		return err
	}

	query := `
		INSERT INTO item_collections (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, key, payload); err != nil {
		return fmt.Errorf("failed to save item collection: %w", err)
	}

	// Ошибка кеша после коммита не делает запись неудачной: следующий Load прочитает бд
	_ = r.setCache(ctx, key, payload)
	return nil
}

// SaveLocationFix сохраняет запись о полученной координате в бд
func (r *ItemRepository) SaveLocationFix(ctx context.Context, fix *models.LocationFix) error {
	query := `
		INSERT INTO location_fixes (location, away_count)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3) RETURNING id, recorded_at;
	`
	err := r.db.QueryRow(ctx, query,
		fix.Longitude,
		fix.Latitude,
		fix.AwayCount,
	).Scan(&fix.ID, &fix.RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to save location fix: %w", err)
	}
	return nil
}

// GetLocationFixStats возвращает количество координат за последние minutes минут
func (r *ItemRepository) GetLocationFixStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM location_fixes
		WHERE recorded_at >= NOW() - make_interval(mins => $1);
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location fix stats: %w", err)
	}
	return count, nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("items:%s", key)
}

// getFromCache возвращает nil без ошибки при промахе
func (r *ItemRepository) getFromCache(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redisClient.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get items from cache: %w", err)
	}
	return val, nil
}

func (r *ItemRepository) setCache(ctx context.Context, key string, payload []byte) error {
	if err := r.redisClient.Set(ctx, cacheKey(key), payload, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set items in cache: %w", err)
	}
	return nil
}

// invalidateCache удаляет коллекцию из Redis кэша
func (r *ItemRepository) invalidateCache(ctx context.Context, key string) error {
	if err := r.redisClient.Del(ctx, cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate items cache: %w", err)
	}
	return nil
}

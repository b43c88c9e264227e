package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dont_forget_tracker/internal/models"
)

const (
	pushQueueKey = "push_jobs"
)

// Типы заданий в очереди доставки
const (
	JobNotification = "notification"
	JobVibration    = "vibration"
)

// PushJob - задание для воркера доставки
type PushJob struct {
	DeliveryID   string               `json:"delivery_id"`
	Kind         string               `json:"kind"`
	Notification *models.Notification `json:"notification,omitempty"`
	Vibration    *models.Vibration    `json:"vibration,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
}

// PermissionSource сообщает, разрешил ли пользователь уведомления на устройстве
type PermissionSource interface {
	NotificationsGranted() bool
}

// RedisNotifier - реализация Notifier, которая кладет задания в очередь Redis
type RedisNotifier struct {
	redisClient *redis.Client
	permissions PermissionSource
}

// NewRedisNotifier создает новый RedisNotifier
func NewRedisNotifier(client *redis.Client, permissions PermissionSource) *RedisNotifier {
	return &RedisNotifier{
		redisClient: client,
		permissions: permissions,
	}
}

// RequestPermission возвращает последнее разрешение, сообщенное устройством
func (n *RedisNotifier) RequestPermission(_ context.Context) (bool, error) {
	return n.permissions.NotificationsGranted(), nil
}

// Send публикует уведомление и возвращает идентификатор доставки
func (n *RedisNotifier) Send(ctx context.Context, notification models.Notification) (string, error) {
	job := PushJob{
		DeliveryID:   uuid.NewString(),
		Kind:         JobNotification,
		Notification: &notification,
		Timestamp:    time.Now().UTC(),
	}
	if err := n.publish(ctx, job); err != nil {
		return "", err
	}
	return job.DeliveryID, nil
}

// Vibrate публикует команду вибрации. Разрешение на уведомления для нее не требуется.
func (n *RedisNotifier) Vibrate(ctx context.Context, vibration models.Vibration) error {
	return n.publish(ctx, PushJob{
		DeliveryID: uuid.NewString(),
		Kind:       JobVibration,
		Vibration:  &vibration,
		Timestamp:  time.Now().UTC(),
	})
}

func (n *RedisNotifier) publish(ctx context.Context, job PushJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal push job: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := n.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push job to Redis: %w", err)
	}
	return nil
}

package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dont_forget_tracker/internal/models"
)

const inAppAlertsKey = "in_app_alerts"

// RedisInbox - очередь модальных сообщений, которые приложение забирает при следующем опросе
type RedisInbox struct {
	redisClient *redis.Client
}

func NewRedisInbox(client *redis.Client) *RedisInbox {
	return &RedisInbox{redisClient: client}
}

// ShowAlert синхронно записывает сообщение; после возврата без ошибки оно гарантированно в очереди
func (i *RedisInbox) ShowAlert(ctx context.Context, alert models.InAppAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal in-app alert: %w", err)
	}
	if err := i.redisClient.RPush(ctx, inAppAlertsKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to store in-app alert: %w", err)
	}
	return nil
}

// Drain возвращает все ожидающие сообщения в порядке появления и очищает очередь
func (i *RedisInbox) Drain(ctx context.Context) ([]models.InAppAlert, error) {
	var rangeCmd *redis.StringSliceCmd
	_, err := i.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(ctx, inAppAlertsKey, 0, -1)
		pipe.Del(ctx, inAppAlertsKey)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to drain in-app alerts: %w", err)
	}

	alerts := make([]models.InAppAlert, 0, len(rangeCmd.Val()))
	for _, raw := range rangeCmd.Val() {
		var alert models.InAppAlert
		if err := json.Unmarshal([]byte(raw), &alert); err != nil {
			continue
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

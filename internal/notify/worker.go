package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dont_forget_tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// PushWorker забирает задания из очереди и передает их push-шлюзу
type PushWorker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewPushWorker создает новый PushWorker
func NewPushWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *PushWorker {
	return &PushWorker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди заданий
func (w *PushWorker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop push job from Redis")
					time.Sleep(w.cfg.PushTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var job PushJob
				if err := json.Unmarshal([]byte(payload), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push job from Redis")
					continue
				}

				w.processPushJob(ctx, job, payload)
			}
		}
	}()
}

// processPushJob доставляет задание. Количество попыток задается PUSH_MAX_ATTEMPTS.
func (w *PushWorker) processPushJob(ctx context.Context, job PushJob, rawPayload string) bool {
	log := w.logger.WithField("delivery_id", job.DeliveryID).WithField("kind", job.Kind)
	log.Debug("Processing push job...")

	if w.cfg.PushGatewayURL == "" {
		log.Warn("Push gateway URL is not configured. Skipping delivery.")
		return false
	}

	maxAttempts := w.cfg.PushMaxAttempts
	delay := w.cfg.PushBaseDelay

	for i := 0; i < maxAttempts; i++ {
		err := w.deliver(ctx, rawPayload)
		if err == nil {
			log.Info("Push job delivered successfully.")
			return true
		}

		attemptsLeft := maxAttempts - 1 - i
		if attemptsLeft == 0 {
			log.WithError(err).Warn("Push delivery failed.")
			break
		}
		log.WithError(err).Warnf("Push delivery failed. Retrying in %v. Attempts left: %d", delay, attemptsLeft)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to deliver push job after %d attempt(s).", maxAttempts)
	return false
}

func (w *PushWorker) deliver(ctx context.Context, rawPayload string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.PushGatewayURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если PUSH_GATEWAY_SECRET задан
	if w.cfg.PushGatewaySecret != "" {
		req.Header.Set("X-Push-Signature", generateHMACSHA256(rawPayload, w.cfg.PushGatewaySecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push gateway responded with status %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

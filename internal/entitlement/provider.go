package entitlement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const premiumKey = "is_premium"

// RedisProvider хранит флаг премиум-доступа в Redis.
// Проверка покупки выполняется снаружи, сюда попадает уже подтвержденный результат.
type RedisProvider struct {
	redisClient *redis.Client
}

func NewRedisProvider(client *redis.Client) *RedisProvider {
	return &RedisProvider{redisClient: client}
}

// IsPremium возвращает false, если флаг ни разу не устанавливался
func (p *RedisProvider) IsPremium(ctx context.Context) (bool, error) {
	val, err := p.redisClient.Get(ctx, premiumKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read premium flag: %w", err)
	}
	premium, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("failed to parse premium flag %q: %w", val, err)
	}
	return premium, nil
}

// SetPremium сохраняет флаг без срока жизни
func (p *RedisProvider) SetPremium(ctx context.Context, premium bool) error {
	if err := p.redisClient.Set(ctx, premiumKey, strconv.FormatBool(premium), 0).Err(); err != nil {
		return fmt.Errorf("failed to store premium flag: %w", err)
	}
	return nil
}

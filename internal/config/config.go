package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Push gateway Config
	PushGatewayURL    string        `env:"PUSH_GATEWAY_URL"`
	PushGatewaySecret string        `env:"PUSH_GATEWAY_SECRET"`
	PushTimeout       time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxAttempts   int           `env:"PUSH_MAX_ATTEMPTS" envDefault:"1"`
	PushBaseDelay     time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// Storage Config
	StorageKey   string        `env:"STORAGE_KEY" envDefault:"dontForgetItems"`
	ItemCacheTTL time.Duration `env:"ITEM_CACHE_TTL" envDefault:"5m"`

	// Location tracking Config
	LocationMinInterval time.Duration `env:"LOCATION_MIN_INTERVAL" envDefault:"10s"`
	LocationMinDistance float64       `env:"LOCATION_MIN_DISTANCE" envDefault:"10"`
	LocationFixTimeout  time.Duration `env:"LOCATION_FIX_TIMEOUT" envDefault:"30s"`
	DevicePlatform      string        `env:"DEVICE_PLATFORM" envDefault:"ios"`

	// Paywall Config
	FreeItemLimit int    `env:"FREE_ITEM_LIMIT" envDefault:"5"`
	CatalogFile   string `env:"CATALOG_FILE"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		PushGatewayURL:         os.Getenv("PUSH_GATEWAY_URL"),
		PushGatewaySecret:      os.Getenv("PUSH_GATEWAY_SECRET"),
		PushTimeout:            getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushMaxAttempts:        getEnvAsInt("PUSH_MAX_ATTEMPTS", 1),
		PushBaseDelay:          getEnvAsDuration("PUSH_BASE_DELAY", time.Second),
		StorageKey:             getEnv("STORAGE_KEY", "dontForgetItems"),
		ItemCacheTTL:           getEnvAsDuration("ITEM_CACHE_TTL", 5*time.Minute),
		LocationMinInterval:    getEnvAsDuration("LOCATION_MIN_INTERVAL", 10*time.Second),
		LocationMinDistance:    getEnvAsFloat("LOCATION_MIN_DISTANCE", 10),
		LocationFixTimeout:     getEnvAsDuration("LOCATION_FIX_TIMEOUT", 30*time.Second),
		DevicePlatform:         strings.ToLower(getEnv("DEVICE_PLATFORM", "ios")),
		FreeItemLimit:          getEnvAsInt("FREE_ITEM_LIMIT", 5),
		CatalogFile:            os.Getenv("CATALOG_FILE"),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.PushMaxAttempts < 1 {
		cfg.PushMaxAttempts = 1
	}
	if cfg.DevicePlatform != "ios" && cfg.DevicePlatform != "android" {
		return nil, fmt.Errorf("DEVICE_PLATFORM must be ios or android, got %q", cfg.DevicePlatform)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

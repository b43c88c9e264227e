package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/dont_forget_tracker/internal/catalog"
	"github.com/shenikar/dont_forget_tracker/internal/config"
	"github.com/shenikar/dont_forget_tracker/internal/device"
	"github.com/shenikar/dont_forget_tracker/internal/entitlement"
	v1 "github.com/shenikar/dont_forget_tracker/internal/handler/http/v1"
	"github.com/shenikar/dont_forget_tracker/internal/metrics"
	"github.com/shenikar/dont_forget_tracker/internal/notify"
	"github.com/shenikar/dont_forget_tracker/internal/repository"
	"github.com/shenikar/dont_forget_tracker/internal/service"
	"github.com/shenikar/dont_forget_tracker/internal/state"
	"github.com/shenikar/dont_forget_tracker/pkg/logger"
	"github.com/shenikar/dont_forget_tracker/pkg/postgres"
	redisclient "github.com/shenikar/dont_forget_tracker/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/dont_forget_tracker/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Don't Forget Tracker API
// @version 1.0
// @description Tracks items left behind and alerts when the device moves away from them.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Справочник иконок и радиусов
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Источник координат и разрешений устройства
	feed := device.NewFeed(cfg.LocationFixTimeout)

	// Инициализация репозиториев
	itemRepo := repository.NewItemRepository(dbpool, redisClient, cfg.ItemCacheTTL)
	store := state.NewStore(itemRepo, cfg.StorageKey, log)

	// Доставка уведомлений: очередь в Redis и воркер push-шлюза
	notifier := notify.NewRedisNotifier(redisClient, feed)
	pushWorker := notify.NewPushWorker(redisClient, log, cfg)
	pushWorker.Start(ctx)
	inbox := notify.NewRedisInbox(redisClient)

	premium := entitlement.NewRedisProvider(redisClient)
	policy := entitlement.NewPolicy(cat, cfg.FreeItemLimit)
	dispatcher := notify.NewDispatcher(notifier, inbox, premium, cfg.DevicePlatform, log, appMetrics)

	// Инициализация сервисов
	tracker := service.NewTracker(
		store, feed, dispatcher, notifier, premium, inbox, itemRepo,
		policy, cat, log, appMetrics,
		service.TrackerOptions{
			Watch: device.WatchOptions{
				MinInterval: cfg.LocationMinInterval,
				MinDistance: cfg.LocationMinDistance,
			},
			StatsWindowMinutes: cfg.StatsTimeWindowMinutes,
		},
	)
	trackerDone := make(chan struct{})
	go func() {
		defer close(trackerDone)
		if err := tracker.Run(ctx); err != nil {
			log.WithError(err).Error("Tracker stopped with error")
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(tracker, feed, cat, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Остановка трекера снимает подписку на координаты
	cancel()
	<-trackerDone

	log.Info("Server gracefully stopped")
}

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
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/coastal_verification_system/internal/config"
	v1 "github.com/shenikar/coastal_verification_system/internal/handler/http/v1"
	"github.com/shenikar/coastal_verification_system/internal/notify"
	"github.com/shenikar/coastal_verification_system/internal/observability"
	"github.com/shenikar/coastal_verification_system/internal/queue"
	"github.com/shenikar/coastal_verification_system/internal/repository"
	"github.com/shenikar/coastal_verification_system/internal/service"
	"github.com/shenikar/coastal_verification_system/internal/ticket"
	"github.com/shenikar/coastal_verification_system/internal/verifier"
	"github.com/shenikar/coastal_verification_system/internal/verifier/layers"
	"github.com/shenikar/coastal_verification_system/pkg/logger"
	"github.com/shenikar/coastal_verification_system/pkg/postgres"
	redisclient "github.com/shenikar/coastal_verification_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/coastal_verification_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Coastal Verification System API
// @version 1.0
// @description Verification orchestration engine for coastal hazard reports.
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
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Метрики Prometheus
	metrics := observability.NewMetrics()

	// Инициализация издателя и воркера уведомлений репортерам
	notifier := notify.NewRedisPublisher(redisClient)
	notifyWorker := notify.NewWorker(redisClient, log, cfg, metrics)
	notifyWorker.Start(ctx)

	// Клиенты внешних источников данных слоев
	geofenceClient := layers.NewHTTPGeofenceClient(cfg.GeofenceURL, cfg.LayerTimeout)
	environmentClient := layers.NewHTTPEnvironmentClient(cfg.WeatherURL, cfg.LayerTimeout)
	textClassifier := layers.NewHTTPTextClassifier(cfg.TextClassifierURL, cfg.LayerTimeout)
	imageClassifier := layers.NewHTTPImageClassifier(cfg.ImageClassifierURL, cfg.LayerTimeout)
	credibilityStore := layers.NewHTTPCredibilityStore(cfg.CredibilityURL, cfg.LayerTimeout)

	// Реестр слоев с валидацией таблицы весов
	registry, err := verifier.NewRegistry(cfg.LayerWeights,
		layers.NewGeofenceEvaluator(geofenceClient),
		layers.NewWeatherEvaluator(environmentClient),
		layers.NewTextEvaluator(textClassifier),
		layers.NewImageEvaluator(imageClassifier),
		layers.NewReporterEvaluator(credibilityStore),
	)
	if err != nil {
		log.Fatalf("Failed to build layer registry: %v", err)
	}

	// Координатор оценки: фан-аут по слоям, ретраи, здоровье слоев
	health := verifier.NewHealthTracker(cfg.HealthWindowSize, cfg.DegradedErrorRate, cfg.DownErrorRate)
	coordinator := verifier.NewCoordinator(registry, log, clockwork.NewRealClock(), metrics, health, verifier.CoordinatorOptions{
		LayerTimeout:  cfg.LayerTimeout,
		MaxRetries:    cfg.LayerMaxRetries,
		BaseDelay:     cfg.RetryBaseDelay,
		MaxConcurrent: cfg.MaxConcurrentLayers,
	})

	// Инициализация репозитория, очереди и тикетного клиента
	verificationRepo := repository.NewVerificationRepository(dbpool, redisClient)
	queueManager := queue.NewManager(dbpool, redisClient, log, metrics, cfg)
	ticketClient := ticket.NewHTTPClient(cfg.TicketURL, cfg.TicketTimeout)

	// Инициализация сервиса верификации
	verificationService := service.NewVerificationService(
		verificationRepo,
		queueManager,
		coordinator,
		ticketClient,
		notifier,
		metrics,
		log,
		cfg,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(verificationService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршрут метрик Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
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

	log.Info("Server gracefully stopped")
}

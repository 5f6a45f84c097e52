package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
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

	"github.com/shenikar/forest_fire_monitoring/internal/audit"
	"github.com/shenikar/forest_fire_monitoring/internal/config"
	v1 "github.com/shenikar/forest_fire_monitoring/internal/handler/http/v1"
	"github.com/shenikar/forest_fire_monitoring/internal/preferences"
	"github.com/shenikar/forest_fire_monitoring/internal/service"
	"github.com/shenikar/forest_fire_monitoring/internal/simulation"
	"github.com/shenikar/forest_fire_monitoring/internal/webhook"
	"github.com/shenikar/forest_fire_monitoring/pkg/logger"
	"github.com/shenikar/forest_fire_monitoring/pkg/postgres"
	redisclient "github.com/shenikar/forest_fire_monitoring/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/forest_fire_monitoring/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Forest Fire Monitoring API
// @version 1.0
// @description Simulated monitoring state engine for a forest fire camera network.
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

	// PostgreSQL опционален: архив журнала аудита включается только при
	// заданном DATABASE_URL, движок симуляции живет в памяти
	var archive audit.ArchiveSink
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL, audit archive enabled")

		archive = audit.NewPostgresArchive(dbpool)
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий о тревогах
	alertPublisher := webhook.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Движок симуляции и журнал аудита
	engine := simulation.NewEngine(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	recorder := audit.NewRecorder(cfg.AuditEntityTypes, archive, log)
	recorder.SeedFromCameras(ctx, engine.Cameras())

	// Инициализация сервисов
	monitoringService := service.NewMonitoringService(engine, recorder, alertPublisher, log)

	// Запуск цикла симуляции
	simulator := simulation.NewSimulator(engine, cfg.TickInterval, log, monitoringService.OnTick)
	simulator.Start(ctx)

	// Хранилище настроек панели
	prefsStore := preferences.NewStore(redisClient)

	// Инициализация хэндлеров
	handler := v1.NewHandler(monitoringService, prefsStore, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

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

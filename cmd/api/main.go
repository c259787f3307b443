package main

// @title Best Time Service API
// @version 1.0.0
// @description Сервис рекомендаций лучшего времени для поездки. Определяет лучшие и нежелательные месяцы для посещения города или произвольных координат по климатическому и туристическому профилю локации.
// @description
// @description Основные возможности:
// @description - Рекомендация по имени города (встроенный справочник + курируемые записи)
// @description - Рекомендация по координатам через подбор похожей эталонной локации
// @description - Свободный текстовый поиск с геокодированием
// @description - Список известных направлений
// @description - Обогащение ответов текущей погодой

// @contact.name API Support
// @contact.email support@besttime-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/besttime-service/docs"
	"github.com/besttime-service/internal/besttime"
	"github.com/besttime-service/internal/config"
	httpDelivery "github.com/besttime-service/internal/delivery/http"
	"github.com/besttime-service/internal/delivery/http/handler"
	"github.com/besttime-service/internal/domain/repository"
	"github.com/besttime-service/internal/infrastructure/geocoding"
	"github.com/besttime-service/internal/infrastructure/weather"
	"github.com/besttime-service/internal/pkg/logger"
	"github.com/besttime-service/internal/repository/cache"
	"github.com/besttime-service/internal/repository/memory"
	"github.com/besttime-service/internal/repository/postgres"
	"github.com/besttime-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Best Time Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Built-in reference store (validated at startup)
	referenceRepo, err := memory.NewReferenceRepository()
	if err != nil {
		log.Fatal("Failed to build reference store", zap.Error(err))
	}
	log.Info("Reference store loaded",
		zap.Int("locations", len(referenceRepo.All())))

	// 4. Connect to PostgreSQL (опционально: без БД сервис работает
	// только по встроенному справочнику)
	var destinationRepo repository.DestinationRepository
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Warn("PostgreSQL unavailable, curated destinations disabled", zap.Error(err))
	} else {
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		destinationRepo = postgres.NewDestinationRepository(db, log)
	}

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize repositories and external clients
	cacheRepo := cache.NewCacheRepository(redisClient)

	var geocodingRepo repository.GeocodingRepository
	if cfg.Geocoding.BaseURL != "" {
		geocodingRepo = geocoding.NewGeocodingClient(&cfg.Geocoding, log)
	}

	var weatherRepo repository.WeatherRepository
	if cfg.Weather.BaseURL != "" && cfg.Weather.APIKey != "" {
		weatherRepo = weather.NewWeatherClient(&cfg.Weather, log)
	}

	log.Info("Repositories initialized")

	// 8. Initialize engine and use cases
	engine := besttime.NewEngine(besttime.DefaultParams())

	bestTimeUC := usecase.NewBestTimeUseCase(
		referenceRepo,
		destinationRepo,
		cacheRepo,
		geocodingRepo,
		weatherRepo,
		engine,
		log,
		cfg.Cache.BestTimeCacheTTL,
	)

	destinationUC := usecase.NewDestinationUseCase(
		referenceRepo,
		destinationRepo,
		engine,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers and server
	bestTimeHandler := handler.NewBestTimeHandler(bestTimeUC, log)
	destinationHandler := handler.NewDestinationHandler(destinationUC, log)

	server := httpDelivery.NewServer(
		cfg,
		log,
		bestTimeHandler,
		destinationHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

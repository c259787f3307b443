package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/besttime-service/internal/besttime"
	"github.com/besttime-service/internal/config"
	"github.com/besttime-service/internal/domain/repository"
	"github.com/besttime-service/internal/infrastructure/geocoding"
	"github.com/besttime-service/internal/pkg/logger"
	"github.com/besttime-service/internal/repository/cache"
	"github.com/besttime-service/internal/repository/memory"
	"github.com/besttime-service/internal/repository/postgres"
	redisRepo "github.com/besttime-service/internal/repository/redis"
	"github.com/besttime-service/internal/usecase"
	"github.com/besttime-service/internal/worker"
	workerBestTime "github.com/besttime-service/internal/worker/besttime"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Best Time Precompute Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("batch_size", cfg.Worker.BatchSize),
		zap.Int("max_retries", cfg.Worker.MaxRetries))

	// 3. Built-in reference store
	referenceRepo, err := memory.NewReferenceRepository()
	if err != nil {
		log.Fatal("Failed to build reference store", zap.Error(err))
	}

	// 4. Connect to PostgreSQL (опционально)
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

	// 6. Initialize repositories and use case.
	// Погода воркеру не нужна: кеш прогревается базовым результатом.
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	var geocodingRepo repository.GeocodingRepository
	if cfg.Geocoding.BaseURL != "" {
		geocodingRepo = geocoding.NewGeocodingClient(&cfg.Geocoding, log)
	}

	engine := besttime.NewEngine(besttime.DefaultParams())

	bestTimeUC := usecase.NewBestTimeUseCase(
		referenceRepo,
		destinationRepo,
		cacheRepo,
		geocodingRepo,
		nil,
		engine,
		log,
		cfg.Cache.BestTimeCacheTTL,
	)

	// 7. Initialize workers
	precomputeWorker := workerBestTime.NewPrecomputeWorker(
		streamRepo,
		bestTimeUC,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxRetries,
		log,
	)

	// 8. Create worker manager and register workers
	manager := worker.NewManager(log)
	manager.Register(precomputeWorker)

	// 9. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := manager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker shutdown complete")
}

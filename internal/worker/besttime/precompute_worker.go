// Package besttime содержит воркер предрасчёта рекомендаций.
//
// Backend публикует события в stream:besttime:precompute; воркер считает
// рекомендацию, прогревает кеш (через use case) и публикует результат
// в stream:besttime:done. Ошибка расчёта отражается в done-событии,
// а не роняет воркер.
package besttime

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/domain/repository"
	"github.com/besttime-service/internal/usecase"
	"github.com/besttime-service/internal/usecase/dto"
	"github.com/besttime-service/internal/worker"
)

const emptyQueueSleep = 100 * time.Millisecond

// PrecomputeWorker обрабатывает события предрасчёта рекомендаций
type PrecomputeWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	bestTimeUC   *usecase.BestTimeUseCase
	consumerName string
	batchSize    int
	maxRetries   int
}

// NewPrecomputeWorker создает новый PrecomputeWorker
func NewPrecomputeWorker(
	streamRepo repository.StreamRepository,
	bestTimeUC *usecase.BestTimeUseCase,
	consumerGroup string,
	batchSize int,
	maxRetries int,
	logger *zap.Logger,
) *PrecomputeWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &PrecomputeWorker{
		BaseWorker:   worker.NewBaseWorker("besttime-precompute", consumerGroup, logger),
		streamRepo:   streamRepo,
		bestTimeUC:   bestTimeUC,
		consumerName: consumerName,
		batchSize:    batchSize,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *PrecomputeWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting PrecomputeWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamBestTimePrecompute, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Очередь пуста - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений.
func (w *PrecomputeWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamBestTimePrecompute,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamBestTimePrecompute, w.ConsumerGroup(), msg.ID)
			continue
		}

		doneEvent := w.process(ctx, event)

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamBestTimeDone, doneEvent); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			// Без ACK: сообщение будет переобработано
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamBestTimePrecompute, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// process вычисляет рекомендацию для события.
// Координаты в событии имеют приоритет над именем города.
func (w *PrecomputeWorker) process(ctx context.Context, event *domain.BestTimePrecomputeEvent) *domain.BestTimeDoneEvent {
	done := &domain.BestTimeDoneEvent{RequestID: event.RequestID}

	var (
		result *dto.BestTimeResponse
		err    error
	)

	if event.HasCoordinates() {
		result, err = w.bestTimeUC.GetByCoordinates(ctx, dto.CoordinatesRequest{
			Lat: *event.Latitude,
			Lon: *event.Longitude,
		})
	} else {
		req := dto.CityRequest{City: event.CityName}
		if event.Country != nil {
			req.Country = *event.Country
		}
		result, err = w.bestTimeUC.GetByCity(ctx, req)
	}

	switch {
	case err != nil:
		done.Error = err.Error()
	case result == nil:
		done.Error = "no best time data found"
	default:
		done.Result = &result.BestTimeResult
	}

	return done
}

// parseMessage парсит сообщение из стрима в BestTimePrecomputeEvent
func (w *PrecomputeWorker) parseMessage(msg domain.StreamMessage) (*domain.BestTimePrecomputeEvent, error) {
	var event domain.BestTimePrecomputeEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.CityName == "" && !event.HasCoordinates() {
		return nil, fmt.Errorf("event has neither city name nor coordinates")
	}

	return &event, nil
}

package besttime_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	enginepkg "github.com/besttime-service/internal/besttime"
	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/repository/memory"
	"github.com/besttime-service/internal/usecase"
	workerbesttime "github.com/besttime-service/internal/worker/besttime"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func newBestTimeUseCase(t *testing.T) *usecase.BestTimeUseCase {
	t.Helper()

	referenceRepo, err := memory.NewReferenceRepository()
	require.NoError(t, err)

	engine := enginepkg.NewEngine(enginepkg.DefaultParams())
	return usecase.NewBestTimeUseCase(
		referenceRepo, nil, nil, nil, nil,
		engine, zap.NewNop(), time.Hour,
	)
}

func TestPrecomputeWorker_Name(t *testing.T) {
	worker := workerbesttime.NewPrecomputeWorker(
		&MockStreamRepository{}, newBestTimeUseCase(t),
		"test-group", 10, 3, zap.NewNop(),
	)

	assert.Equal(t, "besttime-precompute", worker.Name())
}

func TestPrecomputeWorker_Stop(t *testing.T) {
	worker := workerbesttime.NewPrecomputeWorker(
		&MockStreamRepository{}, newBestTimeUseCase(t),
		"test-group", 10, 3, zap.NewNop(),
	)

	// Stop безопасен до запуска и при повторных вызовах
	assert.NoError(t, worker.Stop())
	assert.NoError(t, worker.Stop())
}

func TestPrecomputeWorker_ContextCancellation(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamBestTimePrecompute, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamBestTimePrecompute, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{}, nil)

	worker := workerbesttime.NewPrecomputeWorker(
		mockStream, newBestTimeUseCase(t),
		"test-group", 10, 3, zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop on context cancellation")
	}

	mockStream.AssertExpectations(t)
}

func TestPrecomputeWorker_BatchProcessing(t *testing.T) {
	mockStream := &MockStreamRepository{}

	requestID := uuid.New()
	event := &domain.BestTimePrecomputeEvent{
		RequestID: requestID,
		CityName:  "Goa",
	}
	eventJSON, err := json.Marshal(event)
	require.NoError(t, err)

	messages := []domain.StreamMessage{
		{ID: "1234567890-0", Data: string(eventJSON)},
		// Битое сообщение: подтверждается без обработки
		{ID: "1234567890-1", Data: "not json"},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamBestTimePrecompute, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamBestTimePrecompute, "test-group", mock.AnythingOfType("string"), 10).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamBestTimePrecompute, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{}, nil)

	mockStream.On("PublishToStream", mock.Anything, domain.StreamBestTimeDone,
		mock.MatchedBy(func(data interface{}) bool {
			doneEvent, ok := data.(*domain.BestTimeDoneEvent)
			return ok &&
				doneEvent.RequestID == requestID &&
				doneEvent.Error == "" &&
				doneEvent.Result != nil &&
				doneEvent.Result.CityName == "Goa"
		})).Return(nil).Once()

	mockStream.On("AckMessage", mock.Anything, domain.StreamBestTimePrecompute, "test-group", "1234567890-0").
		Return(nil).Once()
	mockStream.On("AckMessage", mock.Anything, domain.StreamBestTimePrecompute, "test-group", "1234567890-1").
		Return(nil).Once()

	worker := workerbesttime.NewPrecomputeWorker(
		mockStream, newBestTimeUseCase(t),
		"test-group", 10, 3, zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, worker.Stop())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop")
	}

	mockStream.AssertExpectations(t)
}

func TestPrecomputeWorker_UnknownCityReportsError(t *testing.T) {
	mockStream := &MockStreamRepository{}

	requestID := uuid.New()
	event := &domain.BestTimePrecomputeEvent{
		RequestID: requestID,
		CityName:  "Atlantis",
	}
	eventJSON, err := json.Marshal(event)
	require.NoError(t, err)

	messages := []domain.StreamMessage{
		{ID: "1234567890-0", Data: string(eventJSON)},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamBestTimePrecompute, "test-group").
		Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamBestTimePrecompute, "test-group", mock.AnythingOfType("string"), 10).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamBestTimePrecompute, "test-group", mock.AnythingOfType("string"), 10).
		Return([]domain.StreamMessage{}, nil)

	// Отсутствие данных отражается в done-событии, сообщение подтверждается
	mockStream.On("PublishToStream", mock.Anything, domain.StreamBestTimeDone,
		mock.MatchedBy(func(data interface{}) bool {
			doneEvent, ok := data.(*domain.BestTimeDoneEvent)
			return ok && doneEvent.RequestID == requestID &&
				doneEvent.Result == nil && doneEvent.Error != ""
		})).Return(nil).Once()
	mockStream.On("AckMessage", mock.Anything, domain.StreamBestTimePrecompute, "test-group", "1234567890-0").
		Return(nil).Once()

	worker := workerbesttime.NewPrecomputeWorker(
		mockStream, newBestTimeUseCase(t),
		"test-group", 10, 3, zap.NewNop(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, worker.Stop())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Worker did not stop")
	}

	mockStream.AssertExpectations(t)
}

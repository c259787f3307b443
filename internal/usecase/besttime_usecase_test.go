package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/besttime-service/internal/besttime"
	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/domain/repository"
	"github.com/besttime-service/internal/repository/memory"
	"github.com/besttime-service/internal/usecase"
	"github.com/besttime-service/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetBestTime(ctx context.Context, key string) (*domain.BestTimeResult, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BestTimeResult), args.Error(1)
}

func (m *MockCacheRepository) SetBestTime(ctx context.Context, key string, result *domain.BestTimeResult, ttl time.Duration) error {
	args := m.Called(ctx, key, result, ttl)
	return args.Error(0)
}

// MockDestinationRepository is a mock of DestinationRepository
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) GetByCity(ctx context.Context, cityName, countryName string) (*domain.Destination, error) {
	args := m.Called(ctx, cityName, countryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) List(ctx context.Context, limit, offset int) ([]domain.Destination, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) Create(ctx context.Context, dest *domain.Destination) (int64, error) {
	args := m.Called(ctx, dest)
	return args.Get(0).(int64), args.Error(1)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, query string) (*domain.Point, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Point), args.Error(1)
}

// MockWeatherRepository is a mock of WeatherRepository
type MockWeatherRepository struct {
	mock.Mock
}

func (m *MockWeatherRepository) GetCurrent(ctx context.Context, lat, lon float64) (*domain.CurrentWeather, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrentWeather), args.Error(1)
}

// newTestUseCase собирает usecase над реальным справочником и движком.
// Опциональные зависимости передаются интерфейсами, чтобы nil
// означал именно отсутствие зависимости.
func newTestUseCase(
	t *testing.T,
	cache repository.CacheRepository,
	dest repository.DestinationRepository,
	geo repository.GeocodingRepository,
	weather repository.WeatherRepository,
) *usecase.BestTimeUseCase {
	t.Helper()

	referenceRepo, err := memory.NewReferenceRepository()
	require.NoError(t, err)

	engine := besttime.NewEngine(besttime.DefaultParams())

	return usecase.NewBestTimeUseCase(
		referenceRepo, dest, cache, geo, weather,
		engine, zap.NewNop(), time.Hour,
	)
}

func TestBestTimeUseCase_GetByCity_Reference(t *testing.T) {
	mockCache := &MockCacheRepository{}
	mockCache.On("GetBestTime", mock.Anything, mock.Anything).Return(nil, nil)
	mockCache.On("SetBestTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	uc := newTestUseCase(t, mockCache, nil, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Goa"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Goa", result.CityName)
	assert.Equal(t, "India", result.CountryName)
	assert.Equal(t, "reference", result.DataSource)
	assert.Equal(t, 0.92, result.DataConfidence)

	assert.Equal(t, []int{1, 2, 11, 12}, result.BestMonths)
	assert.Equal(t, []int{3, 10}, result.ShoulderMonths)
	assert.Equal(t, []int{6, 7, 8, 9}, result.AvoidMonths)

	assert.InDelta(t, 0.47, result.AccuracyScore, 1e-9)
	assert.Equal(t, 5, result.IdealTripDuration)
	assert.Equal(t, "January, February, November, December", result.BestTimeSummary)

	assert.Contains(t, result.Warnings,
		"Flooding possible during heavy monsoon months - check current conditions")

	mockCache.AssertCalled(t, "SetBestTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBestTimeUseCase_GetByCity_CacheHit(t *testing.T) {
	cached := &domain.BestTimeResult{
		CityName:       "Goa",
		DataSource:     "reference",
		DataConfidence: 0.92,
	}

	mockCache := &MockCacheRepository{}
	mockCache.On("GetBestTime", mock.Anything, mock.Anything).Return(cached, nil)

	uc := newTestUseCase(t, mockCache, nil, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Goa"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Goa", result.CityName)

	mockCache.AssertNotCalled(t, "SetBestTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBestTimeUseCase_GetByCity_CacheFailureIgnored(t *testing.T) {
	mockCache := &MockCacheRepository{}
	mockCache.On("GetBestTime", mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))
	mockCache.On("SetBestTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	uc := newTestUseCase(t, mockCache, nil, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Goa"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Goa", result.CityName)
}

func TestBestTimeUseCase_GetByCity_CuratedFallback(t *testing.T) {
	curated := &domain.Destination{
		CityName:        "Lisbon",
		CountryName:     "Portugal",
		Latitude:        38.72,
		Longitude:       -9.14,
		BestMonths:      []int{5, 6, 9},
		BestTimeSummary: "May, June, September",
		DataConfidence:  0.8,
	}

	mockDest := &MockDestinationRepository{}
	mockDest.On("GetByCity", mock.Anything, "Lisbon", "").Return(curated, nil)

	uc := newTestUseCase(t, nil, mockDest, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Lisbon"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "curated", result.DataSource)
	assert.Equal(t, "Lisbon", result.CityName)
	assert.Equal(t, []int{5, 6, 9}, result.BestMonths)
	assert.Equal(t, 0.8, result.DataConfidence)
}

func TestBestTimeUseCase_GetByCity_DatabaseFailureDegrades(t *testing.T) {
	mockDest := &MockDestinationRepository{}
	mockDest.On("GetByCity", mock.Anything, "Lisbon", "").
		Return(nil, errors.New("connection refused"))

	uc := newTestUseCase(t, nil, mockDest, nil, nil)

	// Недоступность БД не превращается в ошибку ответа
	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Lisbon"})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestBestTimeUseCase_GetByCity_NotFound(t *testing.T) {
	mockDest := &MockDestinationRepository{}
	mockDest.On("GetByCity", mock.Anything, "Atlantis", "").Return(nil, nil)

	uc := newTestUseCase(t, nil, mockDest, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Atlantis"})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestBestTimeUseCase_GetByCity_EmptyCity(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "   "})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestBestTimeUseCase_GetByCoordinates_Proximity(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	// Точка в паре километров от Гоа: профиль возвращается без деградации
	result, err := uc.GetByCoordinates(context.Background(), dto.CoordinatesRequest{
		Lat: 15.3, Lon: 74.1, RadiusKm: 100,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Goa", result.CityName)
	assert.Equal(t, "reference", result.DataSource)
	assert.Equal(t, 0.92, result.DataConfidence)
}

func TestBestTimeUseCase_GetByCoordinates_Inferred(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	// Точка на побережье южнее Гоа: вне радиуса близости,
	// но с похожими географическими факторами
	result, err := uc.GetByCoordinates(context.Background(), dto.CoordinatesRequest{
		Lat: 12.9, Lon: 74.8,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "inferred", result.DataSource)
	assert.Equal(t, 12.9, result.Latitude)
	assert.Equal(t, 74.8, result.Longitude)

	// Уверенность деградирует и никогда не достигает уровня точного совпадения
	assert.Greater(t, result.DataConfidence, 0.0)
	assert.Less(t, result.DataConfidence, 0.92)
}

func TestBestTimeUseCase_GetByCoordinates_NoMatch(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	// Точка в океане на экваторе не похожа ни на одну эталонную локацию
	result, err := uc.GetByCoordinates(context.Background(), dto.CoordinatesRequest{Lat: 0, Lon: 0})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestBestTimeUseCase_GetByCoordinates_Validation(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	t.Run("invalid latitude", func(t *testing.T) {
		result, err := uc.GetByCoordinates(context.Background(), dto.CoordinatesRequest{Lat: 91, Lon: 0})
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("invalid radius", func(t *testing.T) {
		result, err := uc.GetByCoordinates(context.Background(), dto.CoordinatesRequest{
			Lat: 15.3, Lon: 74.1, RadiusKm: 1000,
		})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestBestTimeUseCase_GetByCoordinates_Idempotent(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, nil, nil)

	req := dto.CoordinatesRequest{Lat: 12.9, Lon: 74.8}

	first, err := uc.GetByCoordinates(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.GetByCoordinates(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBestTimeUseCase_GetBySearch(t *testing.T) {
	t.Run("city country format", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil, nil, nil)

		result, err := uc.GetBySearch(context.Background(), dto.SearchRequest{Query: "Goa, India"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "Goa", result.CityName)
		assert.Equal(t, "reference", result.DataSource)
	})

	t.Run("unknown name resolved through geocoder", func(t *testing.T) {
		mockGeo := &MockGeocodingRepository{}
		mockGeo.On("Geocode", mock.Anything, "Mangalore, India").
			Return(&domain.Point{Lat: 12.9141, Lon: 74.8560}, nil)

		uc := newTestUseCase(t, nil, nil, mockGeo, nil)

		result, err := uc.GetBySearch(context.Background(), dto.SearchRequest{Query: "Mangalore, India"})
		require.NoError(t, err)
		require.NotNil(t, result)

		// Поисковый путь сохраняет запрошенное имя, а не имя аналога
		assert.Equal(t, "Mangalore", result.CityName)
		assert.Equal(t, "inferred", result.DataSource)
		mockGeo.AssertExpectations(t)
	})

	t.Run("geocoder failure means not found", func(t *testing.T) {
		mockGeo := &MockGeocodingRepository{}
		mockGeo.On("Geocode", mock.Anything, "Nowhere").
			Return(nil, errors.New("service unavailable"))

		uc := newTestUseCase(t, nil, nil, mockGeo, nil)

		result, err := uc.GetBySearch(context.Background(), dto.SearchRequest{Query: "Nowhere"})
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("no geocoder means not found", func(t *testing.T) {
		uc := newTestUseCase(t, nil, nil, nil, nil)

		result, err := uc.GetBySearch(context.Background(), dto.SearchRequest{Query: "Nowhere"})
		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestBestTimeUseCase_WeatherEnrichment(t *testing.T) {
	t.Run("weather attached when available", func(t *testing.T) {
		mockWeather := &MockWeatherRepository{}
		mockWeather.On("GetCurrent", mock.Anything, mock.Anything, mock.Anything).
			Return(&domain.CurrentWeather{Temperature: 29, Condition: "Clear"}, nil)

		uc := newTestUseCase(t, nil, nil, nil, mockWeather)

		result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Goa"})
		require.NoError(t, err)
		require.NotNil(t, result)
		require.NotNil(t, result.CurrentWeather)
		assert.Equal(t, 29.0, result.CurrentWeather.Temperature)
	})

	t.Run("weather failure does not break result", func(t *testing.T) {
		mockWeather := &MockWeatherRepository{}
		mockWeather.On("GetCurrent", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("api down"))

		uc := newTestUseCase(t, nil, nil, nil, mockWeather)

		result, err := uc.GetByCity(context.Background(), dto.CityRequest{City: "Goa"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Nil(t, result.CurrentWeather)
	})
}

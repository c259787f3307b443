package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/besttime-service/internal/besttime"
	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/domain/repository"
	"github.com/besttime-service/internal/pkg/errors"
	"github.com/besttime-service/internal/pkg/utils"
	"github.com/besttime-service/internal/usecase/dto"
)

const defaultRadiusKm = 100

// BestTimeUseCase - оркестратор рекомендаций "лучшее время для поездки".
// Последовательность поиска: кеш -> точное совпадение по справочнику ->
// курируемая запись в БД (по имени) или географический аналог (по координатам).
// Отсутствие результата - штатный исход (nil, nil), а не ошибка.
type BestTimeUseCase struct {
	referenceRepo   repository.ReferenceRepository
	destinationRepo repository.DestinationRepository
	cacheRepo       repository.CacheRepository
	geocodingRepo   repository.GeocodingRepository
	weatherRepo     repository.WeatherRepository
	engine          *besttime.Engine
	candidates      []besttime.Candidate
	logger          *zap.Logger
	cacheTTL        time.Duration
}

// NewBestTimeUseCase - создание нового BestTimeUseCase.
// destinationRepo, geocodingRepo и weatherRepo опциональны (могут быть nil):
// их отсутствие сужает возможности, но не ломает основной путь.
func NewBestTimeUseCase(
	referenceRepo repository.ReferenceRepository,
	destinationRepo repository.DestinationRepository,
	cacheRepo repository.CacheRepository,
	geocodingRepo repository.GeocodingRepository,
	weatherRepo repository.WeatherRepository,
	engine *besttime.Engine,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *BestTimeUseCase {
	// Факторы эталонных локаций предвычисляются один раз:
	// справочник после старта не меняется
	refs := referenceRepo.All()
	candidates := make([]besttime.Candidate, 0, len(refs))
	for _, ref := range refs {
		candidates = append(candidates, besttime.Candidate{
			Key:     ref.Key,
			Factors: engine.FactorsOf(ref.Lat, ref.Lon),
		})
	}

	return &BestTimeUseCase{
		referenceRepo:   referenceRepo,
		destinationRepo: destinationRepo,
		cacheRepo:       cacheRepo,
		geocodingRepo:   geocodingRepo,
		weatherRepo:     weatherRepo,
		engine:          engine,
		candidates:      candidates,
		logger:          logger,
		cacheTTL:        cacheTTL,
	}
}

// GetByCity - рекомендация по имени города.
// Возвращает nil, nil если город неизвестен ни справочнику, ни БД.
func (uc *BestTimeUseCase) GetByCity(ctx context.Context, req dto.CityRequest) (*dto.BestTimeResponse, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, errors.ErrInvalidQuery
	}

	cacheKey := fmt.Sprintf("besttime:city:%s:%s",
		strings.ToLower(city), strings.ToLower(strings.TrimSpace(req.Country)))

	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return uc.enrichWeather(ctx, cached), nil
	}

	// Точное совпадение по встроенному справочнику
	if ref := uc.referenceRepo.Lookup(city); ref != nil {
		result := uc.buildReferenceResult(ref)
		uc.toCache(ctx, cacheKey, result)
		return uc.enrichWeather(ctx, result), nil
	}

	// Курируемая запись в PostgreSQL
	if uc.destinationRepo != nil {
		dest, err := uc.destinationRepo.GetByCity(ctx, city, req.Country)
		if err != nil {
			// Недоступность БД не прерывает путь: справочник уже проверен
			uc.logger.Warn("Destination lookup failed",
				zap.String("city", city), zap.Error(err))
		} else if dest != nil {
			result := uc.buildCuratedResult(dest)
			uc.toCache(ctx, cacheKey, result)
			return uc.enrichWeather(ctx, result), nil
		}
	}

	uc.logger.Debug("No best time data for city", zap.String("city", city))
	return nil, nil
}

// GetByCoordinates - рекомендация по координатам.
// Сначала ищется эталонная локация в радиусе поиска (результат без
// деградации), затем - географический аналог по похожести факторов.
func (uc *BestTimeUseCase) GetByCoordinates(ctx context.Context, req dto.CoordinatesRequest) (*dto.BestTimeResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if req.RadiusKm == 0 {
		req.RadiusKm = defaultRadiusKm
	}
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	cacheKey := fmt.Sprintf("besttime:coords:%.4f:%.4f:%.0f", req.Lat, req.Lon, req.RadiusKm)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return uc.enrichWeather(ctx, cached), nil
	}

	// Близость к эталонной локации: профиль возвращается как есть
	if ref := uc.nearestReference(req.Lat, req.Lon, req.RadiusKm); ref != nil {
		result := uc.buildReferenceResult(ref)
		uc.toCache(ctx, cacheKey, result)
		return uc.enrichWeather(ctx, result), nil
	}

	// Подбор географического аналога
	factors := uc.engine.FactorsOf(req.Lat, req.Lon)
	match := uc.engine.BestMatch(factors, uc.candidates)
	if match == nil {
		uc.logger.Debug("No similar reference location",
			zap.Float64("lat", req.Lat), zap.Float64("lon", req.Lon))
		return nil, nil
	}

	ref := uc.referenceRepo.Lookup(match.Key)
	if ref == nil {
		return nil, errors.ErrInternalServer
	}

	result := uc.buildInferredResult(ref, req.Lat, req.Lon, factors, match.Similarity)
	uc.toCache(ctx, cacheKey, result)
	return uc.enrichWeather(ctx, result), nil
}

// GetBySearch - рекомендация по свободному текстовому запросу.
// Формат "City, Country" разбирается напрямую; незнакомые имена
// разрешаются через геокодер (если он сконфигурирован).
func (uc *BestTimeUseCase) GetBySearch(ctx context.Context, req dto.SearchRequest) (*dto.BestTimeResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.ErrInvalidQuery
	}

	city, country := parseCityCountry(query)
	result, err := uc.GetByCity(ctx, dto.CityRequest{City: city, Country: country})
	if err != nil || result != nil {
		return result, err
	}

	if uc.geocodingRepo == nil {
		return nil, nil
	}

	point, err := uc.geocodingRepo.Geocode(ctx, query)
	if err != nil {
		// Обогащение best-effort: сбой геокодера эквивалентен "не найдено"
		uc.logger.Warn("Geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, nil
	}
	if point == nil {
		return nil, nil
	}

	inferred, err := uc.GetByCoordinates(ctx, dto.CoordinatesRequest{Lat: point.Lat, Lon: point.Lon})
	if err != nil || inferred == nil {
		return inferred, err
	}

	// Поисковый путь сохраняет запрошенное имя, а не имя аналога
	inferred.CityName = city
	return inferred, nil
}

// nearestReference возвращает ближайшую эталонную локацию в радиусе radiusKm
func (uc *BestTimeUseCase) nearestReference(lat, lon, radiusKm float64) *domain.ReferenceLocation {
	var nearest *domain.ReferenceLocation
	minDist := radiusKm

	for _, ref := range uc.referenceRepo.All() {
		ref := ref
		if d := utils.HaversineDistance(lat, lon, ref.Lat, ref.Lon); d <= minDist {
			minDist = d
			nearest = &ref
		}
	}
	return nearest
}

// buildReferenceResult собирает результат по полному эталонному профилю
func (uc *BestTimeUseCase) buildReferenceResult(ref *domain.ReferenceLocation) *dto.BestTimeResponse {
	scores := uc.engine.Score(&ref.Climate, &ref.Tourism)
	classes := uc.engine.Classify(scores)

	return &dto.BestTimeResponse{
		BestTimeResult: domain.BestTimeResult{
			CityName:    ref.Name,
			CountryName: ref.Country,
			Latitude:    ref.Lat,
			Longitude:   ref.Lon,

			BestMonths:     classes.Best,
			ShoulderMonths: classes.Shoulder,
			AvoidMonths:    classes.Avoid,

			BestTimeSummary: uc.engine.TimingSummary(classes.Best),
			WeatherSummary:  uc.engine.WeatherSummary(&ref.Climate),
			CrowdSummary:    uc.engine.CrowdSummary(&ref.Tourism),
			PriceSummary:    uc.engine.PriceSummary(&ref.Tourism),

			IdealTripDuration: uc.engine.IdealDuration(&ref.Climate, &ref.Tourism),
			AccuracyScore:     uc.engine.Accuracy(scores),
			DataConfidence:    uc.engine.Params().ExactConfidence,
			DataSource:        "reference",

			Tips:     uc.engine.Tips(&ref.Climate, &ref.Tourism),
			Warnings: uc.engine.Warnings(&ref.Climate, &ref.Tourism),
		},
	}
}

// buildInferredResult собирает результат по географическому аналогу.
// Уверенность и точность деградируют пропорционально похожести,
// а предупреждения дополняются особенностями целевой точки.
func (uc *BestTimeUseCase) buildInferredResult(
	ref *domain.ReferenceLocation,
	lat, lon float64,
	factors domain.LocationFactors,
	similarity float64,
) *dto.BestTimeResponse {
	p := uc.engine.Params()

	result := uc.buildReferenceResult(ref)
	result.Latitude = lat
	result.Longitude = lon
	result.DataSource = "inferred"
	result.DataConfidence = math.Round(similarity*p.SimilarityDamping*100) / 100
	result.AccuracyScore = math.Round(result.AccuracyScore*similarity*100) / 100

	if factors.Elevation > p.HighAltitude {
		result.Warnings = append(result.Warnings,
			"High altitude location - allow time for acclimatization")
	}
	switch factors.TerrainType {
	case domain.TerrainCoastal:
		result.Tips = append(result.Tips,
			"Coastal conditions vary with the season - check sea state before water activities")
	case domain.TerrainMountain:
		result.Tips = append(result.Tips,
			"Mountain weather changes quickly - pack layers even in warm months")
	}

	return result
}

// buildCuratedResult собирает результат из курируемой записи БД.
// Помесячных оценок у таких записей нет - сводки хранятся готовыми.
func (uc *BestTimeUseCase) buildCuratedResult(dest *domain.Destination) *dto.BestTimeResponse {
	return &dto.BestTimeResponse{
		BestTimeResult: domain.BestTimeResult{
			CityName:    dest.CityName,
			CountryName: dest.CountryName,
			Latitude:    dest.Latitude,
			Longitude:   dest.Longitude,

			BestMonths: dest.BestMonths,

			BestTimeSummary: dest.BestTimeSummary,
			WeatherSummary:  dest.WeatherSummary,
			CrowdSummary:    dest.TouristSummary,

			IdealTripDuration: dest.IdealTripDuration,
			AccuracyScore:     dest.DataConfidence,
			DataConfidence:    dest.DataConfidence,
			DataSource:        "curated",
		},
	}
}

// enrichWeather дополняет результат текущей погодой.
// Best-effort: недоступность источника погоды не влияет на рекомендацию.
func (uc *BestTimeUseCase) enrichWeather(ctx context.Context, result *dto.BestTimeResponse) *dto.BestTimeResponse {
	if uc.weatherRepo == nil || result == nil {
		return result
	}

	current, err := uc.weatherRepo.GetCurrent(ctx, result.Latitude, result.Longitude)
	if err != nil {
		uc.logger.Warn("Weather enrichment failed",
			zap.String("city", result.CityName), zap.Error(err))
		return result
	}

	result.CurrentWeather = current
	return result
}

func (uc *BestTimeUseCase) fromCache(ctx context.Context, key string) *dto.BestTimeResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	cached, err := uc.cacheRepo.GetBestTime(ctx, key)
	if err != nil {
		uc.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	if cached == nil {
		return nil
	}
	return &dto.BestTimeResponse{BestTimeResult: *cached}
}

func (uc *BestTimeUseCase) toCache(ctx context.Context, key string, result *dto.BestTimeResponse) {
	if uc.cacheRepo == nil {
		return
	}

	if err := uc.cacheRepo.SetBestTime(ctx, key, &result.BestTimeResult, uc.cacheTTL); err != nil {
		uc.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// parseCityCountry разбирает запрос вида "City, Country"
func parseCityCountry(query string) (city, country string) {
	parts := strings.SplitN(query, ",", 2)
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		country = strings.TrimSpace(parts[1])
	}
	return city, country
}

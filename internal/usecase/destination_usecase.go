package usecase

import (
	"context"
	"sort"
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

// DestinationUseCase - список известных направлений и административное
// добавление курируемых записей. Список объединяет встроенный справочник
// и записи PostgreSQL.
type DestinationUseCase struct {
	referenceRepo   repository.ReferenceRepository
	destinationRepo repository.DestinationRepository
	engine          *besttime.Engine
	logger          *zap.Logger
}

// NewDestinationUseCase - создание нового DestinationUseCase
func NewDestinationUseCase(
	referenceRepo repository.ReferenceRepository,
	destinationRepo repository.DestinationRepository,
	engine *besttime.Engine,
	logger *zap.Logger,
) *DestinationUseCase {
	return &DestinationUseCase{
		referenceRepo:   referenceRepo,
		destinationRepo: destinationRepo,
		engine:          engine,
		logger:          logger,
	}
}

// List возвращает страницу направлений. Справочник и БД объединяются,
// дубликаты по имени города разрешаются в пользу справочника.
func (uc *DestinationUseCase) List(ctx context.Context, req dto.ListDestinationsRequest) (*dto.DestinationListResponse, error) {
	if req.Limit == 0 {
		req.Limit = 20
	}

	summaries := make([]domain.DestinationSummary, 0)
	seen := make(map[string]bool)

	for _, ref := range uc.referenceRepo.All() {
		scores := uc.engine.Score(&ref.Climate, &ref.Tourism)
		classes := uc.engine.Classify(scores)

		summaries = append(summaries, domain.DestinationSummary{
			CityName:        ref.Name,
			CountryName:     ref.Country,
			Latitude:        ref.Lat,
			Longitude:       ref.Lon,
			BestTimeSummary: uc.engine.TimingSummary(classes.Best),
			DataConfidence:  uc.engine.Params().ExactConfidence,
			Source:          "reference",
		})
		seen[strings.ToLower(ref.Name)] = true
	}

	if uc.destinationRepo != nil {
		// Лимит страницы применяется после объединения, поэтому из БД
		// читается страница целиком с нулевым смещением
		curated, err := uc.destinationRepo.List(ctx, req.Limit+req.Offset, 0)
		if err != nil {
			uc.logger.Warn("Curated destinations unavailable", zap.Error(err))
		} else {
			for _, dest := range curated {
				if seen[strings.ToLower(dest.CityName)] {
					continue
				}
				summaries = append(summaries, domain.DestinationSummary{
					CityName:        dest.CityName,
					CountryName:     dest.CountryName,
					Latitude:        dest.Latitude,
					Longitude:       dest.Longitude,
					BestTimeSummary: dest.BestTimeSummary,
					DataConfidence:  dest.DataConfidence,
					Source:          "curated",
				})
			}
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CityName < summaries[j].CityName
	})

	total := len(summaries)
	start := req.Offset
	if start > total {
		start = total
	}
	end := start + req.Limit
	if end > total {
		end = total
	}

	return &dto.DestinationListResponse{
		Destinations: summaries[start:end],
		Total:        total,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}, nil
}

// Create добавляет курируемую запись в PostgreSQL
func (uc *DestinationUseCase) Create(ctx context.Context, req dto.CreateDestinationRequest) (*dto.CreateDestinationResponse, error) {
	if uc.destinationRepo == nil {
		return nil, errors.ErrDatabaseError
	}
	if !utils.ValidateCoordinates(req.Latitude, req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}
	for _, m := range req.BestMonths {
		if !domain.ValidMonth(m) {
			return nil, errors.ErrInvalidMonths
		}
	}

	dest := &domain.Destination{
		CityName:          strings.TrimSpace(req.CityName),
		CountryName:       strings.TrimSpace(req.CountryName),
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		BestMonths:        req.BestMonths,
		BestTimeSummary:   req.BestTimeSummary,
		WeatherSummary:    req.WeatherSummary,
		TouristSummary:    req.TouristSummary,
		IdealTripDuration: req.IdealTripDuration,
		DataConfidence:    req.DataConfidence,
		CreatedAt:         time.Now().UTC(),
	}

	id, err := uc.destinationRepo.Create(ctx, dest)
	if err != nil {
		uc.logger.Error("Failed to create destination",
			zap.String("city", dest.CityName), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Destination created",
		zap.Int64("id", id), zap.String("city", dest.CityName))

	return &dto.CreateDestinationResponse{ID: id}, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/domain/repository"
)

type destinationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewDestinationRepository создает репозиторий курируемых направлений
func NewDestinationRepository(db *DB, logger *zap.Logger) repository.DestinationRepository {
	return &destinationRepository{
		db:     db,
		logger: logger,
	}
}

// GetByCity ищет запись по имени города, сравнение регистронезависимое.
// Пустая страна означает "любая страна" (берётся первая запись).
func (r *destinationRepository) GetByCity(ctx context.Context, cityName, countryName string) (*domain.Destination, error) {
	query := `
		SELECT id, city_name, country_name, latitude, longitude, best_months,
		       best_time_summary, weather_summary, tourist_summary,
		       ideal_trip_duration_days, data_confidence, created_at
		FROM location_best_times
		WHERE LOWER(city_name) = LOWER($1)
		  AND ($2 = '' OR LOWER(country_name) = LOWER($2))
		ORDER BY created_at DESC
		LIMIT 1`

	var row destinationRow
	if err := r.db.GetContext(ctx, &row, query, cityName, countryName); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get destination by city",
			zap.String("city", cityName), zap.Error(err))
		return nil, fmt.Errorf("get destination by city: %w", err)
	}

	return row.toDomain(), nil
}

// List возвращает страницу направлений, отсортированных по имени города
func (r *destinationRepository) List(ctx context.Context, limit, offset int) ([]domain.Destination, error) {
	query := `
		SELECT id, city_name, country_name, latitude, longitude, best_months,
		       best_time_summary, weather_summary, tourist_summary,
		       ideal_trip_duration_days, data_confidence, created_at
		FROM location_best_times
		ORDER BY city_name
		LIMIT $1 OFFSET $2`

	var rows []destinationRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		r.logger.Error("Failed to list destinations", zap.Error(err))
		return nil, fmt.Errorf("list destinations: %w", err)
	}

	destinations := make([]domain.Destination, len(rows))
	for i, row := range rows {
		destinations[i] = *row.toDomain()
	}
	return destinations, nil
}

// Create добавляет новую запись и возвращает её ID
func (r *destinationRepository) Create(ctx context.Context, dest *domain.Destination) (int64, error) {
	query := `
		INSERT INTO location_best_times (
			city_name, country_name, latitude, longitude, best_months,
			best_time_summary, weather_summary, tourist_summary,
			ideal_trip_duration_days, data_confidence, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		dest.CityName,
		dest.CountryName,
		dest.Latitude,
		dest.Longitude,
		pq.Array(dest.BestMonths),
		dest.BestTimeSummary,
		dest.WeatherSummary,
		dest.TouristSummary,
		dest.IdealTripDuration,
		dest.DataConfidence,
		dest.CreatedAt,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create destination",
			zap.String("city", dest.CityName), zap.Error(err))
		return 0, fmt.Errorf("create destination: %w", err)
	}

	return id, nil
}

// destinationRow - строка таблицы location_best_times.
// Массив месяцев читается через pq.Int64Array и конвертируется в []int.
type destinationRow struct {
	ID                int64         `db:"id"`
	CityName          string        `db:"city_name"`
	CountryName       string        `db:"country_name"`
	Latitude          float64       `db:"latitude"`
	Longitude         float64       `db:"longitude"`
	BestMonths        pq.Int64Array `db:"best_months"`
	BestTimeSummary   string        `db:"best_time_summary"`
	WeatherSummary    string        `db:"weather_summary"`
	TouristSummary    string        `db:"tourist_summary"`
	IdealTripDuration int           `db:"ideal_trip_duration_days"`
	DataConfidence    float64       `db:"data_confidence"`
	CreatedAt         sql.NullTime  `db:"created_at"`
}

func (row *destinationRow) toDomain() *domain.Destination {
	months := make([]int, len(row.BestMonths))
	for i, m := range row.BestMonths {
		months[i] = int(m)
	}

	dest := &domain.Destination{
		ID:                row.ID,
		CityName:          row.CityName,
		CountryName:       row.CountryName,
		Latitude:          row.Latitude,
		Longitude:         row.Longitude,
		BestMonths:        months,
		BestTimeSummary:   row.BestTimeSummary,
		WeatherSummary:    row.WeatherSummary,
		TouristSummary:    row.TouristSummary,
		IdealTripDuration: row.IdealTripDuration,
		DataConfidence:    row.DataConfidence,
	}
	if row.CreatedAt.Valid {
		dest.CreatedAt = row.CreatedAt.Time
	}
	return dest
}

package repository

import (
	"context"

	"github.com/besttime-service/internal/domain"
)

// DestinationRepository - хранилище курируемых направлений в PostgreSQL
type DestinationRepository interface {
	// GetByCity ищет запись по имени города (и опционально страны),
	// сравнение регистронезависимое. Возвращает nil, nil если записи нет.
	GetByCity(ctx context.Context, cityName, countryName string) (*domain.Destination, error)

	// List возвращает страницу направлений, отсортированных по имени города
	List(ctx context.Context, limit, offset int) ([]domain.Destination, error)

	// Create добавляет новую запись и возвращает её ID
	Create(ctx context.Context, dest *domain.Destination) (int64, error)
}

package repository

import (
	"context"

	"github.com/besttime-service/internal/domain"
)

// GeocodingRepository - внешний сервис геокодирования (имя -> координаты).
// Используется только поисковым сценарием как опциональное обогащение:
// ошибки геокодера не прерывают основной путь.
type GeocodingRepository interface {
	// Geocode возвращает координаты для текстового запроса.
	// Возвращает nil, nil если ничего не найдено.
	Geocode(ctx context.Context, query string) (*domain.Point, error)
}

package repository

import (
	"context"

	"github.com/besttime-service/internal/domain"
)

// WeatherRepository - внешний источник текущей погоды.
// Опциональное обогащение ответа: недоступность источника
// не влияет на расчёт рекомендации.
type WeatherRepository interface {
	GetCurrent(ctx context.Context, lat, lon float64) (*domain.CurrentWeather, error)
}

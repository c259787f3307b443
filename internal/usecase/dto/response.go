package dto

import "github.com/besttime-service/internal/domain"

// BestTimeResponse - рекомендация с опциональной текущей погодой
type BestTimeResponse struct {
	domain.BestTimeResult
	CurrentWeather *domain.CurrentWeather `json:"current_weather,omitempty"`
}

// DestinationListResponse - страница курируемых направлений
type DestinationListResponse struct {
	Destinations []domain.DestinationSummary `json:"destinations"`
	Total        int                         `json:"total"`
	Limit        int                         `json:"limit"`
	Offset       int                         `json:"offset"`
}

// CreateDestinationResponse - результат добавления направления
type CreateDestinationResponse struct {
	ID int64 `json:"id"`
}

package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с backend travel-planner)
const (
	StreamBestTimePrecompute = "stream:besttime:precompute"
	StreamBestTimeDone       = "stream:besttime:done"
)

// BestTimePrecomputeEvent - входящее событие на предрасчёт рекомендации
type BestTimePrecomputeEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	CityName  string    `json:"city_name"`
	Country   *string   `json:"country,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// HasCoordinates проверяет наличие координат в событии
func (e *BestTimePrecomputeEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// BestTimeDoneEvent - результат предрасчёта
type BestTimeDoneEvent struct {
	RequestID uuid.UUID       `json:"request_id"`
	Result    *BestTimeResult `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

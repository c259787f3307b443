package dto

// CityRequest - запрос рекомендации по имени города
type CityRequest struct {
	City    string `json:"city" validate:"required,min=2"`
	Country string `json:"country" validate:"omitempty,min=2"`
}

// CoordinatesRequest - запрос рекомендации по координатам
type CoordinatesRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"omitempty,min=1,max=500"`
}

// SearchRequest - свободный текстовый запрос: "Goa", "Goa, India"
// или произвольное название, разрешаемое через геокодер
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=2"`
}

// ListDestinationsRequest - запрос страницы курируемых направлений
type ListDestinationsRequest struct {
	Limit  int `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" validate:"omitempty,min=0"`
}

// CreateDestinationRequest - административное добавление направления
type CreateDestinationRequest struct {
	CityName          string  `json:"city_name" validate:"required,min=2"`
	CountryName       string  `json:"country_name" validate:"required,min=2"`
	Latitude          float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude         float64 `json:"longitude" validate:"min=-180,max=180"`
	BestMonths        []int   `json:"best_months" validate:"omitempty,dive,min=1,max=12"`
	BestTimeSummary   string  `json:"best_time_summary"`
	WeatherSummary    string  `json:"weather_summary"`
	TouristSummary    string  `json:"tourist_summary"`
	IdealTripDuration int     `json:"ideal_trip_duration_days" validate:"omitempty,min=1,max=30"`
	DataConfidence    float64 `json:"data_confidence" validate:"omitempty,min=0,max=1"`
}

package domain

import "time"

// Destination - курируемая запись о направлении из PostgreSQL.
// Дополняет встроенный справочник: хранит уже готовые рекомендации,
// добавленные через административный API.
type Destination struct {
	ID                int64     `json:"id" db:"id"`
	CityName          string    `json:"city_name" db:"city_name"`
	CountryName       string    `json:"country_name" db:"country_name"`
	Latitude          float64   `json:"latitude" db:"latitude"`
	Longitude         float64   `json:"longitude" db:"longitude"`
	BestMonths        []int     `json:"best_months" db:"-"`
	BestTimeSummary   string    `json:"best_time_summary" db:"best_time_summary"`
	WeatherSummary    string    `json:"weather_summary" db:"weather_summary"`
	TouristSummary    string    `json:"tourist_summary" db:"tourist_summary"`
	IdealTripDuration int       `json:"ideal_trip_duration" db:"ideal_trip_duration_days"`
	DataConfidence    float64   `json:"data_confidence" db:"data_confidence"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// DestinationSummary - краткая запись для списка направлений
type DestinationSummary struct {
	CityName        string  `json:"city_name"`
	CountryName     string  `json:"country_name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	BestTimeSummary string  `json:"best_time_summary"`
	DataConfidence  float64 `json:"data_confidence"`
	Source          string  `json:"source"`
}

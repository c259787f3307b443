package domain

// MonthScores - оценка пригодности каждого месяца, индекс 0 = январь.
// Каждое значение находится в диапазоне [0,1].
type MonthScores [12]float64

// For возвращает оценку для месяца 1-12
func (s MonthScores) For(month int) float64 {
	return s[month-1]
}

// Mean возвращает среднее значение по всем 12 месяцам
func (s MonthScores) Mean() float64 {
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / 12
}

// MonthClassification - классификация месяцев по оценкам.
// Списки взаимно не пересекаются; месяцы с оценкой между порогами
// avoid и shoulder не попадают ни в один список.
type MonthClassification struct {
	Best     []int `json:"best_months"`
	Shoulder []int `json:"shoulder_months"`
	Avoid    []int `json:"avoid_months"`
}

// ReferenceLocation - эталонная локация из справочника
type ReferenceLocation struct {
	Key     string         `json:"key"`
	Name    string         `json:"name"`
	Country string         `json:"country"`
	Lat     float64        `json:"lat"`
	Lon     float64        `json:"lon"`
	Climate ClimateProfile `json:"climate"`
	Tourism TourismProfile `json:"tourism"`
}

// BestTimeResult - итоговая рекомендация по времени поездки.
// Создаётся один раз на запрос и после сборки не изменяется.
type BestTimeResult struct {
	CityName    string  `json:"city_name"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`

	BestMonths     []int `json:"best_months"`
	ShoulderMonths []int `json:"shoulder_months"`
	AvoidMonths    []int `json:"avoid_months"`

	BestTimeSummary string `json:"best_time_summary"`
	WeatherSummary  string `json:"weather_summary"`
	CrowdSummary    string `json:"crowd_summary"`
	PriceSummary    string `json:"price_summary"`

	IdealTripDuration int     `json:"ideal_trip_duration"`
	AccuracyScore     float64 `json:"accuracy_score"`
	DataConfidence    float64 `json:"data_confidence"`
	DataSource        string  `json:"data_source"`

	Tips     []string `json:"tips"`
	Warnings []string `json:"warnings"`
}

// CurrentWeather - текущая погода из внешнего источника
// (опциональное обогащение ответа)
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Package besttime реализует движок рекомендаций "лучшее время для поездки":
// вычисление географических факторов, подбор похожей эталонной локации
// и помесячную оценку пригодности по климату, загруженности и ценам.
//
// Все функции пакета детерминированы и не имеют побочных эффектов.
package besttime

import "github.com/besttime-service/internal/domain"

// ElevationRegion - грубая оценка высоты для прямоугольной области
type ElevationRegion struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
	Elevation      float64
}

// HeatCity - крупный город с эффектом городского острова тепла
type HeatCity struct {
	Point  domain.Point
	Effect float64
}

// Params - все настраиваемые константы движка.
// Вынесены из алгоритма, чтобы их можно было тестировать
// и подстраивать независимо от логики.
type Params struct {
	// Границы климатических зон по абсолютной широте
	TropicalLat    float64
	SubtropicalLat float64
	TemperateLat   float64
	UpperTempLat   float64
	ContinentalLat float64
	// Порог высоты, отделяющий highland от temperate в поясе 23.5-35
	HighlandElevation float64

	// Классификация рельефа
	MountainElevation  float64
	CoastalMaxDistance float64

	// Эвристические ориентиры для оценки высоты и расстояния до побережья.
	// Это иллюстративные константы, а не авторитетные геоданные.
	ElevationRegions []ElevationRegion
	DefaultElevation float64
	CoastalAnchors   []domain.Point
	HeatCities       []HeatCity
	HeatCityRadiusKm float64

	// Веса похожести (в сумме 1.0) и дистанции линейного спада
	ClimateWeight     float64
	LatitudeWeight    float64
	ElevationWeight   float64
	CoastalWeight     float64
	TerrainWeight     float64
	LatitudeFalloff   float64
	ElevationFalloff  float64
	CoastalFalloff    float64
	MinSimilarity     float64
	SimilarityDamping float64

	// Бонусы и штрафы помесячной оценки
	NotWetBonus      float64
	DryBonus         float64
	HumidityBonus    float64
	HumidityLimit    float64
	ModerateCrowd    float64
	QuietCrowd       float64
	CrowdBandLow     int
	CrowdBandHigh    int
	CheapBonus       float64
	VeryCheapBonus   float64
	CheapLimit       float64
	VeryCheapLimit   float64
	AccessBonus      float64
	FloodPenalty     float64
	HeatPenalty      float64
	HeatMonths       []int
	BestThreshold    float64
	ShoulderThreshold float64
	AvoidThreshold   float64

	// Уверенность и поездка
	ExactConfidence  float64
	BaseTripDays     int
	MaxTripDays      int
	VariableClimate  float64
	ShortPeakSeason  int
	HighAltitude     float64

	// Минимальная длина непрерывного блока месяцев,
	// при которой сводка сворачивается в диапазон "X to Y"
	RangeMinLength int
}

// DefaultParams возвращает параметры по умолчанию.
// Значения являются частью контракта оценки: существующие потребители
// полагаются на точные пороги и веса.
func DefaultParams() Params {
	return Params{
		TropicalLat:       10,
		SubtropicalLat:    23.5,
		TemperateLat:      35,
		UpperTempLat:      50,
		ContinentalLat:    60,
		HighlandElevation: 1000,

		MountainElevation:  1500,
		CoastalMaxDistance: 50,

		ElevationRegions: []ElevationRegion{
			// Гималаи и предгорья
			{MinLat: 25, MaxLat: 35, MinLon: 75, MaxLon: 86, Elevation: 1400},
			// Европейские равнины
			{MinLat: 45, MaxLat: 50, MinLon: 5, MaxLon: 10, Elevation: 200},
		},
		DefaultElevation: 50,
		CoastalAnchors: []domain.Point{
			{Lat: 15.3, Lon: 74.1}, // Goa
			{Lat: 19.1, Lon: 72.9}, // Mumbai
			{Lat: 48.9, Lon: 2.3},  // Paris
		},
		HeatCities: []HeatCity{
			{Point: domain.Point{Lat: 28.7, Lon: 77.1}, Effect: 3}, // Delhi
			{Point: domain.Point{Lat: 19.1, Lon: 72.9}, Effect: 2}, // Mumbai
			{Point: domain.Point{Lat: 48.9, Lon: 2.3}, Effect: 2},  // Paris
		},
		HeatCityRadiusKm: 50,

		ClimateWeight:     0.35,
		LatitudeWeight:    0.25,
		ElevationWeight:   0.20,
		CoastalWeight:     0.15,
		TerrainWeight:     0.05,
		LatitudeFalloff:   30,
		ElevationFalloff:  2000,
		CoastalFalloff:    500,
		MinSimilarity:     0.4,
		SimilarityDamping: 0.9,

		NotWetBonus:       0.15,
		DryBonus:          0.15,
		HumidityBonus:     0.10,
		HumidityLimit:     80,
		ModerateCrowd:     0.15,
		QuietCrowd:        0.10,
		CrowdBandLow:      4,
		CrowdBandHigh:     7,
		CheapBonus:        0.10,
		VeryCheapBonus:    0.05,
		CheapLimit:        1.2,
		VeryCheapLimit:    0.8,
		AccessBonus:       0.05,
		FloodPenalty:      0.10,
		HeatPenalty:       0.15,
		HeatMonths:        []int{5, 6, 7, 8},
		BestThreshold:     0.7,
		ShoulderThreshold: 0.5,
		AvoidThreshold:    0.3,

		ExactConfidence: 0.92,
		BaseTripDays:    4,
		MaxTripDays:     7,
		VariableClimate: 20,
		ShortPeakSeason: 3,
		HighAltitude:    1500,

		RangeMinLength: 4,
	}
}

// Engine - движок рекомендаций. Не хранит состояния кроме параметров,
// поэтому безопасен для конкурентного использования.
type Engine struct {
	params Params
}

// NewEngine создаёт движок с заданными параметрами
func NewEngine(params Params) *Engine {
	return &Engine{params: params}
}

// Params возвращает параметры движка
func (e *Engine) Params() Params {
	return e.params
}

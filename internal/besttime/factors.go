package besttime

import (
	"math"

	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/pkg/utils"
)

// FactorsOf вычисляет географические факторы по координатам.
// Чистая функция: единственные входные данные - числовые координаты,
// поэтому всегда возвращает оценку и никогда не ошибается.
func (e *Engine) FactorsOf(lat, lon float64) domain.LocationFactors {
	elevation := e.estimateElevation(lat, lon)
	coastal := e.coastalDistance(lat, lon)

	return domain.LocationFactors{
		Latitude:        lat,
		Longitude:       lon,
		Elevation:       elevation,
		CoastalDistance: coastal,
		ClimateZone:     e.climateZone(lat, elevation),
		TerrainType:     e.terrainType(elevation, coastal),
		UrbanHeatEffect: e.urbanHeatEffect(lat, lon),
	}
}

// climateZone - упрощённая классификация Кёппена по широтным поясам.
// Пояс 23.5-35 делится на highland и temperate по порогу высоты.
func (e *Engine) climateZone(lat, elevation float64) domain.ClimateZone {
	abs := math.Abs(lat)
	p := e.params

	switch {
	case abs < p.TropicalLat:
		return domain.ZoneTropical
	case abs < p.SubtropicalLat:
		return domain.ZoneSubtropical
	case abs < p.TemperateLat:
		if elevation > p.HighlandElevation {
			return domain.ZoneHighland
		}
		return domain.ZoneTemperate
	case abs < p.UpperTempLat:
		return domain.ZoneTemperate
	case abs < p.ContinentalLat:
		return domain.ZoneContinental
	default:
		return domain.ZonePolar
	}
}

func (e *Engine) terrainType(elevation, coastalDistance float64) domain.TerrainType {
	switch {
	case elevation > e.params.MountainElevation:
		return domain.TerrainMountain
	case coastalDistance < e.params.CoastalMaxDistance:
		return domain.TerrainCoastal
	default:
		return domain.TerrainInland
	}
}

func (e *Engine) estimateElevation(lat, lon float64) float64 {
	for _, region := range e.params.ElevationRegions {
		if lat >= region.MinLat && lat <= region.MaxLat &&
			lon >= region.MinLon && lon <= region.MaxLon {
			return region.Elevation
		}
	}
	return e.params.DefaultElevation
}

// coastalDistance - минимальное расстояние до одного из береговых ориентиров
func (e *Engine) coastalDistance(lat, lon float64) float64 {
	min := math.MaxFloat64
	for _, anchor := range e.params.CoastalAnchors {
		d := utils.HaversineDistance(lat, lon, anchor.Lat, anchor.Lon)
		if d < min {
			min = d
		}
	}
	return min
}

func (e *Engine) urbanHeatEffect(lat, lon float64) float64 {
	for _, city := range e.params.HeatCities {
		if utils.HaversineDistance(lat, lon, city.Point.Lat, city.Point.Lon) < e.params.HeatCityRadiusKm {
			return city.Effect
		}
	}
	return 0
}

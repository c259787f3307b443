package besttime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/besttime-service/internal/domain"
)

func TestEngine_FactorsOf(t *testing.T) {
	engine := NewEngine(DefaultParams())

	tests := []struct {
		name    string
		lat     float64
		lon     float64
		zone    domain.ClimateZone
		terrain domain.TerrainType
	}{
		{
			name: "Goa - subtropical coast",
			lat:  15.2993, lon: 74.1240,
			zone:    domain.ZoneSubtropical,
			terrain: domain.TerrainCoastal,
		},
		{
			name: "equator - tropical inland",
			lat:  0, lon: 0,
			zone:    domain.ZoneTropical,
			terrain: domain.TerrainInland,
		},
		{
			name: "Paris - temperate",
			lat:  48.8566, lon: 2.3522,
			zone:    domain.ZoneTemperate,
			terrain: domain.TerrainCoastal,
		},
		{
			name: "Kathmandu - highland",
			lat:  27.7172, lon: 85.3240,
			zone:    domain.ZoneHighland,
			terrain: domain.TerrainInland,
		},
		{
			name: "far north - polar",
			lat:  70, lon: 25,
			zone:    domain.ZonePolar,
			terrain: domain.TerrainInland,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factors := engine.FactorsOf(tt.lat, tt.lon)
			assert.Equal(t, tt.zone, factors.ClimateZone)
			assert.Equal(t, tt.terrain, factors.TerrainType)
			assert.Equal(t, tt.lat, factors.Latitude)
			assert.Equal(t, tt.lon, factors.Longitude)
		})
	}
}

func TestEngine_FactorsOf_ElevationRegions(t *testing.T) {
	engine := NewEngine(DefaultParams())

	// Гималайский регион даёт высокогорную оценку
	himalaya := engine.FactorsOf(28.0, 84.0)
	assert.Equal(t, 1400.0, himalaya.Elevation)
	assert.Equal(t, domain.ZoneHighland, himalaya.ClimateZone)

	// Вне известных регионов используется высота по умолчанию
	unknown := engine.FactorsOf(-33.9, 18.4)
	assert.Equal(t, engine.Params().DefaultElevation, unknown.Elevation)
}

func TestEngine_FactorsOf_UrbanHeat(t *testing.T) {
	engine := NewEngine(DefaultParams())

	delhi := engine.FactorsOf(28.7041, 77.1025)
	assert.Equal(t, 3.0, delhi.UrbanHeatEffect)

	remote := engine.FactorsOf(0, 0)
	assert.Equal(t, 0.0, remote.UrbanHeatEffect)
}

package domain

// ClimateZone - климатическая зона по упрощённой классификации Кёппена
type ClimateZone string

const (
	ZoneTropical    ClimateZone = "tropical"
	ZoneSubtropical ClimateZone = "subtropical"
	ZoneTemperate   ClimateZone = "temperate"
	ZoneHighland    ClimateZone = "highland"
	ZoneContinental ClimateZone = "continental"
	ZonePolar       ClimateZone = "polar"
)

// TerrainType - тип рельефа
type TerrainType string

const (
	TerrainMountain TerrainType = "mountain"
	TerrainCoastal  TerrainType = "coastal"
	TerrainInland   TerrainType = "inland"
)

// LocationFactors - географические факторы локации, вычисляются
// по координатам на каждый запрос и нигде не сохраняются
type LocationFactors struct {
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	Elevation       float64     `json:"elevation"`
	CoastalDistance float64     `json:"coastal_distance_km"`
	ClimateZone     ClimateZone `json:"climate_zone"`
	TerrainType     TerrainType `json:"terrain_type"`
	UrbanHeatEffect float64     `json:"urban_heat_effect"`
}

package besttime

import (
	"math"

	"github.com/besttime-service/internal/domain"
)

// Candidate - эталонная локация с предвычисленными факторами
type Candidate struct {
	Key     string
	Factors domain.LocationFactors
}

// Match - результат подбора похожей локации
type Match struct {
	Key        string
	Similarity float64
}

// Similarity вычисляет похожесть двух наборов факторов в диапазоне [0,1].
// Взвешенная сумма пяти нормализованных компонент; веса в сумме дают 1.0.
// Совпадение климатической зоны и рельефа считается бинарно.
func (e *Engine) Similarity(target, candidate domain.LocationFactors) float64 {
	p := e.params

	var climateMatch float64
	if target.ClimateZone == candidate.ClimateZone {
		climateMatch = 1
	}

	latMatch := 1 - math.Min(math.Abs(target.Latitude-candidate.Latitude)/p.LatitudeFalloff, 1)
	elevMatch := 1 - math.Min(math.Abs(target.Elevation-candidate.Elevation)/p.ElevationFalloff, 1)
	coastMatch := 1 - math.Min(math.Abs(target.CoastalDistance-candidate.CoastalDistance)/p.CoastalFalloff, 1)

	var terrainMatch float64
	if target.TerrainType == candidate.TerrainType {
		terrainMatch = 1
	}

	return climateMatch*p.ClimateWeight +
		latMatch*p.LatitudeWeight +
		elevMatch*p.ElevationWeight +
		coastMatch*p.CoastalWeight +
		terrainMatch*p.TerrainWeight
}

// BestMatch выбирает кандидата с максимальной похожестью.
// Возвращает nil, если лучший результат не превышает минимальный порог:
// по слабому географическому аналогу уверенная рекомендация не строится.
func (e *Engine) BestMatch(target domain.LocationFactors, candidates []Candidate) *Match {
	best := Match{}
	for _, c := range candidates {
		if sim := e.Similarity(target, c.Factors); sim > best.Similarity {
			best = Match{Key: c.Key, Similarity: sim}
		}
	}

	if best.Key == "" || best.Similarity < e.params.MinSimilarity {
		return nil
	}
	return &best
}

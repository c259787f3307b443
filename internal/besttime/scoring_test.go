package besttime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/repository/memory"
)

func goaReference(t *testing.T) *domain.ReferenceLocation {
	t.Helper()

	repo, err := memory.NewReferenceRepository()
	require.NoError(t, err)

	ref := repo.Lookup("goa")
	require.NotNil(t, ref)
	return ref
}

func TestEngine_Score_Goa(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ref := goaReference(t)

	scores := engine.Score(&ref.Climate, &ref.Tourism)

	// Сухой сезон с умеренной загруженностью
	assert.InDelta(t, 0.70, scores.For(1), 1e-9)
	assert.InDelta(t, 0.70, scores.For(2), 1e-9)
	assert.InDelta(t, 0.70, scores.For(11), 1e-9)
	assert.InDelta(t, 0.70, scores.For(12), 1e-9)

	// Муссон: влажные месяцы со штрафом за наводнения
	assert.InDelta(t, 0.15, scores.For(6), 1e-9)
	assert.InDelta(t, 0.25, scores.For(7), 1e-9)
	assert.InDelta(t, 0.25, scores.For(8), 1e-9)
	assert.InDelta(t, 0.25, scores.For(9), 1e-9)

	// Переходные месяцы
	assert.InDelta(t, 0.50, scores.For(3), 1e-9)
	assert.InDelta(t, 0.50, scores.For(10), 1e-9)
}

func TestEngine_Score_ClampInvariant(t *testing.T) {
	engine := NewEngine(DefaultParams())

	// Профиль, собирающий все бонусы сразу
	allBonuses := &domain.ClimateProfile{
		DryMonths:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		SeasonalHumidity: [12]float64{50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
	}
	generousTourism := &domain.TourismProfile{
		CrowdLevels: map[int]int{
			1: 5, 2: 5, 3: 5, 4: 5, 5: 5, 6: 5,
			7: 5, 8: 5, 9: 5, 10: 5, 11: 5, 12: 5,
		},
		PriceIndex: map[int]float64{
			1: 0.5, 2: 0.5, 3: 0.5, 4: 0.5, 5: 0.5, 6: 0.5,
			7: 0.5, 8: 0.5, 9: 0.5, 10: 0.5, 11: 0.5, 12: 0.5,
		},
		Accessibility: map[int]bool{
			1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
			7: true, 8: true, 9: true, 10: true, 11: true, 12: true,
		},
	}

	// Профиль, собирающий все штрафы
	allPenalties := &domain.ClimateProfile{
		WetMonths:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
		SeasonalHumidity: [12]float64{95, 95, 95, 95, 95, 95, 95, 95, 95, 95, 95, 95},
		ExtremeHeat:      true,
		Flooding:         true,
	}
	hostileTourism := &domain.TourismProfile{
		CrowdLevels: map[int]int{
			1: 10, 2: 10, 3: 10, 4: 10, 5: 10, 6: 10,
			7: 10, 8: 10, 9: 10, 10: 10, 11: 10, 12: 10,
		},
		PriceIndex: map[int]float64{
			1: 2, 2: 2, 3: 2, 4: 2, 5: 2, 6: 2,
			7: 2, 8: 2, 9: 2, 10: 2, 11: 2, 12: 2,
		},
		Accessibility: map[int]bool{},
	}

	for _, tc := range []struct {
		name    string
		climate *domain.ClimateProfile
		tourism *domain.TourismProfile
	}{
		{"all bonuses", allBonuses, generousTourism},
		{"all penalties", allPenalties, hostileTourism},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scores := engine.Score(tc.climate, tc.tourism)
			for month := 1; month <= 12; month++ {
				score := scores.For(month)
				assert.GreaterOrEqual(t, score, 0.0, "month %d", month)
				assert.LessOrEqual(t, score, 1.0, "month %d", month)
			}
		})
	}
}

func TestEngine_Score_FloodPenaltyRequiresFlag(t *testing.T) {
	engine := NewEngine(DefaultParams())

	climate := &domain.ClimateProfile{
		WetMonths:        []int{6},
		SeasonalHumidity: [12]float64{50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
	}
	tourism := &domain.TourismProfile{
		CrowdLevels:   map[int]int{},
		PriceIndex:    map[int]float64{},
		Accessibility: map[int]bool{},
	}

	withoutFlood := engine.Score(climate, tourism).For(6)

	climate.Flooding = true
	withFlood := engine.Score(climate, tourism).For(6)

	assert.InDelta(t, engine.Params().FloodPenalty, withoutFlood-withFlood, 1e-9)
}

func TestEngine_Score_HeatPenaltyOnlySummerMonths(t *testing.T) {
	engine := NewEngine(DefaultParams())

	climate := &domain.ClimateProfile{
		SeasonalHumidity: [12]float64{50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
		ExtremeHeat:      true,
	}
	tourism := &domain.TourismProfile{
		CrowdLevels:   map[int]int{},
		PriceIndex:    map[int]float64{},
		Accessibility: map[int]bool{},
	}

	scores := engine.Score(climate, tourism)

	// Штраф применяется в летних месяцах и только в них
	assert.Greater(t, scores.For(1), scores.For(5))
	assert.Equal(t, scores.For(5), scores.For(6))
	assert.Equal(t, scores.For(6), scores.For(7))
	assert.Equal(t, scores.For(7), scores.For(8))
	assert.Equal(t, scores.For(1), scores.For(9))
}

func TestEngine_Classify(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ref := goaReference(t)

	scores := engine.Score(&ref.Climate, &ref.Tourism)
	classes := engine.Classify(scores)

	assert.Equal(t, []int{1, 2, 11, 12}, classes.Best)
	assert.Equal(t, []int{3, 10}, classes.Shoulder)
	assert.Equal(t, []int{6, 7, 8, 9}, classes.Avoid)

	// Списки взаимно не пересекаются
	seen := make(map[int]int)
	for _, m := range classes.Best {
		seen[m]++
	}
	for _, m := range classes.Shoulder {
		seen[m]++
	}
	for _, m := range classes.Avoid {
		seen[m]++
	}
	for m, count := range seen {
		assert.Equal(t, 1, count, "month %d classified more than once", m)
	}
}

func TestEngine_Classify_ThresholdBoundaries(t *testing.T) {
	engine := NewEngine(DefaultParams())
	p := engine.Params()

	// Суммы бонусов попадают ровно на пороги классификации:
	// месяц 1 набирает 0.50 (shoulder), месяц 2 - 0.70 (best).
	// Слагаемые вида 0.15 неточны в двоичном виде, поэтому без
	// округления сумма 0.49999999999999994 выпадала бы из категории.
	climate := &domain.ClimateProfile{
		DryMonths:        []int{1, 2},
		SeasonalHumidity: [12]float64{50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50},
	}
	tourism := &domain.TourismProfile{
		CrowdLevels:   map[int]int{1: 8, 2: 5},
		PriceIndex:    map[int]float64{1: 1.0, 2: 1.0},
		Accessibility: map[int]bool{2: true},
	}

	scores := engine.Score(climate, tourism)
	assert.Equal(t, p.ShoulderThreshold, scores.For(1))
	assert.Equal(t, p.BestThreshold, scores.For(2))

	classes := engine.Classify(scores)
	assert.Contains(t, classes.Shoulder, 1)
	assert.Contains(t, classes.Best, 2)
}

func TestEngine_Classify_MiddleGroundUncategorized(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ref := goaReference(t)

	scores := engine.Score(&ref.Climate, &ref.Tourism)
	classes := engine.Classify(scores)

	// Апрель и май (0.45) между порогами avoid и shoulder
	for _, m := range []int{4, 5} {
		assert.NotContains(t, classes.Best, m)
		assert.NotContains(t, classes.Shoulder, m)
		assert.NotContains(t, classes.Avoid, m)
	}
}

func TestEngine_Accuracy(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ref := goaReference(t)

	scores := engine.Score(&ref.Climate, &ref.Tourism)
	assert.InDelta(t, 0.47, engine.Accuracy(scores), 1e-9)
}

func TestEngine_IdealDuration(t *testing.T) {
	engine := NewEngine(DefaultParams())

	tests := []struct {
		name     string
		climate  domain.ClimateProfile
		tourism  domain.TourismProfile
		expected int
	}{
		{
			name:     "stable climate, long peak",
			climate:  domain.ClimateProfile{SeasonalVariation: 5},
			tourism:  domain.TourismProfile{PeakSeason: []int{1, 2, 3, 4, 5}},
			expected: 4,
		},
		{
			name:     "short peak season",
			climate:  domain.ClimateProfile{SeasonalVariation: 6},
			tourism:  domain.TourismProfile{PeakSeason: []int{12, 1, 2}},
			expected: 5,
		},
		{
			name:     "variable climate and short peak",
			climate:  domain.ClimateProfile{SeasonalVariation: 25},
			tourism:  domain.TourismProfile{PeakSeason: []int{10, 11}},
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.IdealDuration(&tt.climate, &tt.tourism))
		})
	}
}

func TestEngine_Score_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultParams())
	ref := goaReference(t)

	first := engine.Score(&ref.Climate, &ref.Tourism)
	second := engine.Score(&ref.Climate, &ref.Tourism)
	assert.Equal(t, first, second)
}

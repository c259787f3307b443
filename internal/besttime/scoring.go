package besttime

import (
	"math"

	"github.com/besttime-service/internal/domain"
)

// Score вычисляет помесячные оценки пригодности по климатическому
// и туристическому профилям. Каждая оценка ограничена диапазоном [0,1].
func (e *Engine) Score(climate *domain.ClimateProfile, tourism *domain.TourismProfile) domain.MonthScores {
	var scores domain.MonthScores
	for month := 1; month <= 12; month++ {
		scores[month-1] = e.scoreMonth(month, climate, tourism)
	}
	return scores
}

func (e *Engine) scoreMonth(month int, climate *domain.ClimateProfile, tourism *domain.TourismProfile) float64 {
	p := e.params
	var score float64

	// Погодные факторы
	if !climate.IsWetMonth(month) {
		score += p.NotWetBonus
	}
	if climate.IsDryMonth(month) {
		score += p.DryBonus
	}
	if climate.HumidityFor(month) < p.HumidityLimit {
		score += p.HumidityBonus
	}

	// Туристические факторы: умеренная загруженность предпочтительна,
	// низкая тоже приемлема, но без атмосферы
	crowd := tourism.CrowdLevelFor(month)
	switch {
	case crowd >= p.CrowdBandLow && crowd <= p.CrowdBandHigh:
		score += p.ModerateCrowd
	case crowd < p.CrowdBandLow:
		score += p.QuietCrowd
	}

	price := tourism.PriceIndexFor(month)
	if price < p.CheapLimit {
		score += p.CheapBonus
	}
	if price < p.VeryCheapLimit {
		score += p.VeryCheapBonus
	}

	if tourism.IsAccessible(month) {
		score += p.AccessBonus
	}

	// Факторы безопасности. Штраф за влажный месяц применяется только
	// при явно установленном флаге риска наводнений.
	if climate.Flooding && climate.IsWetMonth(month) {
		score -= p.FloodPenalty
	}
	if climate.ExtremeHeat && containsMonth(p.HeatMonths, month) {
		score -= p.HeatPenalty
	}

	// Бонусы и штрафы выражены в сотых; двоичная погрешность суммирования
	// не должна смещать оценку через порог классификации
	score = math.Round(score*100) / 100

	return math.Max(0, math.Min(1, score))
}

// Classify раскладывает месяцы по категориям best/shoulder/avoid.
// Месяцы между порогами avoid и shoulder остаются без категории.
// Списки отсортированы по календарю и взаимно не пересекаются.
func (e *Engine) Classify(scores domain.MonthScores) domain.MonthClassification {
	p := e.params
	var c domain.MonthClassification

	for month := 1; month <= 12; month++ {
		score := scores.For(month)
		switch {
		case score >= p.BestThreshold:
			c.Best = append(c.Best, month)
		case score >= p.ShoulderThreshold:
			c.Shoulder = append(c.Shoulder, month)
		case score < p.AvoidThreshold:
			c.Avoid = append(c.Avoid, month)
		}
	}
	return c
}

// Accuracy - среднее всех помесячных оценок, округлённое до 2 знаков
func (e *Engine) Accuracy(scores domain.MonthScores) float64 {
	return math.Round(scores.Mean()*100) / 100
}

// IdealDuration вычисляет рекомендуемую длительность поездки в днях.
// Переменчивый климат и короткий высокий сезон требуют больше времени.
func (e *Engine) IdealDuration(climate *domain.ClimateProfile, tourism *domain.TourismProfile) int {
	p := e.params
	duration := p.BaseTripDays

	if climate.SeasonalVariation > p.VariableClimate {
		duration++
	}
	if len(tourism.PeakSeason) <= p.ShortPeakSeason {
		duration++
	}

	if duration > p.MaxTripDays {
		duration = p.MaxTripDays
	}
	return duration
}

func containsMonth(months []int, month int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

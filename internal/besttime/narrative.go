package besttime

import (
	"fmt"
	"strings"

	"github.com/besttime-service/internal/domain"
)

// TimingSummary строит текстовую сводку по списку лучших месяцев.
// Ожидает месяцы в календарном порядке (как возвращает Classify).
// Непрерывный блок от RangeMinLength месяцев сворачивается в диапазон,
// иначе выводится перечисление через запятую.
func (e *Engine) TimingSummary(bestMonths []int) string {
	if len(bestMonths) == 0 {
		return "Year-round destination"
	}

	if len(bestMonths) >= e.params.RangeMinLength && isContiguous(bestMonths) {
		return fmt.Sprintf("%s to %s",
			domain.MonthNames[bestMonths[0]],
			domain.MonthNames[bestMonths[len(bestMonths)-1]])
	}

	names := make([]string, len(bestMonths))
	for i, m := range bestMonths {
		names[i] = domain.MonthNames[m]
	}
	return strings.Join(names, ", ")
}

func isContiguous(months []int) bool {
	for i := 1; i < len(months); i++ {
		if months[i] != months[i-1]+1 {
			return false
		}
	}
	return true
}

// WeatherSummary строит сводку по климатическому профилю
func (e *Engine) WeatherSummary(climate *domain.ClimateProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Average %g°C (%g-%g°C range).",
		climate.AvgTemp, climate.MinTemp, climate.MaxTemp)

	switch climate.Monsoon {
	case domain.MonsoonLight, domain.MonsoonModerate, domain.MonsoonHeavy:
		fmt.Fprintf(&b, " %s monsoon season affects %d months.",
			capitalize(string(climate.Monsoon)), len(climate.WetMonths))
	}

	if climate.ExtremeHeat {
		b.WriteString(" Extreme heat possible in summer months.")
	}

	return b.String()
}

// CrowdSummary строит сводку по сезонной загруженности
func (e *Engine) CrowdSummary(tourism *domain.TourismProfile) string {
	return fmt.Sprintf(
		"Peak season: %d months. Shoulder season: %d months. Best for avoiding crowds: off-season periods.",
		len(tourism.PeakSeason), len(tourism.ShoulderSeason))
}

// PriceSummary строит сводку по сезонному разбросу цен
func (e *Engine) PriceSummary(tourism *domain.TourismProfile) string {
	if len(tourism.PriceIndex) == 0 {
		return "Price information not available."
	}

	min, max := priceRange(tourism.PriceIndex)
	return fmt.Sprintf(
		"Price variation: %.0f%% difference between peak and off-season.",
		(max-min)*100)
}

func priceRange(index map[int]float64) (min, max float64) {
	first := true
	for _, v := range index {
		if first {
			min, max = v, v
			first = false
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Tips формирует список практических советов по профилям локации
func (e *Engine) Tips(climate *domain.ClimateProfile, tourism *domain.TourismProfile) []string {
	var tips []string

	if climate.ExtremeHeat {
		tips = append(tips, "Pack sun protection and stay hydrated during summer months")
	}
	if climate.Monsoon == domain.MonsoonHeavy {
		tips = append(tips, "Waterproof gear essential during monsoon season")
	}
	if _, max := priceRange(tourism.PriceIndex); max > 1.5 {
		tips = append(tips, "Book accommodations early for peak season or consider shoulder months for savings")
	}
	if climate.AvgHumidity > 80 {
		tips = append(tips, "Lightweight, breathable clothing recommended year-round")
	}

	return tips
}

// Warnings формирует список предупреждений по профилям локации
func (e *Engine) Warnings(climate *domain.ClimateProfile, tourism *domain.TourismProfile) []string {
	var warnings []string

	if climate.Flooding {
		warnings = append(warnings, "Flooding possible during heavy monsoon months - check current conditions")
	}
	if climate.Typhoons {
		warnings = append(warnings, "Typhoon season may affect travel plans - monitor weather forecasts")
	}

	if inaccessible := tourism.InaccessibleMonths(); len(inaccessible) > 0 {
		names := make([]string, len(inaccessible))
		for i, m := range inaccessible {
			names[i] = domain.MonthNames[m]
		}
		warnings = append(warnings,
			fmt.Sprintf("Limited accessibility during months: %s", strings.Join(names, ", ")))
	}

	return warnings
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package domain

// EventImpact - влияние локального события на поездку
type EventImpact string

const (
	ImpactPositive EventImpact = "positive"
	ImpactNegative EventImpact = "negative"
	ImpactNeutral  EventImpact = "neutral"
)

// LocalEvent - локальное событие (фестиваль, сезонное явление)
type LocalEvent struct {
	Month  int         `json:"month"`
	Name   string      `json:"name"`
	Impact EventImpact `json:"impact"`
}

// TourismProfile - туристический профиль локации
type TourismProfile struct {
	PeakSeason     []int `json:"peak_season"`
	ShoulderSeason []int `json:"shoulder_season"`
	OffSeason      []int `json:"off_season"`

	// CrowdLevels - уровень загруженности по месяцам, шкала 1-10
	CrowdLevels map[int]int `json:"crowd_levels"`
	// PriceIndex - ценовой мультипликатор по месяцам, обычно 0.5-2.0
	PriceIndex map[int]float64 `json:"price_index"`
	// Accessibility - доступность локации по месяцам
	Accessibility map[int]bool `json:"accessibility"`

	LocalEvents []LocalEvent `json:"local_events"`
}

// CrowdLevelFor возвращает уровень загруженности для месяца,
// 5 (средний) если данных нет
func (t *TourismProfile) CrowdLevelFor(month int) int {
	if level, ok := t.CrowdLevels[month]; ok {
		return level
	}
	return 5
}

// PriceIndexFor возвращает ценовой индекс для месяца, 1.0 если данных нет
func (t *TourismProfile) PriceIndexFor(month int) float64 {
	if idx, ok := t.PriceIndex[month]; ok {
		return idx
	}
	return 1.0
}

// IsAccessible проверяет доступность локации в месяце
func (t *TourismProfile) IsAccessible(month int) bool {
	return t.Accessibility[month]
}

// InaccessibleMonths возвращает отсортированный список недоступных месяцев
func (t *TourismProfile) InaccessibleMonths() []int {
	var months []int
	for m := 1; m <= 12; m++ {
		if accessible, ok := t.Accessibility[m]; ok && !accessible {
			months = append(months, m)
		}
	}
	return months
}

package domain

// MonsoonIntensity - интенсивность муссонного сезона
type MonsoonIntensity string

const (
	MonsoonNone     MonsoonIntensity = "none"
	MonsoonLight    MonsoonIntensity = "light"
	MonsoonModerate MonsoonIntensity = "moderate"
	MonsoonHeavy    MonsoonIntensity = "heavy"
)

// ClimateProfile - климатический профиль локации
type ClimateProfile struct {
	AvgTemp           float64 `json:"avg_temp"`
	MinTemp           float64 `json:"min_temp"`
	MaxTemp           float64 `json:"max_temp"`
	SeasonalVariation float64 `json:"seasonal_variation"`

	AnnualRainfall float64          `json:"annual_rainfall_mm"`
	WetMonths      []int            `json:"wet_months"`
	DryMonths      []int            `json:"dry_months"`
	Monsoon        MonsoonIntensity `json:"monsoon_intensity"`

	AvgHumidity float64 `json:"avg_humidity"`
	// SeasonalHumidity - влажность по месяцам, индекс 0 = январь
	SeasonalHumidity [12]float64 `json:"seasonal_humidity"`

	SunshineHours float64 `json:"sunshine_hours_per_day"`
	UVIndex       int     `json:"uv_index"`

	Hurricanes  bool `json:"hurricanes"`
	Typhoons    bool `json:"typhoons"`
	ExtremeHeat bool `json:"extreme_heat"`
	Flooding    bool `json:"flooding"`
}

// HumidityFor возвращает сезонную влажность для месяца 1-12
func (c *ClimateProfile) HumidityFor(month int) float64 {
	return c.SeasonalHumidity[month-1]
}

// IsWetMonth проверяет, входит ли месяц в сезон дождей
func (c *ClimateProfile) IsWetMonth(month int) bool {
	for _, m := range c.WetMonths {
		if m == month {
			return true
		}
	}
	return false
}

// IsDryMonth проверяет, входит ли месяц в сухой сезон
func (c *ClimateProfile) IsDryMonth(month int) bool {
	for _, m := range c.DryMonths {
		if m == month {
			return true
		}
	}
	return false
}

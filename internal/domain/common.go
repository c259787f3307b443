package domain

// Point - географическая точка
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MonthNames - полные названия месяцев (индекс 1-12)
var MonthNames = [13]string{"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ValidMonth проверяет, что номер месяца находится в диапазоне 1-12
func ValidMonth(m int) bool {
	return m >= 1 && m <= 12
}

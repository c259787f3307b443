// Package memory содержит встроенный справочник эталонных локаций.
//
// Справочник собирается один раз при старте процесса, валидируется
// и далее только читается - никаких операций изменения не существует.
// Новые локации добавляются в таблицу инициализации, а не через API.
package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/besttime-service/internal/domain"
	"github.com/besttime-service/internal/domain/repository"
)

type referenceRepository struct {
	locations map[string]domain.ReferenceLocation
}

// NewReferenceRepository строит справочник из встроенной таблицы.
// Каждая запись проверяется на целостность; некорректный профиль
// приводит к ошибке при старте, а не к тихой деградации.
func NewReferenceRepository() (repository.ReferenceRepository, error) {
	locations := referenceData()

	byKey := make(map[string]domain.ReferenceLocation, len(locations))
	for _, loc := range locations {
		if err := validateLocation(&loc); err != nil {
			return nil, fmt.Errorf("reference location %q: %w", loc.Key, err)
		}
		byKey[loc.Key] = loc
	}

	return &referenceRepository{locations: byKey}, nil
}

func (r *referenceRepository) Lookup(key string) *domain.ReferenceLocation {
	loc, ok := r.locations[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil
	}
	return &loc
}

func (r *referenceRepository) All() []domain.ReferenceLocation {
	all := make([]domain.ReferenceLocation, 0, len(r.locations))
	for _, loc := range r.locations {
		all = append(all, loc)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Key < all[j].Key })
	return all
}

func validateLocation(loc *domain.ReferenceLocation) error {
	if loc.Key == "" || loc.Key != strings.ToLower(loc.Key) {
		return fmt.Errorf("key must be non-empty lowercase, got %q", loc.Key)
	}

	if err := validateMonthSet("wet_months", loc.Climate.WetMonths); err != nil {
		return err
	}
	if err := validateMonthSet("dry_months", loc.Climate.DryMonths); err != nil {
		return err
	}
	for _, wet := range loc.Climate.WetMonths {
		if loc.Climate.IsDryMonth(wet) {
			return fmt.Errorf("month %d is both wet and dry", wet)
		}
	}

	// Сезоны должны покрывать все 12 месяцев без пересечений
	seen := make(map[int]string, 12)
	for name, months := range map[string][]int{
		"peak":     loc.Tourism.PeakSeason,
		"shoulder": loc.Tourism.ShoulderSeason,
		"off":      loc.Tourism.OffSeason,
	} {
		if err := validateMonthSet(name+"_season", months); err != nil {
			return err
		}
		for _, m := range months {
			if other, ok := seen[m]; ok {
				return fmt.Errorf("month %d belongs to both %s and %s season", m, other, name)
			}
			seen[m] = name
		}
	}
	if len(seen) != 12 {
		return fmt.Errorf("season sets cover %d months, want 12", len(seen))
	}

	for m := 1; m <= 12; m++ {
		level, ok := loc.Tourism.CrowdLevels[m]
		if !ok {
			return fmt.Errorf("crowd level missing for month %d", m)
		}
		if level < 1 || level > 10 {
			return fmt.Errorf("crowd level %d for month %d out of range 1-10", level, m)
		}

		price, ok := loc.Tourism.PriceIndex[m]
		if !ok {
			return fmt.Errorf("price index missing for month %d", m)
		}
		if price <= 0 {
			return fmt.Errorf("price index %g for month %d must be positive", price, m)
		}

		if _, ok := loc.Tourism.Accessibility[m]; !ok {
			return fmt.Errorf("accessibility missing for month %d", m)
		}
	}

	for _, event := range loc.Tourism.LocalEvents {
		if !domain.ValidMonth(event.Month) {
			return fmt.Errorf("event %q has invalid month %d", event.Name, event.Month)
		}
	}

	return nil
}

func validateMonthSet(name string, months []int) error {
	seen := make(map[int]bool, len(months))
	for _, m := range months {
		if !domain.ValidMonth(m) {
			return fmt.Errorf("%s contains invalid month %d", name, m)
		}
		if seen[m] {
			return fmt.Errorf("%s contains duplicate month %d", name, m)
		}
		seen[m] = true
	}
	return nil
}

package repository

import "github.com/besttime-service/internal/domain"

// ReferenceRepository - справочник эталонных локаций.
// Заполняется один раз при старте процесса и далее только читается,
// поэтому безопасен для конкурентного доступа без блокировок.
type ReferenceRepository interface {
	// Lookup ищет локацию по нормализованному (lowercase) имени города.
	// Возвращает nil, если локация не найдена.
	Lookup(key string) *domain.ReferenceLocation

	// All возвращает все эталонные локации
	All() []domain.ReferenceLocation
}

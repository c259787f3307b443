package repository

import (
	"context"
	"time"

	"github.com/besttime-service/internal/domain"
)

// CacheRepository - кеш вычисленных рекомендаций
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetBestTime получает рекомендацию из кеша, nil при промахе
	GetBestTime(ctx context.Context, key string) (*domain.BestTimeResult, error)

	// SetBestTime сохраняет рекомендацию в кеш
	SetBestTime(ctx context.Context, key string, result *domain.BestTimeResult, ttl time.Duration) error
}

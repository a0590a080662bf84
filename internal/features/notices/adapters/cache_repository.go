package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/features/notices/domain"
	"order-tracker/internal/features/notices/ports"
)

const noticeCacheKey = "delivery_notice"

var _ ports.NoticeRepository = (*CacheNoticeRepository)(nil)

// CacheNoticeRepository implements ports.NoticeRepository using the cache port.
// Expiry is delegated to the cache TTL.
type CacheNoticeRepository struct {
	cache cache.Cache
}

// NewCacheNoticeRepository creates a new CacheNoticeRepository.
func NewCacheNoticeRepository(c cache.Cache) *CacheNoticeRepository {
	return &CacheNoticeRepository{
		cache: c,
	}
}

// Save stores the notice; a ttl of 0 keeps it until deleted.
func (r *CacheNoticeRepository) Save(ctx context.Context, notice *domain.Notice, ttl time.Duration) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := r.cache.Set(ctx, noticeCacheKey, data, ttl); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// Get retrieves the active notice, or nil when there is none.
func (r *CacheNoticeRepository) Get(ctx context.Context) (*domain.Notice, error) {
	data, err := r.cache.Get(ctx, noticeCacheKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notice from cache: %w", err)
	}

	var notice domain.Notice
	if err := json.Unmarshal(data, &notice); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notice: %w", err)
	}

	return &notice, nil
}

// Delete removes the notice from the cache.
func (r *CacheNoticeRepository) Delete(ctx context.Context) error {
	if err := r.cache.Delete(ctx, noticeCacheKey); err != nil {
		return fmt.Errorf("failed to delete notice from cache: %w", err)
	}
	return nil
}

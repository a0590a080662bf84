package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"order-tracker/internal/core/cache"
	"order-tracker/internal/features/orders/domain"
	"order-tracker/internal/features/orders/ports"
)

const (
	orderKeyPrefix = "order:"
	orderIndexKey  = "orders:index"
)

var _ ports.OrderRepository = (*CacheRepository)(nil)

// CacheRepository implements ports.OrderRepository on top of the cache port.
// Orders are stored as JSON under "order:<id>"; "orders:index" keeps dataset order.
type CacheRepository struct {
	cache cache.Cache
}

// NewCacheRepository creates a new CacheRepository.
func NewCacheRepository(c cache.Cache) *CacheRepository {
	return &CacheRepository{cache: c}
}

// Seed validates the dataset and writes it to the cache without expiration.
func (r *CacheRepository) Seed(ctx context.Context, orders []*domain.Order) error {
	ids := make([]string, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))

	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return err
		}
		if _, dup := seen[order.OrderID]; dup {
			return fmt.Errorf("duplicate order id %s", order.OrderID)
		}
		seen[order.OrderID] = struct{}{}

		data, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("failed to marshal order %s: %w", order.OrderID, err)
		}
		if err := r.cache.Set(ctx, orderKeyPrefix+order.OrderID, data, 0); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", order.OrderID, err)
		}
		ids = append(ids, order.OrderID)
	}

	index, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal order index: %w", err)
	}
	if err := r.cache.Set(ctx, orderIndexKey, index, 0); err != nil {
		return fmt.Errorf("failed to seed order index: %w", err)
	}
	return nil
}

// FindOrderByID decodes the cached order or returns ports.ErrNotFound.
func (r *CacheRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	data, err := r.cache.Get(ctx, orderKeyPrefix+orderID)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order from cache: %w", err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order %s: %w", orderID, err)
	}
	return &order, nil
}

// ListOrderIDs reads the seeded index. An unseeded cache has no orders.
func (r *CacheRepository) ListOrderIDs(ctx context.Context) ([]string, error) {
	data, err := r.cache.Get(ctx, orderIndexKey)
	if errors.Is(err, cache.ErrCacheMiss) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order index from cache: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order index: %w", err)
	}
	return ids, nil
}

package adapters

import (
	"context"
	"fmt"

	"order-tracker/internal/features/orders/domain"
	"order-tracker/internal/features/orders/ports"
)

var _ ports.OrderRepository = (*MemoryRepository)(nil)

// MemoryRepository serves a fixed, validated dataset held in process.
// It is immutable after construction, so no locking is needed.
type MemoryRepository struct {
	orders []*domain.Order
	byID   map[string]*domain.Order
}

// NewMemoryRepository validates the dataset and indexes it by order id.
func NewMemoryRepository(orders []*domain.Order) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		orders: make([]*domain.Order, 0, len(orders)),
		byID:   make(map[string]*domain.Order, len(orders)),
	}

	for _, order := range orders {
		if order == nil {
			return nil, fmt.Errorf("dataset contains a nil order")
		}
		if err := order.Validate(); err != nil {
			return nil, err
		}
		if _, dup := repo.byID[order.OrderID]; dup {
			return nil, fmt.Errorf("duplicate order id %s", order.OrderID)
		}
		clone := order.Clone()
		repo.orders = append(repo.orders, clone)
		repo.byID[clone.OrderID] = clone
	}

	return repo, nil
}

// FindOrderByID returns a copy of the matching order or ports.ErrNotFound.
func (r *MemoryRepository) FindOrderByID(_ context.Context, orderID string) (*domain.Order, error) {
	order, ok := r.byID[orderID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

// ListOrderIDs returns the identifiers in dataset order.
func (r *MemoryRepository) ListOrderIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.orders))
	for _, order := range r.orders {
		ids = append(ids, order.OrderID)
	}
	return ids, nil
}

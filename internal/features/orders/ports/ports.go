package ports

import (
	"context"
	"errors"

	"order-tracker/internal/features/orders/domain"
)

// ErrNotFound is returned by repositories when no order matches the identifier.
var ErrNotFound = errors.New("order not found")

// OrderRepository resolves order identifiers to read-only order records.
// This is a Secondary Port (Driven Port).
type OrderRepository interface {
	// FindOrderByID performs an exact, case-sensitive match on the order id.
	// It returns ErrNotFound when nothing matches.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	// ListOrderIDs returns every known identifier in dataset order.
	ListOrderIDs(ctx context.Context) ([]string, error)
}

// OrderService is the primary port consumed by handlers and the tracking feature.
type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	AvailableOrderIDs(ctx context.Context) ([]string, error)
}

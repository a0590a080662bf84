package service

import (
	"context"
	"errors"
	"fmt"

	"order-tracker/internal/features/orders/domain"
	"order-tracker/internal/features/orders/ports"
)

var (
	// ErrMissingIdentifier is returned when no order id was supplied.
	ErrMissingIdentifier = errors.New("order id is required")
	// ErrOrderNotFound is returned when the order does not exist.
	ErrOrderNotFound = errors.New("order not found")
)

var _ ports.OrderService = (*OrderService)(nil)

// OrderService resolves order identifiers for the HTTP and tracking layers.
type OrderService struct {
	// repo is the order store.
	repo ports.OrderRepository
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(repo ports.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// GetOrder returns the order for orderID.
// Both error sentinels are expected outcomes, not failures.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, ErrMissingIdentifier
	}

	order, err := s.repo.FindOrderByID(ctx, orderID)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to find order: %w", err)
	}

	return order, nil
}

// AvailableOrderIDs lists the identifiers a caller can look up.
func (s *OrderService) AvailableOrderIDs(ctx context.Context) ([]string, error) {
	ids, err := s.repo.ListOrderIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return ids, nil
}

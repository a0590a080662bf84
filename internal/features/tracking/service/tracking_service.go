package service

import (
	"context"
	"time"

	"order-tracker/internal/core/clock"
	"order-tracker/internal/core/logger"
	orderports "order-tracker/internal/features/orders/ports"
	"order-tracker/internal/features/tracking/domain"
	"order-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// DefaultRefreshInterval is the ETA re-evaluation cadence used when none is configured.
const DefaultRefreshInterval = time.Second

var _ ports.TrackingService = (*TrackingService)(nil)

// TrackingService builds tracking views and drives the live ETA.
type TrackingService struct {
	orders   orderports.OrderService
	notices  ports.NoticeReader
	clock    clock.Clock
	interval time.Duration
}

// NewTrackingService creates a new TrackingService.
// notices may be nil; a non-positive interval falls back to DefaultRefreshInterval.
func NewTrackingService(orders orderports.OrderService, notices ports.NoticeReader, clk clock.Clock, interval time.Duration) *TrackingService {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &TrackingService{
		orders:   orders,
		notices:  notices,
		clock:    clk,
		interval: interval,
	}
}

// GetView resolves the order and projects it at the current time.
// A failing notice store degrades to a view without a notice.
func (s *TrackingService) GetView(ctx context.Context, orderID string) (*domain.TrackingView, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	view, err := domain.BuildView(order, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if s.notices != nil {
		notice, err := s.notices.GetNotice(ctx)
		if err != nil {
			logger.ForOrder(orderID).Warn("Failed to load delivery notice", zap.Error(err))
		} else {
			view.Notice = notice
		}
	}

	return view, nil
}

// Watch resolves the order before returning so lookup errors reach the caller
// synchronously. The returned channel is owned by a single goroutine that stops
// its ticker and closes the channel once ctx is done.
func (s *TrackingService) Watch(ctx context.Context, orderID string) (<-chan domain.ETAUpdate, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	updates := make(chan domain.ETAUpdate)
	estimated := order.EstimatedDelivery

	go func() {
		defer close(updates)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		publish := func() bool {
			now := s.clock.Now()
			update := domain.ETAUpdate{
				OrderID:           order.OrderID,
				TimeUntilDelivery: domain.TimeUntilDelivery(estimated, now),
				At:                now,
			}
			select {
			case updates <- update:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !publish() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !publish() {
					return
				}
			}
		}
	}()

	return updates, nil
}

// AvailableOrderIDs passes through to the order service.
func (s *TrackingService) AvailableOrderIDs(ctx context.Context) ([]string, error) {
	return s.orders.AvailableOrderIDs(ctx)
}

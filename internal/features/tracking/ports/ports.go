package ports

import (
	"context"

	notices "order-tracker/internal/features/notices/domain"
	"order-tracker/internal/features/tracking/domain"
)

// TrackingService is the primary port for the tracking page, the JSON view and the live ETA.
type TrackingService interface {
	// GetView projects the order at the current clock reading.
	GetView(ctx context.Context, orderID string) (*domain.TrackingView, error)
	// Watch publishes an ETA update immediately and then on every refresh tick
	// until ctx is cancelled, at which point the channel is closed.
	Watch(ctx context.Context, orderID string) (<-chan domain.ETAUpdate, error)
	// AvailableOrderIDs lists identifiers for the landing page and not-found hints.
	AvailableOrderIDs(ctx context.Context) ([]string, error)
}

// NoticeReader exposes the active delivery notice, nil when none is set.
type NoticeReader interface {
	GetNotice(ctx context.Context) (*notices.Notice, error)
}

package ports

import (
	"context"
	"time"

	"order-tracker/internal/features/notices/domain"
)

// NoticeService defines the primary port for notice operations.
type NoticeService interface {
	SetNotice(ctx context.Context, title, message string, level domain.Level, ttl time.Duration) (*domain.Notice, error)
	GetNotice(ctx context.Context) (*domain.Notice, error)
	RemoveNotice(ctx context.Context) error
}

// NoticeRepository defines the secondary port for notice storage.
// Get returns nil, nil when no notice is active.
type NoticeRepository interface {
	Save(ctx context.Context, notice *domain.Notice, ttl time.Duration) error
	Get(ctx context.Context) (*domain.Notice, error)
	Delete(ctx context.Context) error
}

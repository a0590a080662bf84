package service

import (
	"context"
	"fmt"
	"time"

	"order-tracker/internal/core/clock"
	"order-tracker/internal/features/notices/domain"
	"order-tracker/internal/features/notices/ports"
)

var _ ports.NoticeService = (*NoticeService)(nil)

// NoticeService implements ports.NoticeService.
type NoticeService struct {
	repo  ports.NoticeRepository
	clock clock.Clock
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(repo ports.NoticeRepository, clk clock.Clock) *NoticeService {
	return &NoticeService{
		repo:  repo,
		clock: clk,
	}
}

// SetNotice validates, stores and returns a new notice, replacing any active one.
func (s *NoticeService) SetNotice(ctx context.Context, title, message string, level domain.Level, ttl time.Duration) (*domain.Notice, error) {
	notice, err := domain.NewNotice(title, message, level, ttl, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, notice, ttl); err != nil {
		return nil, fmt.Errorf("service: failed to save notice: %w", err)
	}

	return notice, nil
}

// GetNotice retrieves the active notice, or nil when none is set.
func (s *NoticeService) GetNotice(ctx context.Context) (*domain.Notice, error) {
	notice, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notice: %w", err)
	}

	return notice, nil
}

// RemoveNotice deletes the active notice.
func (s *NoticeService) RemoveNotice(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove notice: %w", err)
	}

	return nil
}

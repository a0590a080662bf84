package domain

import (
	"errors"
	"time"
)

// Level represents the severity of a delivery notice.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelDanger  Level = "DANGER"
)

var (
	ErrInvalidLevel = errors.New("invalid notice level")
	ErrEmptyTitle   = errors.New("notice title is required")
	ErrNegativeTTL  = errors.New("notice ttl must not be negative")
)

// Notice is a site-wide message shown on every tracking page, e.g. weather delays.
type Notice struct {
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Level     Level      `json:"level"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil means until removed
}

// NewNotice validates the input and stamps the notice with now.
// A ttl of 0 keeps the notice until it is removed.
func NewNotice(title, message string, level Level, ttl time.Duration, now time.Time) (*Notice, error) {
	switch level {
	case LevelInfo, LevelWarning, LevelDanger:
	default:
		return nil, ErrInvalidLevel
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if ttl < 0 {
		return nil, ErrNegativeTTL
	}

	notice := &Notice{
		Title:     title,
		Message:   message,
		Level:     level,
		CreatedAt: now,
	}
	if ttl > 0 {
		expires := now.Add(ttl)
		notice.ExpiresAt = &expires
	}
	return notice, nil
}

// TTL returns the remaining lifetime relative to now; 0 means no expiry.
func (n *Notice) TTL(now time.Time) time.Duration {
	if n.ExpiresAt == nil {
		return 0
	}
	return n.ExpiresAt.Sub(now)
}

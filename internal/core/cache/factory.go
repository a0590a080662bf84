package cache

import (
	"fmt"

	"order-tracker/internal/core/config"
)

// New builds the Cache selected by the storage configuration.
func New(cfg config.StorageConfig) (Cache, error) {
	switch cfg.CacheDriver {
	case config.CacheDriverRedis:
		return NewRedisAdapter(cfg.RedisURL)
	case config.CacheDriverMemory, "":
		return NewMemoryAdapter(), nil
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.CacheDriver)
	}
}

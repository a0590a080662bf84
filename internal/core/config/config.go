package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// Supported values for OrderStore.
const (
	OrderStoreMemory = "memory"
	OrderStoreCache  = "cache"
)

// Supported values for CacheDriver.
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Storage selects where orders and notices live.
	Storage StorageConfig `mapstructure:",squash"`

	// Tracking holds the delivery ETA settings.
	Tracking TrackingConfig `mapstructure:",squash"`
}

// StorageConfig selects the order repository and the cache backend behind it.
type StorageConfig struct {
	// OrderStore is either "memory" (dataset held in process) or "cache" (dataset seeded into the cache).
	OrderStore string `mapstructure:"ORDER_STORE" default:"memory"`
	// CacheDriver is either "memory" or "redis".
	CacheDriver string `mapstructure:"CACHE_DRIVER" default:"memory"`
	// RedisURL is used when CacheDriver is "redis", e.g. redis://localhost:6379/0.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// TrackingConfig holds the ETA computation settings.
type TrackingConfig struct {
	// Timezone is the IANA location used to decide what "today" means for an ETA.
	Timezone string `mapstructure:"DELIVERY_TIMEZONE" default:"Local"`
	// RefreshInterval is the cadence at which the ETA is re-evaluated for live streams.
	RefreshInterval time.Duration `mapstructure:"ETA_REFRESH_INTERVAL" default:"1s"`
	// MaxStreamDuration bounds a single live ETA stream.
	MaxStreamDuration time.Duration `mapstructure:"ETA_STREAM_MAX_DURATION" default:"30m"`
}

// Location resolves the configured delivery time zone.
func (t TrackingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(t.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid DELIVERY_TIMEZONE %q: %w", t.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the cross-field rules that struct tags cannot express.
func (c *AppConfig) Validate() error {
	switch c.Storage.OrderStore {
	case OrderStoreMemory, OrderStoreCache:
	default:
		return fmt.Errorf("invalid ORDER_STORE %q: must be %s or %s", c.Storage.OrderStore, OrderStoreMemory, OrderStoreCache)
	}

	switch c.Storage.CacheDriver {
	case CacheDriverMemory:
	case CacheDriverRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("missing required configuration: REDIS_URL")
		}
	default:
		return fmt.Errorf("invalid CACHE_DRIVER %q: must be %s or %s", c.Storage.CacheDriver, CacheDriverMemory, CacheDriverRedis)
	}

	if c.Tracking.RefreshInterval <= 0 {
		return fmt.Errorf("ETA_REFRESH_INTERVAL must be positive")
	}
	if c.Tracking.MaxStreamDuration <= 0 {
		return fmt.Errorf("ETA_STREAM_MAX_DURATION must be positive")
	}
	if _, err := c.Tracking.Location(); err != nil {
		return err
	}

	return nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

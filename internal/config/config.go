package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when the loaded configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Tracker  TrackerConfig  `mapstructure:"tracker"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Geo      GeoConfig      `mapstructure:"geo"`
	Redis    RedisConfig    `mapstructure:"redis"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	Mode string `mapstructure:"mode" validate:"oneof=debug release test"`
}

// TrackerConfig holds the redirect destination and dashboard settings
type TrackerConfig struct {
	RedirectURL string `mapstructure:"redirect_url" validate:"required,url"`
	AccountName string `mapstructure:"account_name"`
	// Async records visits in the background after the redirect is written.
	Async       bool `mapstructure:"async"`
	RecentLimit int  `mapstructure:"recent_limit" validate:"min=0"`
}

// StorageConfig selects the visit store backend
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"omitempty,oneof=sqlite mysql postgres csv"`
	DSN    string `mapstructure:"dsn" validate:"required"`
}

// GeoConfig represents geolocation lookup configuration
type GeoConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimit int           `mapstructure:"rate_limit" validate:"min=0"`
	Cache     string        `mapstructure:"cache" validate:"oneof=none memory redis"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
	Breaker   BreakerConfig `mapstructure:"breaker"`
}

// BreakerConfig represents the circuit breaker guarding the geo provider
type BreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MinRequests  uint32        `mapstructure:"min_requests"`
	FailureRatio float64       `mapstructure:"failure_ratio" validate:"gte=0,lte=1"`
	Interval     time.Duration `mapstructure:"interval"`
	OpenTimeout  time.Duration `mapstructure:"open_timeout"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RocketMQConfig represents RocketMQ configuration
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// Load loads configuration from an optional YAML file, a .env file and the environment.
// A missing config file is not an error; defaults and environment variables still apply.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.DSN = os.ExpandEnv(cfg.Storage.DSN)
	cfg.Redis.Password = os.ExpandEnv(cfg.Redis.Password)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("tracker.redirect_url", "https://www.instagram.com")
	v.SetDefault("tracker.account_name", "")
	v.SetDefault("tracker.async", false)
	v.SetDefault("tracker.recent_limit", 0)
	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.dsn", "data/tracking.db")
	v.SetDefault("geo.base_url", "http://ip-api.com/json")
	v.SetDefault("geo.timeout", 3*time.Second)
	v.SetDefault("geo.rate_limit", 45)
	v.SetDefault("geo.cache", "none")
	v.SetDefault("geo.cache_ttl", 24*time.Hour)
	v.SetDefault("geo.breaker.enabled", true)
	v.SetDefault("geo.breaker.min_requests", 10)
	v.SetDefault("geo.breaker.failure_ratio", 0.6)
	v.SetDefault("geo.breaker.interval", time.Minute)
	v.SetDefault("geo.breaker.open_timeout", 2*time.Minute)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("rocketmq.topic", "visit_log")
	v.SetDefault("rocketmq.group", "biolink_consumer_group")
}

// bindEnv maps nested keys to TRACKER_REDIRECT_URL style variables and keeps the
// plain PORT / DATABASE_URL / REDIRECT_URL names platform deployments inject.
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("storage.dsn", "STORAGE_DSN", "DATABASE_URL")
	_ = v.BindEnv("tracker.redirect_url", "TRACKER_REDIRECT_URL", "REDIRECT_URL")
}

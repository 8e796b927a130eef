package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"biolink/internal/config"
	"biolink/internal/model"
	"biolink/pkg/util"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// GeoKeyPrefix prefixes cached IP locations
	GeoKeyPrefix = "geo:"
	// DefaultGeoCacheTTL applies when no TTL is configured
	DefaultGeoCacheTTL = 24 * time.Hour
)

// RedisRepository caches IP locations in Redis
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig, ttl time.Duration) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	if ttl <= 0 {
		ttl = DefaultGeoCacheTTL
	}

	return &RedisRepository{
		client: rdb,
		ttl:    ttl,
	}
}

// GetLocation returns the cached location for ip, or nil on a miss
func (r *RedisRepository) GetLocation(ctx context.Context, ip string) (*model.Location, error) {
	data, err := r.client.Get(ctx, r.geoKey(ip)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var loc model.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("failed to decode cached location: %w", err)
	}
	return &loc, nil
}

// SaveLocation caches loc for ip until the TTL expires
func (r *RedisRepository) SaveLocation(ctx context.Context, ip string, loc *model.Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	return r.client.Set(ctx, r.geoKey(ip), data, r.ttl).Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// geoKey hashes the address so raw visitor IPs do not appear in key names
func (r *RedisRepository) geoKey(ip string) string {
	return GeoKeyPrefix + util.HashKey(ip)
}

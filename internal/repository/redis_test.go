package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biolink/internal/config"
	"biolink/internal/model"
	"biolink/pkg/util"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		ttl:    time.Hour,
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)

	cfg := &config.RedisConfig{Addr: s.Addr()}

	repo := NewRedisRepository(cfg, 0)
	defer repo.Close()

	assert.NotNil(t, repo.client)
	assert.Equal(t, DefaultGeoCacheTTL, repo.ttl)

	ctx := context.Background()
	require.NoError(t, repo.SaveLocation(ctx, "8.8.8.8", &model.Location{Country: "United States", City: "Ashburn"}))
	loc, err := repo.GetLocation(ctx, "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, "Ashburn", loc.City)
}

func TestRedisRepository_Location(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("miss returns nil", func(t *testing.T) {
		loc, err := repo.GetLocation(ctx, "8.8.8.8")
		assert.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("save then get", func(t *testing.T) {
		want := &model.Location{Country: "United States", City: "Mountain View"}
		require.NoError(t, repo.SaveLocation(ctx, "8.8.8.8", want))

		got, err := repo.GetLocation(ctx, "8.8.8.8")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("key hides the raw address", func(t *testing.T) {
		key := GeoKeyPrefix + util.HashKey("8.8.8.8")
		assert.True(t, s.Exists(key))
		assert.Equal(t, time.Hour, s.TTL(key))
		for _, k := range s.Keys() {
			assert.NotContains(t, k, "8.8.8.8")
		}
	})

	t.Run("entry expires", func(t *testing.T) {
		s.FastForward(2 * time.Hour)

		loc, err := repo.GetLocation(ctx, "8.8.8.8")
		assert.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		require.NoError(t, s.Set(GeoKeyPrefix+util.HashKey("1.1.1.1"), "{not json"))

		loc, err := repo.GetLocation(ctx, "1.1.1.1")
		assert.Error(t, err)
		assert.Nil(t, loc)
	})
}

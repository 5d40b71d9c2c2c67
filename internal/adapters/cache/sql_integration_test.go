//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/testutil/containers"
)

func TestSQLCaches(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	t.Run("coordinates round trip and expire", func(t *testing.T) {
		c := NewSQLCoordinateCache(pg.DB)
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Set(ctx, "cep:77001002", domain.Coordinates{Lat: -10.18, Lng: -48.33}, time.Hour))

		got, ok, err := c.Get(ctx, "cep:77001002")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, domain.Coordinates{Lat: -10.18, Lng: -48.33}, got)

		now = now.Add(2 * time.Hour)
		_, ok, err = c.Get(ctx, "cep:77001002")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("coordinates overwrite existing key", func(t *testing.T) {
		c := NewSQLCoordinateCache(pg.DB)

		require.NoError(t, c.Set(ctx, "sector:5", domain.Coordinates{Lat: 1, Lng: 2}, 0))
		require.NoError(t, c.Set(ctx, "sector:5", domain.Coordinates{Lat: 3, Lng: 4}, 0))

		got, ok, err := c.Get(ctx, "sector:5")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, domain.Coordinates{Lat: 3, Lng: 4}, got)
	})

	t.Run("routes round trip", func(t *testing.T) {
		c := NewSQLRouteCache(pg.DB)
		path := domain.RoutePath{
			Coordinates:     []domain.Coordinates{{Lat: -10.1, Lng: -48.3}, {Lat: -10.2, Lng: -48.4}},
			DistanceMeters:  15400,
			DurationSeconds: 960,
		}

		require.NoError(t, c.Set(ctx, "pouch:7:3-5", path, time.Hour))

		got, ok, err := c.Get(ctx, "pouch:7:3-5")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, path, got)

		_, ok, err = c.Get(ctx, "pouch:8:3-5")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		assert.Error(t, NewSQLCoordinateCache(pg.DB).Set(ctx, "  ", domain.Coordinates{}, time.Hour))
		assert.Error(t, NewSQLRouteCache(pg.DB).Set(ctx, "", domain.RoutePath{}, time.Hour))
	})
}

package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
)

// SQLRouteCache is a Postgres-backed cache for driving paths. The polyline
// is stored as JSONB next to its distance and duration.
type SQLRouteCache struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db, now: time.Now}
}

func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ domain.RoutePath, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return domain.RoutePath{}, false, errors.New("route cache: db is nil")
	}

	q := `
	SELECT path, distance_meters, duration_seconds
	FROM route_cache
	WHERE cache_key = $1 AND expires_at > $2;
	`

	var (
		raw  []byte
		path domain.RoutePath
	)
	err = s.DB.QueryRowContext(ctx, q, strings.TrimSpace(key), s.now()).
		Scan(&raw, &path.DistanceMeters, &path.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RoutePath{}, false, nil
	}
	if err != nil {
		return domain.RoutePath{}, false, fmt.Errorf("get route cache: query route_cache key=%q: %w", key, err)
	}

	if err := json.Unmarshal(raw, &path.Coordinates); err != nil {
		return domain.RoutePath{}, false, fmt.Errorf("get route cache: decode path key=%q: %w", key, err)
	}

	return path, true, nil
}

func (s *SQLRouteCache) Set(ctx context.Context, key string, path domain.RoutePath, ttl time.Duration) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("insert route cache: empty key")
	}

	raw, err := json.Marshal(path.Coordinates)
	if err != nil {
		return fmt.Errorf("insert route cache: encode path key=%q: %w", key, err)
	}

	q := `
	INSERT INTO route_cache (cache_key, path, distance_meters, duration_seconds, expires_at)
	VALUES ($1, $2::jsonb, $3, $4, $5)
	ON CONFLICT (cache_key) DO UPDATE
	SET path = EXCLUDED.path,
		distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds,
		expires_at = EXCLUDED.expires_at;
	`
	_, err = s.DB.ExecContext(ctx, q, key, string(raw), path.DistanceMeters, path.DurationSeconds, expiresAt(s.now(), ttl))
	if err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}

package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
)

// SQLCoordinateCache is a Postgres-backed cache mapping location keys to
// coordinates. Rows past expires_at are treated as misses and overwritten
// on the next Set.
type SQLCoordinateCache struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSQLCoordinateCache(db *sql.DB) *SQLCoordinateCache {
	return &SQLCoordinateCache{DB: db, now: time.Now}
}

func (s *SQLCoordinateCache) Get(ctx context.Context, key string) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "coordinate.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("coordinate cache: db is nil")
	}

	q := `
	SELECT lat, lng
	FROM coordinate_cache
	WHERE cache_key = $1 AND expires_at > $2;
	`

	var c domain.Coordinates
	err = s.DB.QueryRowContext(ctx, q, strings.TrimSpace(key), s.now()).Scan(&c.Lat, &c.Lng)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get coordinate cache: query coordinate_cache key=%q: %w", key, err)
	}

	return c, true, nil
}

func (s *SQLCoordinateCache) Set(ctx context.Context, key string, c domain.Coordinates, ttl time.Duration) error {
	if s.DB == nil {
		return errors.New("coordinate cache: db is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("insert coordinate cache: empty key")
	}

	q := `
	INSERT INTO coordinate_cache (cache_key, lat, lng, expires_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (cache_key) DO UPDATE
	SET lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		expires_at = EXCLUDED.expires_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, key, c.Lat, c.Lng, expiresAt(s.now(), ttl)); err != nil {
		return fmt.Errorf("insert coordinate cache key=%q: %w", key, err)
	}

	return nil
}

// A zero ttl is stored as a far-future expiry.
func expiresAt(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return now.AddDate(100, 0, 0)
	}
	return now.Add(ttl)
}

package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

const routeCacheName = "routes"

// RouteFetcher fetches driving paths for map points whose endpoints are both
// resolved. Paths are an accuracy improvement only: a failed fetch leaves
// the point without a path and the map falls back to a straight segment.
type RouteFetcher struct {
	cache       ports.Cache[domain.RoutePath]
	provider    ports.DirectionsProvider
	profile     string
	ttl         time.Duration
	concurrency int
}

func NewRouteFetcher(
	cache ports.Cache[domain.RoutePath],
	provider ports.DirectionsProvider,
	profile string,
	ttl time.Duration,
) *RouteFetcher {
	if profile == "" {
		profile = "driving-car"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RouteFetcher{
		cache:       cache,
		provider:    provider,
		profile:     profile,
		ttl:         ttl,
		concurrency: 4,
	}
}

// FetchPending returns the paths for points, keyed by MapPoint.Key. Cached
// paths are reused; missing ones are requested once per point.
func (f *RouteFetcher) FetchPending(ctx context.Context, points []domain.MapPoint) map[string]domain.RoutePath {
	out := make(map[string]domain.RoutePath)
	if f == nil || f.provider == nil {
		return out
	}

	var (
		mu      sync.Mutex
		pending []domain.MapPoint
	)
	for _, p := range points {
		if !p.HasSegment() {
			continue
		}
		if path, ok := f.cached(ctx, routeKey(p)); ok {
			out[p.Key()] = path
			continue
		}
		pending = append(pending, p)
	}

	var g errgroup.Group
	g.SetLimit(f.concurrency)
	for _, p := range pending {
		g.Go(func() error {
			path, err := f.provider.Route(ctx, f.profile, *p.Origin.Coordinates, *p.Destination.Coordinates)
			if err != nil {
				obs.Logf(ctx, "op=routes.fetch point=%s err=%v", p.Key(), err)
				return nil
			}
			if !path.Usable() {
				obs.Logf(ctx, "op=routes.fetch point=%s msg=%q", p.Key(), "path has fewer than two points")
				return nil
			}

			if f.cache != nil {
				if err := f.cache.Set(ctx, routeKey(p), path, f.ttl); err != nil {
					obs.Logf(ctx, "op=routes.cache.set point=%s err=%v", p.Key(), err)
				}
			}

			mu.Lock()
			out[p.Key()] = path
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (f *RouteFetcher) cached(ctx context.Context, key string) (domain.RoutePath, bool) {
	if f.cache == nil {
		return domain.RoutePath{}, false
	}

	path, ok, err := f.cache.Get(ctx, key)
	switch {
	case err != nil:
		obs.CacheError(routeCacheName)
		obs.Logf(ctx, "op=routes.cache.get key=%s err=%v", key, err)
		return domain.RoutePath{}, false
	case !ok || !path.Usable():
		obs.CacheMiss(routeCacheName)
		return domain.RoutePath{}, false
	}

	obs.CacheHit(routeCacheName)
	return path, true
}

// routeKey is the point key plus its endpoint sectors, so a pouch that is
// re-routed does not reuse the old path.
func routeKey(p domain.MapPoint) string {
	return p.Key() + ":" +
		strconv.FormatInt(p.Origin.SectorID, 10) + "-" +
		strconv.FormatInt(p.Destination.SectorID, 10)
}

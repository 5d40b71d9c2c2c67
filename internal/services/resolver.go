package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

const coordinateCacheName = "coordinates"

type ResolverOptions struct {
	Country    string
	TTL        time.Duration
	BatchSize  int
	BatchDelay time.Duration
}

// Resolver finds coordinates for sectors. Tiers, first success wins:
// cache, stored latitude/longitude, postal code lookup followed by address
// geocoding, and finally a "city, state, country" geocode.
//
// Upstream failures are logged and count as a tier miss; Resolve never
// returns an error. Concurrent lookups of the same key share one call.
type Resolver struct {
	cache    ports.Cache[domain.Coordinates]
	postal   ports.PostalLookup
	geocoder ports.Geocoder
	opts     ResolverOptions

	flight singleflight.Group
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewResolver(
	cache ports.Cache[domain.Coordinates],
	postal ports.PostalLookup,
	geocoder ports.Geocoder,
	opts ResolverOptions,
) *Resolver {
	if opts.Country == "" {
		opts.Country = "Brasil"
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 5
	}
	if opts.TTL <= 0 {
		opts.TTL = 7 * 24 * time.Hour
	}

	return &Resolver{
		cache:    cache,
		postal:   postal,
		geocoder: geocoder,
		opts:     opts,
		sleep:    sleepContext,
	}
}

// Resolve returns the sector's coordinates. ok is false when every tier
// missed; callers must leave the sector off the map.
func (r *Resolver) Resolve(ctx context.Context, s domain.Sector) (domain.Coordinates, bool) {
	key := sectorKey(s)
	if c, ok := r.cached(ctx, key); ok {
		return c, true
	}

	c, ok := r.resolveTiers(ctx, s)
	if ok {
		r.store(ctx, key, c)
	}
	return c, ok
}

// ResolveQuery geocodes a free-text location, going through the cache.
func (r *Resolver) ResolveQuery(ctx context.Context, query string) (domain.Coordinates, bool) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" || r.geocoder == nil {
		return domain.Coordinates{}, false
	}

	key := "q:" + strings.ToLower(query)
	if c, ok := r.cached(ctx, key); ok {
		return c, true
	}

	v, _, _ := r.flight.Do(key, func() (any, error) {
		c, err := r.geocoder.Geocode(ctx, query)
		if err != nil {
			r.logMiss(ctx, "geocode", query, err)
			return tierResult{}, nil
		}
		r.store(ctx, key, c)
		return tierResult{coords: c, ok: true}, nil
	})

	res := v.(tierResult)
	return res.coords, res.ok
}

// ResolveMany resolves a set of sectors. Sectors sharing a location key are
// resolved once; lookups run in concurrent batches of BatchSize separated by
// BatchDelay to stay inside third-party rate limits. Unresolved sectors are
// absent from the result.
func (r *Resolver) ResolveMany(ctx context.Context, sectors []domain.Sector) map[int64]domain.Coordinates {
	out := make(map[int64]domain.Coordinates, len(sectors))
	var mu sync.Mutex

	groups := make(map[string][]domain.Sector)
	order := make([]string, 0, len(sectors))
	seen := make(map[int64]struct{}, len(sectors))

	for _, s := range sectors {
		if _, dup := seen[s.ID]; dup {
			continue
		}
		seen[s.ID] = struct{}{}

		// Stored coordinates and cache hits never leave the process.
		if c, ok := r.cached(ctx, sectorKey(s)); ok {
			out[s.ID] = c
			continue
		}
		if c, ok := storedCoordinates(ctx, s); ok {
			r.store(ctx, sectorKey(s), c)
			out[s.ID] = c
			continue
		}

		k := locationKey(s, r.opts.Country)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], s)
	}

	for start := 0; start < len(order); start += r.opts.BatchSize {
		if start > 0 {
			if err := r.sleep(ctx, r.opts.BatchDelay); err != nil {
				obs.Logf(ctx, "op=resolver.ResolveMany msg=%q err=%v", "batch aborted", err)
				break
			}
		}

		var g errgroup.Group
		for _, key := range order[start:min(start+r.opts.BatchSize, len(order))] {
			members := groups[key]
			g.Go(func() error {
				c, ok := r.Resolve(ctx, members[0])
				if !ok {
					return nil
				}

				mu.Lock()
				defer mu.Unlock()
				for i, m := range members {
					if i > 0 {
						r.store(ctx, sectorKey(m), c)
					}
					out[m.ID] = c
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	return out
}

type tierResult struct {
	coords  domain.Coordinates
	address domain.PostalAddress
	ok      bool
}

func (r *Resolver) resolveTiers(ctx context.Context, s domain.Sector) (domain.Coordinates, bool) {
	if c, ok := storedCoordinates(ctx, s); ok {
		return c, true
	}

	city, state := s.City, s.State
	if cep := s.PostalDigits(); cep != "" {
		res := r.byPostalCode(ctx, cep)
		if res.ok {
			return res.coords, true
		}
		if strings.TrimSpace(city) == "" {
			city = res.address.City
		}
		if strings.TrimSpace(state) == "" {
			state = res.address.State
		}
	}

	if q := cityQuery(city, state, r.opts.Country); q != "" {
		return r.ResolveQuery(ctx, q)
	}

	return domain.Coordinates{}, false
}

func (r *Resolver) byPostalCode(ctx context.Context, cep string) tierResult {
	if r.postal == nil && r.geocoder == nil {
		return tierResult{}
	}

	key := "cep:" + cep
	if c, ok := r.cached(ctx, key); ok {
		return tierResult{coords: c, ok: true}
	}

	v, _, _ := r.flight.Do(key, func() (any, error) {
		res := r.lookupPostalCode(ctx, cep)
		if res.ok {
			r.store(ctx, key, res.coords)
		}
		return res, nil
	})

	return v.(tierResult)
}

// lookupPostalCode geocodes the address behind cep. When the postal lookup
// or the address geocode misses, the bare code is tried as a query since
// geocoders index many postal codes directly.
func (r *Resolver) lookupPostalCode(ctx context.Context, cep string) tierResult {
	var (
		res        tierResult
		hasAddress bool
	)

	if r.postal != nil {
		addr, err := r.postal.LookupAddress(ctx, cep)
		if err != nil {
			r.logMiss(ctx, "postal", cep, err)
		} else {
			res.address, hasAddress = addr, true
		}
	}

	if r.geocoder == nil {
		return res
	}

	if hasAddress {
		q := res.address.Query(r.opts.Country)
		c, gerr := r.geocoder.Geocode(ctx, q)
		if gerr == nil {
			res.coords, res.ok = c, true
			return res
		}
		r.logMiss(ctx, "geocode", q, gerr)
	}

	c, err := r.geocoder.Geocode(ctx, cep)
	if err != nil {
		r.logMiss(ctx, "geocode", cep, err)
		return res
	}
	res.coords, res.ok = c, true
	return res
}

func (r *Resolver) cached(ctx context.Context, key string) (domain.Coordinates, bool) {
	if r.cache == nil {
		return domain.Coordinates{}, false
	}

	c, ok, err := r.cache.Get(ctx, key)
	switch {
	case err != nil:
		obs.CacheError(coordinateCacheName)
		obs.Logf(ctx, "op=resolver.cache.get key=%s err=%v", key, err)
		return domain.Coordinates{}, false
	case !ok:
		obs.CacheMiss(coordinateCacheName)
		return domain.Coordinates{}, false
	}

	obs.CacheHit(coordinateCacheName)
	return c, true
}

func (r *Resolver) store(ctx context.Context, key string, c domain.Coordinates) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, c, r.opts.TTL); err != nil {
		obs.Logf(ctx, "op=resolver.cache.set key=%s err=%v", key, err)
	}
}

func (r *Resolver) logMiss(ctx context.Context, tier, input string, err error) {
	if errors.Is(err, ports.ErrNotFound) {
		obs.Logf(ctx, "op=resolver.%s input=%q msg=%q", tier, input, "no result")
		return
	}
	obs.Logf(ctx, "op=resolver.%s input=%q err=%v", tier, input, err)
}

func storedCoordinates(ctx context.Context, s domain.Sector) (domain.Coordinates, bool) {
	if !s.HasStoredCoordinates() {
		return domain.Coordinates{}, false
	}
	c, err := domain.ParseCoordinates(s.Latitude, s.Longitude)
	if err != nil {
		obs.Logf(ctx, "op=resolver.stored sector=%d err=%v", s.ID, err)
		return domain.Coordinates{}, false
	}
	return c, true
}

func sectorKey(s domain.Sector) string {
	return "sector:" + strconv.FormatInt(s.ID, 10)
}

// locationKey groups sectors that would issue identical upstream lookups.
func locationKey(s domain.Sector, country string) string {
	if cep := s.PostalDigits(); cep != "" {
		return "cep:" + cep
	}
	if q := cityQuery(s.City, s.State, country); q != "" {
		return "q:" + strings.ToLower(q)
	}
	return sectorKey(s)
}

func cityQuery(city, state, country string) string {
	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	if city == "" || state == "" {
		return ""
	}
	return strings.Join(strings.Fields(city+", "+state+", "+country), " ")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Package app builds the object graph shared by the server and the batch
// commands from a Config.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"pouch-tracking-service/internal/adapters/cache"
	"pouch-tracking-service/internal/adapters/directions"
	"pouch-tracking-service/internal/adapters/nominatim"
	"pouch-tracking-service/internal/adapters/ors"
	"pouch-tracking-service/internal/adapters/repositories"
	"pouch-tracking-service/internal/adapters/viacep"
	"pouch-tracking-service/internal/api"
	"pouch-tracking-service/internal/api/handlers"
	"pouch-tracking-service/internal/config"
	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/db"
	"pouch-tracking-service/internal/platform/httpx"
	platformredis "pouch-tracking-service/internal/platform/redis"
	"pouch-tracking-service/internal/ports"
	"pouch-tracking-service/internal/services"
)

// App holds the open connections and the wired services.
type App struct {
	DB    *sql.DB
	Redis *platformredis.Client

	Pouches      *services.PouchService
	Availability *services.AvailabilityService
	Maps         *services.MapService
	Sectors      *services.SectorService
}

// New opens Postgres (and Redis when selected) and wires adapters behind
// ports. Callers must Close the returned App.
func New(ctx context.Context, cfg config.Config) (_ *App, err error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("app: DATABASE_URL is required")
	}

	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	if a.DB, err = db.Open(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	coords, routes, err := a.caches(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	geocoder, err := newGeocoder(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	provider, err := newDirections(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	postal := viacep.New(httpx.New(httpx.WithHeader("User-Agent", cfg.UserAgent)), cfg.ViaCEPURL)

	resolver := services.NewResolver(coords, postal, geocoder, services.ResolverOptions{
		Country:    cfg.GeocodeCountry,
		TTL:        cfg.CoordinateCacheTTL,
		BatchSize:  cfg.GeocodeBatchSize,
		BatchDelay: cfg.GeocodeBatchDelay,
	})
	fetcher := services.NewRouteFetcher(routes, provider, cfg.RouteProfile, cfg.RouteCacheTTL)

	pouchRepo := repositories.NewPostgresPouchRepository(a.DB)
	hub := services.NewHubRouter(repositories.NewPostgresConfigStore(a.DB), cfg.HubConfigKey)

	a.Pouches = services.NewPouchService(pouchRepo, hub)
	a.Availability = services.NewAvailabilityService(pouchRepo)
	a.Maps = services.NewMapService(repositories.NewPostgresMapRepository(a.DB), resolver, fetcher)
	a.Sectors = services.NewSectorService(repositories.NewPostgresSectorRepository(a.DB), resolver)

	log.Printf("app ready cache=%s geocoder=%s directions=%T", cfg.CacheBackend, cfg.Geocoder, provider)
	return a, nil
}

// Router returns the HTTP handler for the wired services.
func (a *App) Router() http.Handler {
	checks := map[string]handlers.Pinger{"postgres": a.DB}
	if a.Redis != nil {
		checks["redis"] = a.Redis
	}

	return api.NewRouter(api.Deps{
		Pouches:      a.Pouches,
		Availability: a.Availability,
		Maps:         a.Maps,
		Sectors:      a.Sectors,
		Health:       checks,
	})
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func (a *App) caches(ctx context.Context, cfg config.Config) (ports.Cache[domain.Coordinates], ports.Cache[domain.RoutePath], error) {
	switch cfg.CacheBackend {
	case config.CacheRedis:
		rc, err := platformredis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		a.Redis = rc
		return cache.NewRedis[domain.Coordinates](rc, "pouch:coords:"),
			cache.NewRedis[domain.RoutePath](rc, "pouch:routes:"), nil
	case config.CachePostgres:
		return cache.NewSQLCoordinateCache(a.DB), cache.NewSQLRouteCache(a.DB), nil
	default:
		return cache.NewMemory[domain.Coordinates](), cache.NewMemory[domain.RoutePath](), nil
	}
}

// Public geocoders allow about one request per second; the limiter is
// shared by every lookup in the process.
func newGeocoder(cfg config.Config) (ports.Geocoder, error) {
	limit := httpx.WithRateLimit(cfg.GeocodeRate, 1)

	if cfg.Geocoder == "ors" {
		return ors.New(cfg.ORSAPIKey, cfg.ORSURL, limit)
	}
	client := httpx.New(httpx.WithHeader("User-Agent", cfg.UserAgent), limit)
	return nominatim.New(client, cfg.NominatimURL), nil
}

// Without an ORS key paths degrade to straight segments.
func newDirections(cfg config.Config) (ports.DirectionsProvider, error) {
	if cfg.ORSAPIKey == "" {
		return directions.NewStraightLineProvider(0), nil
	}
	return ors.New(cfg.ORSAPIKey, cfg.ORSURL, httpx.WithRetry(3, 500*time.Millisecond))
}

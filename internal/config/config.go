package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends selectable with CACHE_BACKEND.
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CachePostgres = "postgres"
)

// Config is the process configuration. The hub sector id is deliberately
// absent: it lives in the app_config table and is read per request.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	SeedPath    string

	CacheBackend       string
	CoordinateCacheTTL time.Duration
	RouteCacheTTL      time.Duration

	Geocoder          string
	NominatimURL      string
	ViaCEPURL         string
	ORSAPIKey         string
	ORSURL            string
	RouteProfile      string
	GeocodeCountry    string
	GeocodeBatchSize  int
	GeocodeBatchDelay time.Duration
	GeocodeRate       float64
	UserAgent         string

	HubConfigKey string
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           Get("PORT", "8080"),
		DatabaseURL:    Get("DATABASE_URL", ""),
		RedisURL:       Get("REDIS_URL", ""),
		SeedPath:       Get("SEED_PATH", "data/seeds/seed.json"),
		CacheBackend:   strings.ToLower(Get("CACHE_BACKEND", CacheMemory)),
		Geocoder:       strings.ToLower(Get("GEOCODER", "nominatim")),
		NominatimURL:   Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		ViaCEPURL:      Get("VIACEP_URL", "https://viacep.com.br"),
		ORSAPIKey:      Get("ORS_API_KEY", ""),
		ORSURL:         Get("ORS_URL", "https://api.openrouteservice.org"),
		RouteProfile:   Get("ROUTE_PROFILE", "driving-car"),
		GeocodeCountry: Get("GEOCODE_COUNTRY", "Brasil"),
		UserAgent:      Get("USER_AGENT", "pouch-tracking-service/1.0"),
		HubConfigKey:   Get("HUB_CONFIG_KEY", "HUB_SETOR_ID"),
	}

	var err error
	if cfg.CoordinateCacheTTL, err = duration("COORDINATE_CACHE_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.RouteCacheTTL, err = duration("ROUTE_CACHE_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.GeocodeBatchDelay, err = duration("GEOCODE_BATCH_DELAY", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.GeocodeBatchSize, err = positiveInt("GEOCODE_BATCH_SIZE", 5); err != nil {
		return Config{}, err
	}
	if cfg.GeocodeRate, err = positiveFloat("GEOCODE_RATE", 1); err != nil {
		return Config{}, err
	}

	switch cfg.CacheBackend {
	case CacheMemory, CacheRedis, CachePostgres:
	default:
		return Config{}, fmt.Errorf("load config: unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
	if cfg.CacheBackend == CacheRedis && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("load config: REDIS_URL is required for CACHE_BACKEND=redis")
	}

	switch cfg.Geocoder {
	case "nominatim":
	case "ors":
		if cfg.ORSAPIKey == "" {
			return Config{}, fmt.Errorf("load config: ORS_API_KEY is required for GEOCODER=ors")
		}
	default:
		return Config{}, fmt.Errorf("load config: unknown GEOCODER %q", cfg.Geocoder)
	}

	return cfg, nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("load config: %s=%q is not a valid duration", key, raw)
	}
	return d, nil
}

func positiveInt(key string, fallback int) (int, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("load config: %s=%q must be a positive integer", key, raw)
	}
	return n, nil
}

func positiveFloat(key string, fallback float64) (float64, error) {
	raw := Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("load config: %s=%q must be a positive number", key, raw)
	}
	return f, nil
}

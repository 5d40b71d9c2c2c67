package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pouch-tracking-service/internal/api/handlers"
)

// Deps are the services the HTTP layer talks to.
type Deps struct {
	Pouches      handlers.PouchWriter
	Availability handlers.AvailabilityReader
	Maps         handlers.MapReader
	Sectors      handlers.SectorLocator
	Health       map[string]handlers.Pinger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	health := &handlers.HealthHandler{Checks: d.Health}
	pouches := &handlers.PouchHandler{Pouches: d.Pouches, Availability: d.Availability}
	maps := &handlers.MapHandler{Maps: d.Maps}
	sectors := &handlers.SectorHandler{Sectors: d.Sectors}

	r.Get("/health", health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Route("/pouches", func(r chi.Router) {
			r.Post("/", pouches.Create)
			r.Put("/{id}", pouches.Update)
			r.Get("/available", pouches.Available)
			r.Get("/status", pouches.Status)
		})

		r.Get("/map/pouches", maps.Pouches)
		r.Get("/map/shipments", maps.Shipments)

		r.Get("/sectors/{id}/coordinates", sectors.Coordinates)
	})

	// Back-fill walks sectors through rate-limited geocoders; large runs
	// belong in cmd/backfill. Stays under the server WriteTimeout.
	r.With(middleware.Timeout(110*time.Second)).Post("/sectors/geocode", sectors.Geocode)

	return r
}

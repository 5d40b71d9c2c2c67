package obs

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pouch_cache_requests_total",
		Help: "Cache lookups by cache name and result (hit, miss, error).",
	}, []string{"cache", "result"})

	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pouch_upstream_requests_total",
		Help: "Calls to external providers by outcome (ok, not_found, error).",
	}, []string{"provider", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pouch_upstream_duration_seconds",
		Help:    "Latency of external provider calls.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"provider"})

	hubRedirects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pouch_hub_redirects_total",
		Help: "Pouch writes whose destination was redirected to the hub sector.",
	})
)

func CacheHit(cache string)   { cacheRequests.WithLabelValues(cache, "hit").Inc() }
func CacheMiss(cache string)  { cacheRequests.WithLabelValues(cache, "miss").Inc() }
func CacheError(cache string) { cacheRequests.WithLabelValues(cache, "error").Inc() }

// Upstream records one external call. outcome is "ok", "not_found" or "error".
func Upstream(provider, outcome string, seconds float64) {
	upstreamRequests.WithLabelValues(provider, outcome).Inc()
	upstreamDuration.WithLabelValues(provider).Observe(seconds)
}

// TrackUpstream measures one external call. Errors matching notFound are
// counted as "not_found" rather than "error":
//
//	defer obs.TrackUpstream("viacep", ports.ErrNotFound)(&err)
func TrackUpstream(provider string, notFound error) func(errp *error) {
	start := time.Now()
	return func(errp *error) {
		outcome := "ok"
		if errp != nil && *errp != nil {
			outcome = "error"
			if notFound != nil && errors.Is(*errp, notFound) {
				outcome = "not_found"
			}
		}
		Upstream(provider, outcome, time.Since(start).Seconds())
	}
}

func HubRedirect() { hubRedirects.Inc() }

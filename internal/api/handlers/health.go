package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB and the Redis platform client.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness plus the state of each named dependency.
type HealthHandler struct {
	Checks map[string]Pinger
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	res := map[string]string{"status": "ok"}
	for name, p := range h.Checks {
		if err := p.PingContext(ctx); err != nil {
			res[name] = "down"
			res["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		res[name] = "ok"
	}

	writeJSON(w, r, status, res)
}

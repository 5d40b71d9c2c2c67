package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pouch-tracking-service/internal/api/dto"
	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/services"
)

type SectorLocator interface {
	Coordinates(ctx context.Context, id int64) (domain.Coordinates, bool, error)
	Backfill(ctx context.Context) (services.BackfillReport, error)
}

type SectorHandler struct {
	Sectors SectorLocator
}

// Coordinates resolves one sector. An unresolvable sector is not an error:
// it answers 200 with resolved=false and null coordinates.
func (h *SectorHandler) Coordinates(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePositiveID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	c, resolved, err := h.Sectors.Coordinates(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "sectors.coordinates", err)
		return
	}

	res := dto.SectorCoordinatesResponse{SectorID: id, Resolved: resolved}
	if resolved {
		res.Coordinates = &c
		res.LngLat = c.CoordsToList()
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Geocode back-fills coordinates for every sector missing them.
func (h *SectorHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	report, err := h.Sectors.Backfill(r.Context())
	if err != nil {
		writeServiceError(w, r, "sectors.geocode", err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

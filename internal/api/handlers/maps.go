package handlers

import (
	"context"
	"net/http"

	"pouch-tracking-service/internal/services"
)

type MapReader interface {
	PouchMap(ctx context.Context, sectorID *int64) (services.MapData, error)
	ShipmentMap(ctx context.Context, sectorID *int64) (services.MapData, error)
}

// MapHandler serves the map views. Callers sending X-Sector-ID only see
// items whose origin or destination is their sector.
type MapHandler struct {
	Maps MapReader
}

func (h *MapHandler) Pouches(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "maps.pouches", h.Maps.PouchMap)
}

func (h *MapHandler) Shipments(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "maps.shipments", h.Maps.ShipmentMap)
}

func (h *MapHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	load func(context.Context, *int64) (services.MapData, error),
) {
	scope, ok := sectorScope(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "sector_id must be a positive integer")
		return
	}

	data, err := load(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}

	writeJSON(w, r, http.StatusOK, data)
}

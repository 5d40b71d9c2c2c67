package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pouch-tracking-service/internal/api/dto"
	"pouch-tracking-service/internal/domain"
)

type PouchWriter interface {
	Create(ctx context.Context, draft domain.PouchDraft) (domain.Pouch, error)
	Update(ctx context.Context, id int64, draft domain.PouchDraft) (domain.Pouch, error)
}

type AvailabilityReader interface {
	ListAvailablePouches(ctx context.Context, sectorID int64, dir domain.Direction) ([]domain.Pouch, error)
	GetPouchStatuses(ctx context.Context, sectorID int64, dir domain.Direction) ([]domain.PouchStatus, error)
}

// PouchHandler exposes pouch writes and the per-sector availability views.
type PouchHandler struct {
	Pouches      PouchWriter
	Availability AvailabilityReader
}

func (h *PouchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.PouchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Pouches.Create(r.Context(), req.Draft())
	if err != nil {
		writeServiceError(w, r, "pouches.create", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewPouchResponse(p))
}

func (h *PouchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePositiveID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	var req dto.PouchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.Pouches.Update(r.Context(), id, req.Draft())
	if err != nil {
		writeServiceError(w, r, "pouches.update", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPouchResponse(p))
}

// Available lists the pouches of a sector that can be dispatched.
func (h *PouchHandler) Available(w http.ResponseWriter, r *http.Request) {
	sectorID, dir, ok := sectorQuery(w, r)
	if !ok {
		return
	}

	pouches, err := h.Availability.ListAvailablePouches(r.Context(), sectorID, dir)
	if err != nil {
		writeServiceError(w, r, "pouches.available", err)
		return
	}

	res := dto.ListPouchesResponse{Pouches: make([]dto.PouchResponse, 0, len(pouches))}
	for _, p := range pouches {
		res.Pouches = append(res.Pouches, dto.NewPouchResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Status lists every pouch of a sector with its computed availability.
func (h *PouchHandler) Status(w http.ResponseWriter, r *http.Request) {
	sectorID, dir, ok := sectorQuery(w, r)
	if !ok {
		return
	}

	statuses, err := h.Availability.GetPouchStatuses(r.Context(), sectorID, dir)
	if err != nil {
		writeServiceError(w, r, "pouches.status", err)
		return
	}

	res := dto.ListPouchStatusesResponse{Pouches: make([]dto.PouchStatusResponse, 0, len(statuses))}
	for _, st := range statuses {
		res.Pouches = append(res.Pouches, dto.PouchStatusResponse{
			PouchResponse: dto.NewPouchResponse(st.Pouch),
			Availability:  st.Availability,
			StatusLabel:   st.Label,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func sectorQuery(w http.ResponseWriter, r *http.Request) (int64, domain.Direction, bool) {
	scope, ok := sectorScope(r)
	if !ok || scope == nil {
		writeError(w, r, http.StatusBadRequest, "sector_id must be a positive integer")
		return 0, "", false
	}
	return *scope, domain.ParseDirection(r.URL.Query().Get("direction")), true
}

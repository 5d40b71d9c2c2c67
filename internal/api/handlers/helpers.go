package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
	"pouch-tracking-service/internal/services"
)

// SectorHeader carries the caller's own sector for non-admin clients. When
// present it overrides any sector_id query parameter.
const SectorHeader = "X-Sector-ID"

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logf(r.Context(), "msg=%q method=%s path=%s err=%v", "encode failed", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service and repository errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, ports.ErrPouchNotFound):
		writeError(w, r, http.StatusNotFound, "pouch not found")
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	default:
		obs.Logf(r.Context(), "op=%s err=%v", op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads exactly one JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func parsePositiveID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// sectorScope returns the sector a request is limited to: the caller's
// header sector when set, else the sector_id query parameter. A nil result
// means unscoped. ok is false when a value is present but malformed.
func sectorScope(r *http.Request) (_ *int64, ok bool) {
	raw := strings.TrimSpace(r.Header.Get(SectorHeader))
	if raw == "" {
		raw = strings.TrimSpace(r.URL.Query().Get("sector_id"))
	}
	if raw == "" {
		return nil, true
	}

	id, valid := parsePositiveID(raw)
	if !valid {
		return nil, false
	}
	return &id, true
}

package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"pouch-tracking-service/internal/domain"
)

// ID is a lenient sector/shipment id. Clients send numbers, numeric strings
// or garbage; anything that is not a positive integer decodes as unset
// instead of failing the request.
type ID struct {
	Value int64
	Valid bool
}

func (id *ID) UnmarshalJSON(b []byte) error {
	*id = ID{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil
	}
	*id = ID{Value: v, Valid: true}
	return nil
}

func (id *ID) ptr() *int64 {
	if id == nil || !id.Valid {
		return nil
	}
	return domain.Int64Ptr(id.Value)
}

// first returns the first valid id in alias priority order.
func first(ids ...*ID) *int64 {
	for _, id := range ids {
		if p := id.ptr(); p != nil {
			return p
		}
	}
	return nil
}

// PouchRequest is the create/update payload. Sector ids are accepted under
// the English snake_case keys and the legacy Portuguese spellings.
type PouchRequest struct {
	Number       string `json:"number"`
	NumeroMalote string `json:"numeroMalote"`
	Status       string `json:"status"`

	OriginSectorID      *ID `json:"origin_sector_id"`
	SetorOrigemID       *ID `json:"setorOrigemId"`
	SetorOrigemIDUpper  *ID `json:"SETOR_ORIGEM_ID"`
	DestinationSectorID *ID `json:"destination_sector_id"`
	SetorDestinoID      *ID `json:"setorDestinoId"`
	SetorID             *ID `json:"setorId"`
	SetorDestinoIDUpper *ID `json:"SETOR_DESTINO_ID"`

	ShipmentID  *ID `json:"shipment_id"`
	EncomendaID *ID `json:"encomendaId"`
}

// Draft resolves the aliases into a domain draft.
func (r PouchRequest) Draft() domain.PouchDraft {
	number := r.Number
	if strings.TrimSpace(number) == "" {
		number = r.NumeroMalote
	}

	return domain.PouchDraft{
		Number:              number,
		Status:              r.Status,
		OriginSectorID:      first(r.OriginSectorID, r.SetorOrigemID, r.SetorOrigemIDUpper),
		DestinationSectorID: first(r.DestinationSectorID, r.SetorDestinoID, r.SetorDestinoIDUpper, r.SetorID),
		ShipmentID:          first(r.ShipmentID, r.EncomendaID),
	}
}

// PouchResponse mirrors the stored sector ids into every alias so clients
// on either naming convention read the corrected destination.
type PouchResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`

	OriginSectorID      *int64 `json:"origin_sector_id"`
	SetorOrigemID       *int64 `json:"setorOrigemId"`
	SetorOrigemIDUpper  *int64 `json:"SETOR_ORIGEM_ID"`
	OriginSectorName    string `json:"origin_sector_name,omitempty"`
	DestinationSectorID *int64 `json:"destination_sector_id"`
	SetorDestinoID      *int64 `json:"setorDestinoId"`
	SetorID             *int64 `json:"setorId"`
	SetorDestinoIDUpper *int64 `json:"SETOR_DESTINO_ID"`
	DestinationName     string `json:"destination_sector_name,omitempty"`

	ShipmentID *int64 `json:"shipment_id,omitempty"`
}

func NewPouchResponse(p domain.Pouch) PouchResponse {
	return PouchResponse{
		ID:                  p.ID,
		Number:              p.Number,
		Status:              p.Status,
		OriginSectorID:      p.OriginSectorID,
		SetorOrigemID:       p.OriginSectorID,
		SetorOrigemIDUpper:  p.OriginSectorID,
		OriginSectorName:    p.OriginSectorName,
		DestinationSectorID: p.DestinationSectorID,
		SetorDestinoID:      p.DestinationSectorID,
		SetorID:             p.DestinationSectorID,
		SetorDestinoIDUpper: p.DestinationSectorID,
		DestinationName:     p.DestinationSectorName,
		ShipmentID:          p.ShipmentID,
	}
}

type ListPouchesResponse struct {
	Pouches []PouchResponse `json:"pouches"`
}

// PouchStatusResponse is a pouch annotated with its computed availability.
type PouchStatusResponse struct {
	PouchResponse
	Availability domain.Availability `json:"availability"`
	StatusLabel  string              `json:"status_label"`
}

type ListPouchStatusesResponse struct {
	Pouches []PouchStatusResponse `json:"pouches"`
}

package domain

import "strings"

// Pouch (malote) is a reusable transport container moving between sectors.
// Status is the stored, advisory value; availability is derived from the
// linked shipments at read time.
type Pouch struct {
	ID                    int64
	Number                string
	OriginSectorID        *int64
	OriginSectorName      string
	DestinationSectorID   *int64
	DestinationSectorName string
	Status                string
	ShipmentID            *int64
}

// DefaultPouchStatus is applied when a pouch row has no stored status.
const DefaultPouchStatus = "Disponivel"

// Direction selects which sector column a per-sector pouch query filters on.
type Direction string

const (
	DirectionOrigin      Direction = "origin"
	DirectionDestination Direction = "destination"
)

// ParseDirection accepts English and Portuguese spellings; anything else is
// treated as destination, matching the default sector ownership rule.
func ParseDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "origin", "origem":
		return DirectionOrigin
	default:
		return DirectionDestination
	}
}

// PouchDraft is an in-flight create/update payload after alias resolution.
// Nil sector ids mean "absent or not numeric".
type PouchDraft struct {
	Number              string
	OriginSectorID      *int64
	DestinationSectorID *int64
	Status              string
	ShipmentID          *int64
}

// Merge lays the fields present in d over the stored pouch. Blank strings
// and nil ids keep the stored value.
func (p Pouch) Merge(d PouchDraft) PouchDraft {
	out := PouchDraft{
		Number:              p.Number,
		OriginSectorID:      p.OriginSectorID,
		DestinationSectorID: p.DestinationSectorID,
		Status:              p.Status,
		ShipmentID:          p.ShipmentID,
	}
	if strings.TrimSpace(d.Number) != "" {
		out.Number = d.Number
	}
	if d.OriginSectorID != nil {
		out.OriginSectorID = d.OriginSectorID
	}
	if d.DestinationSectorID != nil {
		out.DestinationSectorID = d.DestinationSectorID
	}
	if strings.TrimSpace(d.Status) != "" {
		out.Status = d.Status
	}
	if d.ShipmentID != nil {
		out.ShipmentID = d.ShipmentID
	}
	return out
}

func Int64Ptr(v int64) *int64 { return &v }

// SameID compares two optional ids.
func SameID(a *int64, b int64) bool {
	return a != nil && *a == b
}

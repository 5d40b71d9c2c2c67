package domain

import "strconv"

// PointKind tells which entity a map point was built from.
type PointKind string

const (
	KindPouch    PointKind = "pouch"
	KindShipment PointKind = "shipment"
)

// SectorLocation is one endpoint of a map point. Coordinates is nil when the
// sector could not be resolved.
type SectorLocation struct {
	SectorID    int64        `json:"sector_id"`
	Name        string       `json:"name"`
	PostalCode  string       `json:"postal_code,omitempty"`
	Coordinates *Coordinates `json:"coordinates"`
}

func (l *SectorLocation) resolved() bool { return l != nil && l.Coordinates != nil }

// MapPoint is a transient aggregation recomputed on every map request.
type MapPoint struct {
	Kind        PointKind       `json:"kind"`
	ID          int64           `json:"id"`
	Label       string          `json:"label"`
	Status      string          `json:"status"`
	Origin      *SectorLocation `json:"origin"`
	Destination *SectorLocation `json:"destination"`
	Current     *SectorLocation `json:"current"`
	InTransit   bool            `json:"in_transit"`
	Delivered   bool            `json:"delivered"`
}

// Key identifies the point across kinds, e.g. for the route cache.
func (p MapPoint) Key() string {
	return string(p.Kind) + ":" + strconv.FormatInt(p.ID, 10)
}

// HasSegment reports whether both endpoints are resolved.
func (p MapPoint) HasSegment() bool {
	return p.Origin.resolved() && p.Destination.resolved()
}

// MarkerLocation picks where the point is drawn: the current location when
// known, the origin while in transit, the destination otherwise, and finally
// whichever endpoint resolved. Nil means the point cannot be drawn.
func (p MapPoint) MarkerLocation() *SectorLocation {
	switch {
	case p.Current.resolved():
		return p.Current
	case p.InTransit && p.Origin.resolved():
		return p.Origin
	case !p.InTransit && p.Destination.resolved():
		return p.Destination
	case p.Origin.resolved():
		return p.Origin
	case p.Destination.resolved():
		return p.Destination
	}
	return nil
}

package ports

import (
	"context"

	"pouch-tracking-service/internal/domain"
)

// MapRow is a pouch or shipment joined with the full address of its
// origin and destination sectors. LinkedStatuses is only set for pouches
// and holds the raw statuses of the shipments linked to them.
type MapRow struct {
	Kind           domain.PointKind
	ID             int64
	Label          string
	Status         string
	Origin         *domain.Sector
	Destination    *domain.Sector
	LinkedStatuses []string
}

// Port: read model backing the map views.
type MapRepository interface {
	// Pouches with their sectors. A nil sectorID returns every pouch,
	// otherwise pouches touching that sector on either end.
	ListPouchMapRows(ctx context.Context, sectorID *int64) ([]MapRow, error)
	// Shipments with their sectors, filtered like ListPouchMapRows.
	ListShipmentMapRows(ctx context.Context, sectorID *int64) ([]MapRow, error)
}

package ports

import (
	"context"

	"pouch-tracking-service/internal/domain"
)

// Port: persistence boundary for sectors.
type SectorRepository interface {
	// Return one sector. Returns ErrNotFound for unknown ids.
	GetSector(ctx context.Context, id int64) (domain.Sector, error)
	// Return every active sector.
	ListSectors(ctx context.Context) ([]domain.Sector, error)
	// Persist resolved coordinates onto the sector row.
	UpdateSectorCoordinates(ctx context.Context, id int64, c domain.Coordinates) error
}

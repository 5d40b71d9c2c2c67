package ports

import (
	"context"

	"pouch-tracking-service/internal/domain"
)

// PouchWithShipments is a pouch row together with every shipment linked to it.
type PouchWithShipments struct {
	Pouch     domain.Pouch
	Shipments []domain.Shipment
}

// Port: persistence boundary for pouches.
type PouchRepository interface {
	// List pouches with their linked shipments. A nil sectorID lists every
	// pouch; otherwise the filter applies to the column chosen by dir.
	ListPouchesWithShipments(ctx context.Context, sectorID *int64, dir domain.Direction) ([]PouchWithShipments, error)
	// Load one pouch. Returns ErrPouchNotFound for unknown ids.
	GetPouch(ctx context.Context, id int64) (domain.Pouch, error)
	// Insert a pouch and return the stored row.
	CreatePouch(ctx context.Context, draft domain.PouchDraft) (domain.Pouch, error)
	// Overwrite a pouch. Returns ErrPouchNotFound for unknown ids.
	UpdatePouch(ctx context.Context, id int64, draft domain.PouchDraft) (domain.Pouch, error)
}

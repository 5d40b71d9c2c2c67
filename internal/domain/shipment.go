package domain

import "time"

// Shipment (encomenda) is an individually tracked item, optionally linked to
// a pouch. Status holds the raw stored spelling.
type Shipment struct {
	ID                  int64
	TrackingNumber      string
	SenderID            *int64
	RecipientID         *int64
	OriginSectorID      *int64
	DestinationSectorID *int64
	Status              string
	PouchID             *int64
	Urgent              bool
	Description         string
	Notes               string
	CreatedAt           time.Time
	DeliveredAt         *time.Time
}

// CanonicalStatus normalizes the stored spelling.
func (s Shipment) CanonicalStatus() ShipmentStatus { return ParseShipmentStatus(s.Status) }

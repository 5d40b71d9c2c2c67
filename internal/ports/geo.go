package ports

import (
	"context"

	"pouch-tracking-service/internal/domain"
)

// Contract for turning a Brazilian postal code into a structured address.
type PostalLookup interface {
	// Return ErrNotFound when the code is unknown.
	LookupAddress(ctx context.Context, cep string) (domain.PostalAddress, error)
}

// Contract for free-text geocoding.
type Geocoder interface {
	// Return ErrNotFound when the query yields no result.
	Geocode(ctx context.Context, query string) (domain.Coordinates, error)
}

// Contract for retrieving a driving path between two points.
type DirectionsProvider interface {
	Route(ctx context.Context, profile string, from, to domain.Coordinates) (domain.RoutePath, error)
}

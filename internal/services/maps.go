package services

import (
	"context"
	"fmt"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// MapData is the payload of a map view: the resolved points and the layer
// built from them.
type MapData struct {
	Points []domain.MapPoint `json:"points"`
	Layer  MapLayer          `json:"layer"`
}

// MapService builds the pouch and shipment map views.
type MapService struct {
	repo     ports.MapRepository
	resolver *Resolver
	routes   *RouteFetcher
}

func NewMapService(repo ports.MapRepository, resolver *Resolver, routes *RouteFetcher) *MapService {
	return &MapService{repo: repo, resolver: resolver, routes: routes}
}

// PouchMap returns map data for pouches, scoped to sectorID when non-nil.
// Driving paths are fetched for pouches with both endpoints resolved.
func (s *MapService) PouchMap(ctx context.Context, sectorID *int64) (_ MapData, err error) {
	defer obs.Time(ctx, "maps.PouchMap")(&err)

	rows, err := s.repo.ListPouchMapRows(ctx, sectorID)
	if err != nil {
		return MapData{}, fmt.Errorf("pouch map: %w", err)
	}

	points := s.buildPoints(ctx, rows)
	routes := s.routes.FetchPending(ctx, points)

	return MapData{Points: points, Layer: Aggregate(points, routes)}, nil
}

// ShipmentMap returns map data for shipments, scoped to sectorID when non-nil.
// Shipments are drawn with straight segments.
func (s *MapService) ShipmentMap(ctx context.Context, sectorID *int64) (_ MapData, err error) {
	defer obs.Time(ctx, "maps.ShipmentMap")(&err)

	rows, err := s.repo.ListShipmentMapRows(ctx, sectorID)
	if err != nil {
		return MapData{}, fmt.Errorf("shipment map: %w", err)
	}

	points := s.buildPoints(ctx, rows)
	return MapData{Points: points, Layer: Aggregate(points, nil)}, nil
}

func (s *MapService) buildPoints(ctx context.Context, rows []ports.MapRow) []domain.MapPoint {
	sectors := make([]domain.Sector, 0, len(rows)*2)
	for _, r := range rows {
		if r.Origin != nil {
			sectors = append(sectors, *r.Origin)
		}
		if r.Destination != nil {
			sectors = append(sectors, *r.Destination)
		}
	}
	coords := s.resolver.ResolveMany(ctx, sectors)

	points := make([]domain.MapPoint, 0, len(rows))
	for _, r := range rows {
		p := domain.MapPoint{
			Kind:        r.Kind,
			ID:          r.ID,
			Label:       r.Label,
			Origin:      location(r.Origin, coords),
			Destination: location(r.Destination, coords),
		}

		switch r.Kind {
		case domain.KindPouch:
			linked := make([]domain.Shipment, 0, len(r.LinkedStatuses))
			for _, st := range r.LinkedStatuses {
				linked = append(linked, domain.Shipment{Status: st})
			}
			a := domain.EvaluateAvailability(domain.Pouch{ID: r.ID, Status: r.Status}, linked)
			p.Status = a.Label()
			p.InTransit = a == domain.Unavailable
			p.Delivered = a == domain.Available
		case domain.KindShipment:
			st := domain.ParseShipmentStatus(r.Status)
			p.Status = st.Label()
			p.InTransit = st.Moving()
			p.Delivered = st == domain.StatusDelivered
			switch st {
			case domain.StatusDelivered:
				p.Current = p.Destination
			case domain.StatusPending, domain.StatusReturned:
				p.Current = p.Origin
			}
		}

		points = append(points, p)
	}

	return points
}

func location(s *domain.Sector, coords map[int64]domain.Coordinates) *domain.SectorLocation {
	if s == nil {
		return nil
	}
	loc := &domain.SectorLocation{
		SectorID:   s.ID,
		Name:       s.Name,
		PostalCode: s.PostalCode,
	}
	if c, ok := coords[s.ID]; ok {
		loc.Coordinates = &c
	}
	return loc
}

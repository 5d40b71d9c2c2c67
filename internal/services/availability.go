package services

import (
	"context"
	"fmt"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// AvailabilityService answers the per-sector pouch availability queries.
// Availability is always derived from linked shipments at read time.
type AvailabilityService struct {
	repo ports.PouchRepository
}

func NewAvailabilityService(repo ports.PouchRepository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// ListAvailablePouches returns only the pouches of a sector that are available.
func (s *AvailabilityService) ListAvailablePouches(
	ctx context.Context,
	sectorID int64,
	dir domain.Direction,
) (_ []domain.Pouch, err error) {
	defer obs.Time(ctx, "availability.ListAvailablePouches")(&err)

	statuses, err := s.evaluate(ctx, sectorID, dir)
	if err != nil {
		return nil, fmt.Errorf("list available pouches: %w", err)
	}

	out := make([]domain.Pouch, 0, len(statuses))
	for _, st := range statuses {
		if st.Availability == domain.Available {
			out = append(out, st.Pouch)
		}
	}
	return out, nil
}

// GetPouchStatuses annotates every pouch of a sector with its computed status.
func (s *AvailabilityService) GetPouchStatuses(
	ctx context.Context,
	sectorID int64,
	dir domain.Direction,
) (_ []domain.PouchStatus, err error) {
	defer obs.Time(ctx, "availability.GetPouchStatuses")(&err)

	statuses, err := s.evaluate(ctx, sectorID, dir)
	if err != nil {
		return nil, fmt.Errorf("get pouch statuses: %w", err)
	}
	return statuses, nil
}

func (s *AvailabilityService) evaluate(ctx context.Context, sectorID int64, dir domain.Direction) ([]domain.PouchStatus, error) {
	if sectorID <= 0 {
		return nil, fmt.Errorf("%w: sector id must be positive", ErrInvalidInput)
	}

	rows, err := s.repo.ListPouchesWithShipments(ctx, &sectorID, dir)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PouchStatus, 0, len(rows))
	for _, r := range rows {
		a := domain.EvaluateAvailability(r.Pouch, r.Shipments)
		out = append(out, domain.PouchStatus{
			Pouch:        r.Pouch,
			Availability: a,
			Label:        a.Label(),
		})
	}
	return out, nil
}

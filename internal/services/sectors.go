package services

import (
	"context"
	"fmt"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// SectorService exposes coordinate resolution for sectors and the
// coordinate back-fill job.
type SectorService struct {
	repo     ports.SectorRepository
	resolver *Resolver
}

func NewSectorService(repo ports.SectorRepository, resolver *Resolver) *SectorService {
	return &SectorService{repo: repo, resolver: resolver}
}

// Coordinates resolves one sector. ok is false when it cannot be located.
func (s *SectorService) Coordinates(ctx context.Context, id int64) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "sectors.Coordinates")(&err)

	sector, err := s.repo.GetSector(ctx, id)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("sector coordinates id=%d: %w", id, err)
	}

	c, ok := s.resolver.Resolve(ctx, sector)
	return c, ok, nil
}

type BackfillReport struct {
	Total      int `json:"total"`
	Missing    int `json:"missing"`
	Updated    int `json:"updated"`
	Unresolved int `json:"unresolved"`
	Failed     int `json:"failed"`
}

// Backfill resolves every sector without usable stored coordinates and
// writes the result back to the sector row.
func (s *SectorService) Backfill(ctx context.Context) (_ BackfillReport, err error) {
	defer obs.Time(ctx, "sectors.Backfill")(&err)

	sectors, err := s.repo.ListSectors(ctx)
	if err != nil {
		return BackfillReport{}, fmt.Errorf("backfill sectors: %w", err)
	}

	report := BackfillReport{Total: len(sectors)}
	missing := make([]domain.Sector, 0, len(sectors))
	for _, sec := range sectors {
		if sec.HasStoredCoordinates() {
			if _, err := domain.ParseCoordinates(sec.Latitude, sec.Longitude); err == nil {
				continue
			}
		}
		// Malformed stored values must not short-circuit the lookup.
		sec.Latitude, sec.Longitude = "", ""
		missing = append(missing, sec)
	}
	report.Missing = len(missing)

	resolved := s.resolver.ResolveMany(ctx, missing)
	for _, sec := range missing {
		c, ok := resolved[sec.ID]
		if !ok {
			report.Unresolved++
			continue
		}
		if err := s.repo.UpdateSectorCoordinates(ctx, sec.ID, c); err != nil {
			report.Failed++
			obs.Logf(ctx, "op=sectors.Backfill sector=%d err=%v", sec.ID, err)
			continue
		}
		report.Updated++
	}

	return report, nil
}

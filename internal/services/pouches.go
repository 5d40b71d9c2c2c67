package services

import (
	"context"
	"fmt"
	"strings"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// PouchService persists pouches after the hub rule has been applied.
type PouchService struct {
	repo ports.PouchRepository
	hub  *HubRouter
}

func NewPouchService(repo ports.PouchRepository, hub *HubRouter) *PouchService {
	return &PouchService{repo: repo, hub: hub}
}

func (s *PouchService) Create(ctx context.Context, draft domain.PouchDraft) (_ domain.Pouch, err error) {
	defer obs.Time(ctx, "pouches.Create")(&err)

	if strings.TrimSpace(draft.Status) == "" {
		draft.Status = domain.DefaultPouchStatus
	}
	draft, err = s.prepare(ctx, draft)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("create pouch: %w", err)
	}

	p, err := s.repo.CreatePouch(ctx, draft)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("create pouch: %w", err)
	}
	return p, nil
}

// Update merges the fields present in draft over the stored pouch, so the
// hub rule sees the real endpoints and absent fields are left alone.
func (s *PouchService) Update(ctx context.Context, id int64, draft domain.PouchDraft) (_ domain.Pouch, err error) {
	defer obs.Time(ctx, "pouches.Update")(&err)

	if id <= 0 {
		return domain.Pouch{}, fmt.Errorf("update pouch: %w: id must be positive", ErrInvalidInput)
	}

	stored, err := s.repo.GetPouch(ctx, id)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: %w", id, err)
	}

	draft, err = s.prepare(ctx, stored.Merge(draft))
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: %w", id, err)
	}

	p, err := s.repo.UpdatePouch(ctx, id, draft)
	if err != nil {
		return domain.Pouch{}, fmt.Errorf("update pouch id=%d: %w", id, err)
	}
	return p, nil
}

func (s *PouchService) prepare(ctx context.Context, draft domain.PouchDraft) (domain.PouchDraft, error) {
	draft.Number = strings.TrimSpace(draft.Number)
	if draft.Number == "" {
		return draft, fmt.Errorf("%w: number is required", ErrInvalidInput)
	}

	return s.hub.Apply(ctx, draft), nil
}

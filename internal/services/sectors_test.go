package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pouch-tracking-service/internal/adapters/cache"
	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/ports"
	"pouch-tracking-service/internal/ports/mocks"
)

type SectorServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mocks.MockSectorRepository
	geocoder *mocks.MockGeocoder
	service  *SectorService
}

func TestSectorServiceSuite(t *testing.T) {
	suite.Run(t, new(SectorServiceSuite))
}

func (s *SectorServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mocks.NewMockSectorRepository(s.ctrl)
	s.geocoder = mocks.NewMockGeocoder(s.ctrl)
	resolver := NewResolver(cache.NewMemory[domain.Coordinates](), nil, s.geocoder, ResolverOptions{Country: "Brasil"})
	resolver.sleep = func(context.Context, time.Duration) error { return nil }
	s.service = NewSectorService(s.repo, resolver)
}

func (s *SectorServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SectorServiceSuite) TestCoordinates() {
	ctx := context.Background()
	s.repo.EXPECT().GetSector(ctx, int64(5)).Return(domain.Sector{ID: 5, Latitude: "-10,184", Longitude: "-48,334"}, nil)

	c, ok, err := s.service.Coordinates(ctx, 5)

	s.Require().NoError(err)
	s.True(ok)
	s.InDelta(-10.184, c.Lat, 1e-9)
}

func (s *SectorServiceSuite) TestCoordinatesUnknownSector() {
	s.repo.EXPECT().GetSector(gomock.Any(), int64(404)).Return(domain.Sector{}, ports.ErrNotFound)

	_, _, err := s.service.Coordinates(context.Background(), 404)
	s.ErrorIs(err, ports.ErrNotFound)
}

func (s *SectorServiceSuite) TestCoordinatesUnresolvable() {
	s.repo.EXPECT().GetSector(gomock.Any(), int64(9)).Return(domain.Sector{ID: 9, Name: "Sem endereço"}, nil)

	_, ok, err := s.service.Coordinates(context.Background(), 9)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SectorServiceSuite) TestBackfill() {
	ctx := context.Background()
	palmas := domain.Coordinates{Lat: -10.25, Lng: -48.32}
	araguaina := domain.Coordinates{Lat: -7.19, Lng: -48.2}

	s.repo.EXPECT().ListSectors(ctx).Return([]domain.Sector{
		{ID: 1, Latitude: "-10.1", Longitude: "-48.1"},
		{ID: 2, City: "Palmas", State: "TO"},
		{ID: 3, City: "Araguaína", State: "TO", Latitude: "n/a", Longitude: "n/a"},
		{ID: 4, Name: "Sem endereço"},
	}, nil)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO, Brasil").Return(palmas, nil)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Araguaína, TO, Brasil").Return(araguaina, nil)
	s.repo.EXPECT().UpdateSectorCoordinates(ctx, int64(2), palmas).Return(nil)
	s.repo.EXPECT().UpdateSectorCoordinates(ctx, int64(3), araguaina).Return(errors.New("deadlock"))

	report, err := s.service.Backfill(ctx)

	s.Require().NoError(err)
	s.Equal(BackfillReport{Total: 4, Missing: 3, Updated: 1, Unresolved: 1, Failed: 1}, report)
}

func (s *SectorServiceSuite) TestBackfillListError() {
	s.repo.EXPECT().ListSectors(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := s.service.Backfill(context.Background())
	s.Error(err)
}

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"pouch-tracking-service/internal/adapters/cache"
	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/ports"
	"pouch-tracking-service/internal/ports/mocks"
)

type ResolverSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	cache    *cache.Memory[domain.Coordinates]
	postal   *mocks.MockPostalLookup
	geocoder *mocks.MockGeocoder
	resolver *Resolver
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.cache = cache.NewMemory[domain.Coordinates]()
	s.postal = mocks.NewMockPostalLookup(s.ctrl)
	s.geocoder = mocks.NewMockGeocoder(s.ctrl)
	s.resolver = NewResolver(s.cache, s.postal, s.geocoder, ResolverOptions{
		Country: "Brasil",
		TTL:     time.Hour,
	})
}

func (s *ResolverSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolverSuite) TestStoredCoordinatesNeedNoLookup() {
	for _, tc := range []struct{ lat, lng string }{
		{"-10.184", "-48.334"},
		{"-10,184", "-48,334"},
	} {
		s.Run(tc.lat, func() {
			sector := domain.Sector{ID: 5, Latitude: tc.lat, Longitude: tc.lng, PostalCode: "77001-002"}

			c, ok := NewResolver(nil, s.postal, s.geocoder, ResolverOptions{}).Resolve(context.Background(), sector)

			s.True(ok)
			s.InDelta(-10.184, c.Lat, 1e-9)
			s.InDelta(-48.334, c.Lng, 1e-9)
		})
	}
}

func (s *ResolverSuite) TestStoredCoordinatesAreCachedUnderSectorKey() {
	ctx := context.Background()
	sector := domain.Sector{ID: 5, Latitude: "-10.184", Longitude: "-48.334"}

	_, ok := s.resolver.Resolve(ctx, sector)
	s.Require().True(ok)

	got, ok, err := s.cache.Get(ctx, "sector:5")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(domain.Coordinates{Lat: -10.184, Lng: -48.334}, got)
}

func (s *ResolverSuite) TestPostalCodeResolutionIsCached() {
	ctx := context.Background()
	addr := domain.PostalAddress{PostalCode: "77001002", Street: "Quadra 104 Norte", City: "Palmas", State: "TO"}
	want := domain.Coordinates{Lat: -10.18, Lng: -48.33}

	s.postal.EXPECT().LookupAddress(gomock.Any(), "77001002").Return(addr, nil).Times(1)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Quadra 104 Norte, Palmas, TO, Brasil").Return(want, nil).Times(1)

	first, ok := s.resolver.Resolve(ctx, domain.Sector{ID: 1, PostalCode: "77001-002"})
	s.Require().True(ok)
	again, ok := s.resolver.Resolve(ctx, domain.Sector{ID: 1, PostalCode: "77001-002"})
	s.Require().True(ok)
	// A different sector on the same postal code reuses the cep entry.
	sibling, ok := s.resolver.Resolve(ctx, domain.Sector{ID: 2, PostalCode: "77001002"})
	s.Require().True(ok)

	s.Equal(want, first)
	s.Equal(first, again)
	s.Equal(first, sibling)
}

func (s *ResolverSuite) TestUnknownPostalCodeFallsBackToBareCode() {
	want := domain.Coordinates{Lat: -10.2, Lng: -48.3}
	s.postal.EXPECT().LookupAddress(gomock.Any(), "77001002").Return(domain.PostalAddress{}, ports.ErrNotFound)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "77001002").Return(want, nil)

	got, ok := s.resolver.Resolve(context.Background(), domain.Sector{ID: 1, PostalCode: "77001-002"})

	s.True(ok)
	s.Equal(want, got)
}

func (s *ResolverSuite) TestAddressGeocodeMissFallsBackToBareCode() {
	want := domain.Coordinates{Lat: -10.2, Lng: -48.3}
	s.postal.EXPECT().LookupAddress(gomock.Any(), "77001002").
		Return(domain.PostalAddress{City: "Palmas", State: "TO"}, nil)
	gomock.InOrder(
		s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO, Brasil").Return(domain.Coordinates{}, ports.ErrNotFound),
		s.geocoder.EXPECT().Geocode(gomock.Any(), "77001002").Return(want, nil),
	)

	got, ok := s.resolver.Resolve(context.Background(), domain.Sector{ID: 1, PostalCode: "77001-002"})

	s.True(ok)
	s.Equal(want, got)
}

func (s *ResolverSuite) TestCityFallbackUsesPostalAddressWhenSectorHasNone() {
	want := domain.Coordinates{Lat: -7.19, Lng: -48.2}
	s.postal.EXPECT().LookupAddress(gomock.Any(), "77804010").
		Return(domain.PostalAddress{City: "Araguaína", State: "TO"}, nil)
	gomock.InOrder(
		s.geocoder.EXPECT().Geocode(gomock.Any(), "Araguaína, TO, Brasil").Return(domain.Coordinates{}, ports.ErrNotFound),
		s.geocoder.EXPECT().Geocode(gomock.Any(), "77804010").Return(domain.Coordinates{}, errors.New("rate limited")),
		// City tier uses the same query but through the q: cache key.
		s.geocoder.EXPECT().Geocode(gomock.Any(), "Araguaína, TO, Brasil").Return(want, nil),
	)

	got, ok := s.resolver.Resolve(context.Background(), domain.Sector{ID: 8, PostalCode: "77804-010"})

	s.True(ok)
	s.Equal(want, got)
}

func (s *ResolverSuite) TestCityFallbackWithoutPostalCode() {
	want := domain.Coordinates{Lat: -10.25, Lng: -48.32}
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO, Brasil").Return(want, nil)

	got, ok := s.resolver.Resolve(context.Background(), domain.Sector{ID: 3, City: " Palmas ", State: "TO"})

	s.True(ok)
	s.Equal(want, got)
}

func (s *ResolverSuite) TestUnresolvableSectorIsNotCached() {
	ctx := context.Background()

	_, ok := s.resolver.Resolve(ctx, domain.Sector{ID: 9, City: "Palmas"})
	s.False(ok)

	_, ok = s.resolver.Resolve(ctx, domain.Sector{ID: 9, PostalCode: "123"})
	s.False(ok)

	_, hit, err := s.cache.Get(ctx, "sector:9")
	s.Require().NoError(err)
	s.False(hit)
}

func (s *ResolverSuite) TestCacheErrorsAreNotFatal() {
	ctx := context.Background()
	broken := mocks.NewMockCache[domain.Coordinates](s.ctrl)
	broken.EXPECT().Get(gomock.Any(), "sector:5").Return(domain.Coordinates{}, false, errors.New("redis down"))
	broken.EXPECT().Set(gomock.Any(), "sector:5", gomock.Any(), time.Hour).Return(errors.New("redis down"))

	r := NewResolver(broken, nil, nil, ResolverOptions{TTL: time.Hour})
	c, ok := r.Resolve(ctx, domain.Sector{ID: 5, Latitude: "-10.184", Longitude: "-48.334"})

	s.True(ok)
	s.Equal(-10.184, c.Lat)
}

func (s *ResolverSuite) TestResolveQueryNormalisesCacheKey() {
	ctx := context.Background()
	want := domain.Coordinates{Lat: 1, Lng: 2}
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO").Return(want, nil).Times(1)

	first, ok := s.resolver.ResolveQuery(ctx, "  Palmas,   TO ")
	s.Require().True(ok)
	second, ok := s.resolver.ResolveQuery(ctx, "palmas, to")
	s.Require().True(ok)

	s.Equal(want, first)
	s.Equal(want, second)

	_, ok = s.resolver.ResolveQuery(ctx, "   ")
	s.False(ok)
}

func (s *ResolverSuite) TestResolveManyGroupsAndBatches() {
	ctx := context.Background()

	var sleeps atomic.Int32
	r := NewResolver(s.cache, nil, s.geocoder, ResolverOptions{Country: "Brasil", BatchSize: 2, BatchDelay: time.Second})
	r.sleep = func(context.Context, time.Duration) error {
		sleeps.Add(1)
		return nil
	}

	cepA := domain.Coordinates{Lat: -10.18, Lng: -48.33}
	palmas := domain.Coordinates{Lat: -10.25, Lng: -48.32}
	gurupi := domain.Coordinates{Lat: -11.72, Lng: -49.06}

	s.geocoder.EXPECT().Geocode(gomock.Any(), "77001002").Return(cepA, nil).Times(1)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO, Brasil").Return(palmas, nil).Times(1)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "Gurupi, TO, Brasil").Return(gurupi, nil).Times(1)
	s.geocoder.EXPECT().Geocode(gomock.Any(), "77020000").Return(domain.Coordinates{}, ports.ErrNotFound).Times(1)

	sectors := []domain.Sector{
		{ID: 1, Latitude: "-10.1", Longitude: "-48.1"},
		{ID: 2, PostalCode: "77001-002"},
		{ID: 3, PostalCode: "77001002"},
		{ID: 4, City: "Palmas", State: "TO"},
		{ID: 5, City: "Gurupi", State: "TO"},
		{ID: 6, PostalCode: "77020-000"},
		{ID: 7, Name: "no address"},
		{ID: 2, PostalCode: "77001-002"},
	}

	got := r.ResolveMany(ctx, sectors)

	s.Len(got, 5)
	s.Equal(domain.Coordinates{Lat: -10.1, Lng: -48.1}, got[1])
	s.Equal(cepA, got[2])
	s.Equal(cepA, got[3])
	s.Equal(palmas, got[4])
	s.Equal(gurupi, got[5])
	s.NotContains(got, int64(6))
	s.NotContains(got, int64(7))

	// cep A, Palmas, Gurupi, cep B and sector 7 make five groups.
	s.Equal(int32(2), sleeps.Load())

	cached, ok, err := s.cache.Get(ctx, "sector:3")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(cepA, cached)
}

func (s *ResolverSuite) TestResolveManyStopsWhenContextEnds() {
	ctx := context.Background()
	r := NewResolver(s.cache, nil, s.geocoder, ResolverOptions{Country: "Brasil", BatchSize: 1})
	r.sleep = func(context.Context, time.Duration) error { return context.Canceled }

	s.geocoder.EXPECT().Geocode(gomock.Any(), "Palmas, TO, Brasil").Return(domain.Coordinates{Lat: 1, Lng: 1}, nil).Times(1)

	got := r.ResolveMany(ctx, []domain.Sector{
		{ID: 1, City: "Palmas", State: "TO"},
		{ID: 2, City: "Gurupi", State: "TO"},
	})

	s.Len(got, 1)
	s.Contains(got, int64(1))
}

func TestSleepContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("sleepContext() err = %v, want %v", err, context.Canceled)
	}
	if err := sleepContext(context.Background(), 0); err != nil {
		t.Fatalf("sleepContext(0) err = %v, want nil", err)
	}
}

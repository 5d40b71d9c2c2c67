package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pouch-tracking-service/internal/api/handlers"
	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/ports"
	"pouch-tracking-service/internal/services"
)

type fakePouches struct {
	created domain.PouchDraft
	updated domain.PouchDraft
	err     error
}

func (f *fakePouches) Create(_ context.Context, d domain.PouchDraft) (domain.Pouch, error) {
	f.created = d
	if f.err != nil {
		return domain.Pouch{}, f.err
	}
	// Mimic the hub rule for hub 5.
	out, _ := services.EnforceHubRouting(d, 5)
	return domain.Pouch{ID: 1, Number: out.Number, OriginSectorID: out.OriginSectorID, DestinationSectorID: out.DestinationSectorID, Status: "Disponivel"}, nil
}

func (f *fakePouches) Update(_ context.Context, id int64, d domain.PouchDraft) (domain.Pouch, error) {
	f.updated = d
	if f.err != nil {
		return domain.Pouch{}, f.err
	}
	return domain.Pouch{ID: id, Number: d.Number, DestinationSectorID: d.DestinationSectorID}, nil
}

type fakeAvailability struct {
	sectorID int64
	dir      domain.Direction
}

func (f *fakeAvailability) ListAvailablePouches(_ context.Context, sectorID int64, dir domain.Direction) ([]domain.Pouch, error) {
	f.sectorID, f.dir = sectorID, dir
	return []domain.Pouch{{ID: 2, Number: "M-002", DestinationSectorID: domain.Int64Ptr(sectorID)}}, nil
}

func (f *fakeAvailability) GetPouchStatuses(_ context.Context, sectorID int64, dir domain.Direction) ([]domain.PouchStatus, error) {
	f.sectorID, f.dir = sectorID, dir
	return []domain.PouchStatus{
		{Pouch: domain.Pouch{ID: 1, Number: "M-001"}, Availability: domain.Unavailable, Label: domain.Unavailable.Label()},
	}, nil
}

type fakeMaps struct {
	scope *int64
	err   error
}

func (f *fakeMaps) PouchMap(_ context.Context, sectorID *int64) (services.MapData, error) {
	f.scope = sectorID
	return services.MapData{Points: []domain.MapPoint{{Kind: domain.KindPouch, ID: 1}}}, f.err
}

func (f *fakeMaps) ShipmentMap(_ context.Context, sectorID *int64) (services.MapData, error) {
	f.scope = sectorID
	return services.MapData{}, f.err
}

type fakeSectors struct{}

func (fakeSectors) Coordinates(_ context.Context, id int64) (domain.Coordinates, bool, error) {
	switch id {
	case 5:
		return domain.Coordinates{Lat: -10.184, Lng: -48.334}, true, nil
	case 404:
		return domain.Coordinates{}, false, ports.ErrNotFound
	}
	return domain.Coordinates{}, false, nil
}

func (fakeSectors) Backfill(context.Context) (services.BackfillReport, error) {
	return services.BackfillReport{Total: 3, Missing: 1, Updated: 1}, nil
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fixture struct {
	pouches      *fakePouches
	availability *fakeAvailability
	maps         *fakeMaps
	handler      http.Handler
}

func newFixture(health map[string]handlers.Pinger) *fixture {
	f := &fixture{pouches: &fakePouches{}, availability: &fakeAvailability{}, maps: &fakeMaps{}}
	f.handler = NewRouter(Deps{
		Pouches:      f.pouches,
		Availability: f.availability,
		Maps:         f.maps,
		Sectors:      fakeSectors{},
		Health:       health,
	})
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(map[string]handlers.Pinger{"postgres": fakePinger{}})
	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok", "postgres": "ok"}, decode[map[string]string](t, rec))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	f = newFixture(map[string]handlers.Pinger{"redis": fakePinger{err: errors.New("refused")}})
	rec = f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "down", decode[map[string]string](t, rec)["redis"])
}

func TestHealthRejectsOtherMethods(t *testing.T) {
	rec := newFixture(nil).do(t, http.MethodPost, "/health", "", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	rec := newFixture(nil).do(t, http.MethodGet, "/health", "", map[string]string{"X-Request-ID": "abc-123"})
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	rec := newFixture(nil).do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestCreatePouchMirrorsAliases(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodPost, "/pouches",
		`{"numeroMalote":"M-010","setorOrigemId":"3","setorDestinoId":7,"SETOR_DESTINO_ID":"x"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "M-010", f.pouches.created.Number)
	assert.Equal(t, int64(3), *f.pouches.created.OriginSectorID)
	assert.Equal(t, int64(7), *f.pouches.created.DestinationSectorID)

	body := decode[map[string]any](t, rec)
	for _, key := range []string{"destination_sector_id", "setorDestinoId", "setorId", "SETOR_DESTINO_ID"} {
		assert.EqualValues(t, 5, body[key], key)
	}
	for _, key := range []string{"origin_sector_id", "setorOrigemId", "SETOR_ORIGEM_ID"} {
		assert.EqualValues(t, 3, body[key], key)
	}
}

func TestCreatePouchNonNumericSectorIsUnset(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodPost, "/pouches", `{"number":"M-011","destination_sector_id":"central"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, f.pouches.created.DestinationSectorID)
}

func TestCreatePouchErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "malformed json", body: `{"number":`, want: http.StatusBadRequest},
		{name: "two objects", body: `{"number":"a"}{"number":"b"}`, want: http.StatusBadRequest},
		{name: "validation", body: `{}`, err: services.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "repository failure", body: `{"number":"a"}`, err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			f.pouches.err = tt.err

			rec := f.do(t, http.MethodPost, "/pouches", tt.body, nil)

			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, decode[map[string]string](t, rec), "error")
		})
	}
}

func TestUpdatePouch(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodPut, "/pouches/12", `{"number":"M-012","setorId":9}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), *f.pouches.updated.DestinationSectorID)
	assert.EqualValues(t, 12, decode[map[string]any](t, rec)["id"])

	rec = f.do(t, http.MethodPut, "/pouches/abc", `{"number":"M-012"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.pouches.err = ports.ErrPouchNotFound
	rec = f.do(t, http.MethodPut, "/pouches/99", `{"number":"M-099"}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailablePouches(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodGet, "/pouches/available?sector_id=5&direction=origem", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), f.availability.sectorID)
	assert.Equal(t, domain.DirectionOrigin, f.availability.dir)
	assert.Len(t, decode[map[string][]map[string]any](t, rec)["pouches"], 1)
}

func TestAvailablePouchesHeaderOverridesQuery(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodGet, "/pouches/status?sector_id=9", "", map[string]string{handlers.SectorHeader: "5"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), f.availability.sectorID)
	assert.Equal(t, domain.DirectionDestination, f.availability.dir)

	pouches := decode[map[string][]map[string]any](t, rec)["pouches"]
	require.Len(t, pouches, 1)
	assert.Equal(t, "indisponivel", pouches[0]["availability"])
	assert.Equal(t, "Em transito / Indisponível", pouches[0]["status_label"])
}

func TestAvailablePouchesRequiresSector(t *testing.T) {
	f := newFixture(nil)

	for _, target := range []string{"/pouches/available", "/pouches/available?sector_id=0", "/pouches/status?sector_id=abc"} {
		rec := f.do(t, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestMapScoping(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodGet, "/map/pouches", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, f.maps.scope)

	rec = f.do(t, http.MethodGet, "/map/shipments?sector_id=1", "", map[string]string{handlers.SectorHeader: "7"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, f.maps.scope)
	assert.Equal(t, int64(7), *f.maps.scope)

	rec = f.do(t, http.MethodGet, "/map/pouches", "", map[string]string{handlers.SectorHeader: "seven"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.maps.err = errors.New("db down")
	rec = f.do(t, http.MethodGet, "/map/pouches", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSectorCoordinates(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(t, http.MethodGet, "/sectors/5/coordinates", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, true, body["resolved"])
	assert.Equal(t, []any{-48.334, -10.184}, body["lng_lat"])

	rec = f.do(t, http.MethodGet, "/sectors/6/coordinates", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[map[string]any](t, rec)
	assert.Equal(t, false, body["resolved"])
	assert.Nil(t, body["coordinates"])

	rec = f.do(t, http.MethodGet, "/sectors/404/coordinates", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSectorGeocode(t *testing.T) {
	rec := newFixture(nil).do(t, http.MethodPost, "/sectors/geocode", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.BackfillReport{Total: 3, Missing: 1, Updated: 1}, decode[services.BackfillReport](t, rec))
}

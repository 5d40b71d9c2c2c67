package ors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/httpx"
	"pouch-tracking-service/internal/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New("test-key", srv.URL, httpx.WithRetry(2, time.Millisecond))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(" ", ""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestRoute(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/directions/driving-car/geojson" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		var body directionsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if len(body.Coordinates) != 2 || body.Coordinates[0][0] != -48.3 || body.Coordinates[0][1] != -10.1 {
			t.Errorf("coordinates = %v, want [lng, lat] pairs", body.Coordinates)
		}
		if len(body.Radiuses) != 2 || body.Radiuses[0] != 5000 || body.Instructions {
			t.Errorf("body = %+v", body)
		}

		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[[-48.3,-10.1],[-48.35,-10.15],[-48.4,-10.2]]},"properties":{"summary":{"distance":15432.6,"duration":959.4}}}]}`))
	})

	path, err := c.Route(context.Background(), "", domain.Coordinates{Lat: -10.1, Lng: -48.3}, domain.Coordinates{Lat: -10.2, Lng: -48.4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path.Coordinates) != 3 {
		t.Fatalf("points = %d, want 3", len(path.Coordinates))
	}
	if path.Coordinates[1] != (domain.Coordinates{Lat: -10.15, Lng: -48.35}) {
		t.Fatalf("point[1] = %+v", path.Coordinates[1])
	}
	if path.DistanceMeters != 15433 || path.DurationSeconds != 959 {
		t.Fatalf("summary = %d m / %d s", path.DistanceMeters, path.DurationSeconds)
	}
}

func TestRouteNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":2010}}`, http.StatusNotFound)
	})

	_, err := c.Route(context.Background(), "driving-car", domain.Coordinates{}, domain.Coordinates{Lat: 1, Lng: 1})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGeocode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geocode/search" || r.URL.Query().Get("text") != "Palmas, TO" || r.URL.Query().Get("boundary.country") != "BR" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[-48.33,-10.18]}}]}`))
	})

	got, err := c.Geocode(context.Background(), "  Palmas,   TO ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (domain.Coordinates{Lat: -10.18, Lng: -48.33}) {
		t.Fatalf("coords = %+v", got)
	}
}

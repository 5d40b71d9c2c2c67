package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves a free-text address using /geocode/search.
func (c *Client) Geocode(ctx context.Context, query string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)
	defer obs.TrackUpstream("ors.geocode", ports.ErrNotFound)(&err)

	norm := strings.Join(strings.Fields(query), " ")
	if norm == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: empty query: %w", ports.ErrNotFound)
	}

	params := url.Values{}
	params.Set("text", norm)
	params.Set("boundary.country", c.country)
	params.Set("size", "1")
	endpoint := c.baseURL + "/geocode/search?" + params.Encode()

	resp, err := c.http.DoWithRetry(ctx, func() (*http.Request, error) {
		return c.http.NewRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("no geocode results for %q: %w", norm, ports.ErrNotFound)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("invalid coordinate format for %q", norm)
	}

	out := domain.Coordinates{Lng: coords[0], Lat: coords[1]}
	if !out.Valid() {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: coordinates out of range", norm)
	}
	return out, nil
}

package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/httpx"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocoder implements ports.Geocoder with the Nominatim search API. The
// public instance allows one request per second and requires a
// User-Agent; both are configured on the httpx.Client.
type Geocoder struct {
	http         *httpx.Client
	baseURL      string
	countryCodes string
}

func New(client *httpx.Client, baseURL string) *Geocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &Geocoder{
		http:         client,
		baseURL:      strings.TrimRight(baseURL, "/"),
		countryCodes: "br",
	}
}

func (g *Geocoder) Geocode(ctx context.Context, query string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)
	defer obs.TrackUpstream("nominatim", ports.ErrNotFound)(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Coordinates{}, fmt.Errorf("geocode: empty query: %w", ports.ErrNotFound)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", g.countryCodes)
	endpoint := g.baseURL + "/search?" + params.Encode()

	resp, err := g.http.DoWithRetry(ctx, func() (*http.Request, error) {
		return g.http.NewRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinates{}, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", query, ports.ErrNotFound)
	}

	c, err := domain.ParseCoordinates(results[0].Lat, results[0].Lon)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	return c, nil
}

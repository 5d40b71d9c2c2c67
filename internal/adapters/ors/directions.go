package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"pouch-tracking-service/internal/domain"
	"pouch-tracking-service/internal/platform/httpx"
	"pouch-tracking-service/internal/platform/obs"
	"pouch-tracking-service/internal/ports"
)

// Snap radius in meters for each waypoint. Sector addresses are often
// geocoded to a building centroid away from the road network.
const snapRadiusMeters = 5000

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Radiuses     []int       `json:"radiuses"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Route requests a driving path from /v2/directions/{profile}/geojson.
func (c *Client) Route(
	ctx context.Context,
	profile string,
	from, to domain.Coordinates,
) (_ domain.RoutePath, err error) {
	defer obs.Time(ctx, "ors.Route")(&err)
	defer obs.TrackUpstream("ors.directions", ports.ErrNotFound)(&err)

	if profile == "" {
		profile = "driving-car"
	}
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, profile)

	payload, err := json.Marshal(directionsRequest{
		Coordinates:  [][]float64{from.CoordsToList(), to.CoordsToList()},
		Radiuses:     []int{snapRadiusMeters, snapRadiusMeters},
		Instructions: false,
	})
	if err != nil {
		return domain.RoutePath{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := c.http.DoWithRetry(ctx, func() (*http.Request, error) {
		return c.http.NewRequest(ctx, http.MethodPost, endpoint, payload)
	})
	if err != nil {
		// ORS answers 404 when a waypoint cannot be snapped to a road.
		if httpx.IsStatus(err, http.StatusNotFound) {
			return domain.RoutePath{}, fmt.Errorf("directions request: %w", ports.ErrNotFound)
		}
		return domain.RoutePath{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return domain.RoutePath{}, fmt.Errorf("decode directions response: %w", err)
	}
	if len(dr.Features) == 0 {
		return domain.RoutePath{}, fmt.Errorf("directions: no route returned: %w", ports.ErrNotFound)
	}

	f := dr.Features[0]
	path := domain.RoutePath{
		Coordinates: make([]domain.Coordinates, 0, len(f.Geometry.Coordinates)),
		// ORS returns float metrics; round to nearest integer for domain consistency.
		DistanceMeters:  int(math.Round(f.Properties.Summary.Distance)),
		DurationSeconds: int(math.Round(f.Properties.Summary.Duration)),
	}
	for i, pt := range f.Geometry.Coordinates {
		if len(pt) < 2 {
			return domain.RoutePath{}, fmt.Errorf("directions: invalid coordinate at index %d", i)
		}
		path.Coordinates = append(path.Coordinates, domain.Coordinates{Lng: pt[0], Lat: pt[1]})
	}

	return path, nil
}

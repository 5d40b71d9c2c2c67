package dto

import "pouch-tracking-service/internal/domain"

type SectorCoordinatesResponse struct {
	SectorID    int64               `json:"sector_id"`
	Resolved    bool                `json:"resolved"`
	Coordinates *domain.Coordinates `json:"coordinates"`
	// [lng, lat], the order map libraries expect.
	LngLat []float64 `json:"lng_lat,omitempty"`
}

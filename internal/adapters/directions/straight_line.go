package directions

import (
	"context"
	"fmt"
	"math"

	"pouch-tracking-service/internal/domain"
)

const earthRadiusMeters = 6371000

// StraightLineProvider is an offline DirectionsProvider. It returns the
// direct segment between the two points with a great-circle distance and a
// duration at a fixed average speed. Used when no ORS key is configured.
type StraightLineProvider struct {
	SpeedKmh float64
}

func NewStraightLineProvider(speedKmh float64) *StraightLineProvider {
	if speedKmh <= 0 {
		speedKmh = 40
	}
	return &StraightLineProvider{SpeedKmh: speedKmh}
}

func (p *StraightLineProvider) Route(_ context.Context, _ string, from, to domain.Coordinates) (domain.RoutePath, error) {
	if !from.Valid() || !to.Valid() {
		return domain.RoutePath{}, fmt.Errorf("straight line route: invalid endpoints %+v -> %+v", from, to)
	}

	meters := haversineMeters(from, to)
	seconds := meters / (p.SpeedKmh * 1000 / 3600)

	return domain.RoutePath{
		Coordinates:     []domain.Coordinates{from, to},
		DistanceMeters:  int(math.Round(meters)),
		DurationSeconds: int(math.Round(seconds)),
	}, nil
}

func haversineMeters(a, b domain.Coordinates) float64 {
	rad := math.Pi / 180
	dLat := (b.Lat - a.Lat) * rad
	dLng := (b.Lng - a.Lng) * rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*rad)*math.Cos(b.Lat*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

package domain

import "math"

// RoutePath is a driving path between two points as returned by a
// directions provider. Coordinates are ordered from origin to destination.
type RoutePath struct {
	Coordinates     []Coordinates `json:"coordinates"`
	DistanceMeters  int           `json:"distance_meters"`
	DurationSeconds int           `json:"duration_seconds"`
}

// Usable reports whether the path has at least one segment.
func (r RoutePath) Usable() bool { return len(r.Coordinates) >= 2 }

// PointAt walks the path by cumulative planar length and returns the
// position at fraction f in [0,1]. Planar degrees are enough for placing a
// marker; the result is not a geodesic measurement. A path of zero length
// has no position to offer and reports false.
func (r RoutePath) PointAt(f float64) (Coordinates, bool) {
	if !r.Usable() {
		return Coordinates{}, false
	}
	f = math.Max(0, math.Min(1, f))

	total := 0.0
	for i := 1; i < len(r.Coordinates); i++ {
		total += planarDistance(r.Coordinates[i-1], r.Coordinates[i])
	}
	if total == 0 {
		return Coordinates{}, false
	}

	target := total * f
	acc := 0.0
	for i := 1; i < len(r.Coordinates); i++ {
		a, b := r.Coordinates[i-1], r.Coordinates[i]
		d := planarDistance(a, b)
		if d > 0 && acc+d >= target {
			return Interpolate(a, b, (target-acc)/d), true
		}
		acc += d
	}

	return r.Coordinates[len(r.Coordinates)-1], true
}

// Interpolate returns the point at fraction t on the straight segment a->b.
func Interpolate(a, b Coordinates, t float64) Coordinates {
	return Coordinates{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lng: a.Lng + t*(b.Lng-a.Lng),
	}
}

func planarDistance(a, b Coordinates) float64 {
	return math.Hypot(b.Lat-a.Lat, b.Lng-a.Lng)
}

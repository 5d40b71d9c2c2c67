package services

import (
	"fmt"
	"math"

	"pouch-tracking-service/internal/domain"
)

const (
	ColorInTransit      = "#f59e0b"
	ColorStaticMarker   = "#0ea5e9"
	ColorStaticLine     = "#2563eb"
	IconInTransit       = "in_transit"
	IconStatic          = "available"
	clusterRadiusDegree = 0.01
)

// Marker is one rendered map pin. Members lists every point sharing the
// marker's location when the position is spread out, since the drawn
// position is then only approximate.
type Marker struct {
	Position    domain.Coordinates `json:"position"`
	Color       string             `json:"color"`
	Icon        string             `json:"icon"`
	Approximate bool               `json:"approximate"`
	ClusterKey  string             `json:"cluster_key"`
	Point       domain.MapPoint    `json:"point"`
	Members     []domain.MapPoint  `json:"members,omitempty"`
}

// Line joins a point's origin and destination, following the driving path
// when one is known.
type Line struct {
	Key             string               `json:"key"`
	Path            []domain.Coordinates `json:"path"`
	Color           string               `json:"color"`
	Dashed          bool                 `json:"dashed"`
	Routed          bool                 `json:"routed"`
	DistanceMeters  int                  `json:"distance_meters,omitempty"`
	DurationSeconds int                  `json:"duration_seconds,omitempty"`
}

type MapLayer struct {
	Markers []Marker `json:"markers"`
	Lines   []Line   `json:"lines"`
}

type cluster struct {
	key     string
	members []domain.MapPoint
	locs    []domain.Coordinates
}

// Aggregate turns map points into markers and lines. Points sharing a
// location are spread so that no two markers coincide: in-transit members
// are placed along their route at (i+1)/(n+1), the others on a small circle
// around the cluster anchor. The placement is a visual approximation.
func Aggregate(points []domain.MapPoint, routes map[string]domain.RoutePath) MapLayer {
	layer := MapLayer{
		Markers: make([]Marker, 0, len(points)),
		Lines:   make([]Line, 0, len(points)),
	}

	var clusters []*cluster
	byKey := make(map[string]*cluster)

	for _, p := range points {
		if line, ok := lineFor(p, routes); ok {
			layer.Lines = append(layer.Lines, line)
		}

		loc := p.MarkerLocation()
		if loc == nil {
			continue
		}

		k := clusterKey(loc)
		c, ok := byKey[k]
		if !ok {
			c = &cluster{key: k}
			byKey[k] = c
			clusters = append(clusters, c)
		}
		c.members = append(c.members, p)
		c.locs = append(c.locs, *loc.Coordinates)
	}

	for _, c := range clusters {
		layer.Markers = append(layer.Markers, c.markers(routes)...)
	}

	return layer
}

func (c *cluster) markers(routes map[string]domain.RoutePath) []Marker {
	if len(c.members) == 1 {
		return []Marker{newMarker(c.members[0], c.locs[0], c.key)}
	}

	n := len(c.members)
	anchor := c.locs[0]
	out := make([]Marker, 0, n)
	taken := make(map[domain.Coordinates]bool, n)

	for i, p := range c.members {
		frac := float64(i+1) / float64(n+1)

		pos, placed := domain.Coordinates{}, false
		if p.InTransit {
			pos, placed = progressPosition(p, routes[p.Key()], frac)
		}
		if !placed || taken[pos] {
			pos = circlePosition(anchor, i, n, taken)
		}
		taken[pos] = true

		m := newMarker(p, pos, c.key)
		m.Approximate = true
		m.Members = append([]domain.MapPoint(nil), c.members...)
		out = append(out, m)
	}

	return out
}

// circlePosition returns slot i of n on a circle around anchor, widening the
// ring until the slot is free.
func circlePosition(anchor domain.Coordinates, i, n int, taken map[domain.Coordinates]bool) domain.Coordinates {
	angle := 2 * math.Pi * float64(i) / float64(n)
	for ring := 1; ; ring++ {
		r := clusterRadiusDegree * float64(ring)
		pos := domain.Coordinates{
			Lat: anchor.Lat + r*math.Cos(angle),
			Lng: anchor.Lng + r*math.Sin(angle),
		}
		if !taken[pos] {
			return pos
		}
	}
}

// progressPosition places an in-transit point at frac along its route path,
// or along the straight origin-destination segment when no path is known.
// Zero-length routes give no position.
func progressPosition(p domain.MapPoint, path domain.RoutePath, frac float64) (domain.Coordinates, bool) {
	if pos, ok := path.PointAt(frac); ok {
		return pos, true
	}
	if !p.HasSegment() {
		return domain.Coordinates{}, false
	}
	from, to := *p.Origin.Coordinates, *p.Destination.Coordinates
	if from == to {
		return domain.Coordinates{}, false
	}
	return domain.Interpolate(from, to, frac), true
}

func newMarker(p domain.MapPoint, pos domain.Coordinates, key string) Marker {
	m := Marker{
		Position:   pos,
		Color:      ColorStaticMarker,
		Icon:       IconStatic,
		ClusterKey: key,
		Point:      p,
	}
	if p.InTransit {
		m.Color = ColorInTransit
		m.Icon = IconInTransit
	}
	return m
}

func lineFor(p domain.MapPoint, routes map[string]domain.RoutePath) (Line, bool) {
	if !p.HasSegment() {
		return Line{}, false
	}

	l := Line{
		Key:    p.Key(),
		Color:  ColorStaticLine,
		Dashed: p.InTransit,
		Path:   []domain.Coordinates{*p.Origin.Coordinates, *p.Destination.Coordinates},
	}
	if p.InTransit {
		l.Color = ColorInTransit
	}

	if path, ok := routes[p.Key()]; ok && path.Usable() {
		l.Path = path.Coordinates
		l.Routed = true
		l.DistanceMeters = path.DistanceMeters
		l.DurationSeconds = path.DurationSeconds
	}

	return l, true
}

// clusterKey prefers the postal code and otherwise rounds coordinates to
// four decimals (about 11 m).
func clusterKey(loc *domain.SectorLocation) string {
	if cep := domain.PostalDigits(loc.PostalCode); cep != "" {
		return "cep:" + cep
	}
	return fmt.Sprintf("coord:%.4f,%.4f", loc.Coordinates.Lat, loc.Coordinates.Lng)
}

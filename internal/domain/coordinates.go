package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Immutable geographic coordinates (WGS 84).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Return coordinates as [lng, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lng, c.Lat} }

// Valid reports whether both components are finite and inside WGS 84 bounds.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ParseCoordinate parses a stored coordinate component. Sector rows were
// filled by hand and by scripts, so both "-10,184" and "-10.184" occur.
func ParseCoordinate(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("parse coordinate: empty value")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse coordinate %q: %w", raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parse coordinate %q: not a finite number", raw)
	}

	return v, nil
}

// ParseCoordinates parses a stored latitude/longitude pair.
func ParseCoordinates(lat, lng string) (Coordinates, error) {
	la, err := ParseCoordinate(lat)
	if err != nil {
		return Coordinates{}, fmt.Errorf("latitude: %w", err)
	}
	lo, err := ParseCoordinate(lng)
	if err != nil {
		return Coordinates{}, fmt.Errorf("longitude: %w", err)
	}

	c := Coordinates{Lat: la, Lng: lo}
	if !c.Valid() {
		return Coordinates{}, fmt.Errorf("parse coordinates: (%s, %s) out of range", lat, lng)
	}
	return c, nil
}

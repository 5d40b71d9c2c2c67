package domain

import (
	"math"
	"testing"
)

func TestParseCoordinateAcceptsCommaAndDot(t *testing.T) {
	comma, err := ParseCoordinate("-10,184")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dot, err := ParseCoordinate("-10.184")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if comma != dot {
		t.Fatalf("comma = %v, dot = %v, want equal", comma, dot)
	}
	if comma != -10.184 {
		t.Fatalf("value = %v, want -10.184", comma)
	}
}

func TestParseCoordinateRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "NaN", "Inf", "1,2,3"} {
		if _, err := ParseCoordinate(raw); err == nil {
			t.Errorf("ParseCoordinate(%q) expected error", raw)
		}
	}
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates(" -10.184 ", "-48,334")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != -10.184 || c.Lng != -48.334 {
		t.Fatalf("coords = %+v, want {-10.184 -48.334}", c)
	}

	if _, err := ParseCoordinates("-100", "10"); err == nil {
		t.Fatal("expected out of range latitude to fail")
	}
}

func TestCoordinatesValid(t *testing.T) {
	if (Coordinates{Lat: math.NaN(), Lng: 1}).Valid() {
		t.Error("NaN latitude should be invalid")
	}
	if !(Coordinates{Lat: -10, Lng: -48}).Valid() {
		t.Error("expected valid coordinates")
	}
}

func TestPostalDigits(t *testing.T) {
	tests := map[string]string{
		"77001-002":  "77001002",
		"77.001-002": "77001002",
		"7700":       "",
		"":           "",
	}
	for in, want := range tests {
		if got := PostalDigits(in); got != want {
			t.Errorf("PostalDigits(%q) = %q, want %q", in, got, want)
		}
	}
}

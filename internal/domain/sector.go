package domain

import (
	"strings"
	"unicode"
)

// Sector is an organizational unit with a physical address. Latitude and
// longitude are kept as stored text; they may be empty until back-filled.
type Sector struct {
	ID           int64
	Name         string
	Code         string
	PostalCode   string
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string
	Latitude     string
	Longitude    string
}

// HasStoredCoordinates reports whether both coordinate columns carry a value.
func (s Sector) HasStoredCoordinates() bool {
	return strings.TrimSpace(s.Latitude) != "" && strings.TrimSpace(s.Longitude) != ""
}

// PostalDigits returns the postal code stripped to digits, or "" when it is
// not a full 8-digit CEP.
func (s Sector) PostalDigits() string {
	return PostalDigits(s.PostalCode)
}

func PostalDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() != 8 {
		return ""
	}
	return b.String()
}

// PostalAddress is the structured address returned by a postal lookup.
type PostalAddress struct {
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
}

// Query formats the address for free-text geocoding.
func (a PostalAddress) Query(country string) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.Neighborhood, a.City, a.State, country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

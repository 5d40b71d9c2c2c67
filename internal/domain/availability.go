package domain

// Availability is the derived state of a pouch.
type Availability string

const (
	Available   Availability = "disponivel"
	Unavailable Availability = "indisponivel"
)

func (a Availability) Label() string {
	if a == Available {
		return "Disponível"
	}
	return "Em transito / Indisponível"
}

// IsAvailableMarker reports whether a stored pouch status explicitly means
// "available". An empty value counts as the default status.
func IsAvailableMarker(raw string) bool {
	n := NormalizeStatusText(raw)
	if n == "" {
		n = NormalizeStatusText(DefaultPouchStatus)
	}
	return n == "DISPONIVEL" || n == "AVAILABLE"
}

// EvaluateAvailability derives a pouch's availability. Any linked shipment
// that is still active blocks the whole pouch, whatever sector it belongs
// to; otherwise the pouch's own stored status decides.
func EvaluateAvailability(p Pouch, linked []Shipment) Availability {
	for _, s := range linked {
		if s.CanonicalStatus().Active() {
			return Unavailable
		}
	}
	if IsAvailableMarker(p.Status) {
		return Available
	}
	return Unavailable
}

// PouchStatus is a pouch annotated with its computed availability.
type PouchStatus struct {
	Pouch        Pouch
	Availability Availability
	Label        string
}

package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ShipmentStatus is the canonical shipment status. Rows carry several
// historical spellings ("em_transito", "Em Trânsito", "POSTADO", ...);
// ParseShipmentStatus folds them onto these values.
type ShipmentStatus string

const (
	StatusUnknown   ShipmentStatus = ""
	StatusPending   ShipmentStatus = "pending"
	StatusPosted    ShipmentStatus = "posted"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusReturned  ShipmentStatus = "returned"
)

var shipmentStatusAliases = map[string]ShipmentStatus{
	"PENDENTE":    StatusPending,
	"PENDING":     StatusPending,
	"POSTADO":     StatusPosted,
	"POSTADA":     StatusPosted,
	"POSTED":      StatusPosted,
	"EM_TRANSITO": StatusInTransit,
	"EMTRANSITO":  StatusInTransit,
	"TRANSITO":    StatusInTransit,
	"IN_TRANSIT":  StatusInTransit,
	"INTRANSIT":   StatusInTransit,
	"ENTREGUE":    StatusDelivered,
	"ENTREGUES":   StatusDelivered,
	"DELIVERED":   StatusDelivered,
	"DEVOLVIDO":   StatusReturned,
	"DEVOLVIDA":   StatusReturned,
	"RETURNED":    StatusReturned,
}

var statusLabels = map[ShipmentStatus]string{
	StatusPending:   "Pendente",
	StatusPosted:    "Postado",
	StatusInTransit: "Em trânsito",
	StatusDelivered: "Entregue",
	StatusReturned:  "Devolvido",
}

// ParseShipmentStatus maps a raw stored status onto its canonical value.
func ParseShipmentStatus(raw string) ShipmentStatus {
	return shipmentStatusAliases[NormalizeStatusText(raw)]
}

// Active reports whether the status keeps a linked pouch in transit.
// Pending counts: the shipment is already assigned and about to travel.
func (s ShipmentStatus) Active() bool {
	switch s {
	case StatusPending, StatusPosted, StatusInTransit:
		return true
	}
	return false
}

// Moving reports whether the shipment is physically on the road.
func (s ShipmentStatus) Moving() bool {
	return s == StatusPosted || s == StatusInTransit
}

func (s ShipmentStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "Desconhecido"
}

// NormalizeStatusText trims, removes accents, uppercases and collapses runs
// of spaces, underscores and hyphens into a single underscore.
func NormalizeStatusText(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(accentFolder(), s)
	if err == nil {
		s = folded
	}
	s = strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		if r == ' ' || r == '_' || r == '-' || unicode.IsSpace(r) {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}

	return b.String()
}

// transform.Transformer values are stateful, so each call builds its own chain.
func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

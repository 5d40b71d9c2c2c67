package domain

import "testing"

func TestEvaluateAvailability(t *testing.T) {
	tests := []struct {
		name   string
		pouch  Pouch
		linked []Shipment
		want   Availability
	}{
		{
			name:  "no shipments and default status",
			pouch: Pouch{ID: 1},
			want:  Available,
		},
		{
			name:  "no shipments and explicit available status",
			pouch: Pouch{ID: 1, Status: "Disponível"},
			want:  Available,
		},
		{
			name:  "posted shipment blocks pouch",
			pouch: Pouch{ID: 1, Status: "Disponivel"},
			linked: []Shipment{
				{ID: 10, Status: "POSTADO"},
				{ID: 11, Status: "entregue"},
			},
			want: Unavailable,
		},
		{
			name:   "only delivered shipments fall back to stored status",
			pouch:  Pouch{ID: 1, Status: "Disponivel"},
			linked: []Shipment{{ID: 10, Status: "entregue"}},
			want:   Available,
		},
		{
			name:  "stored in-transit status without shipments",
			pouch: Pouch{ID: 1, Status: "Em transito"},
			want:  Unavailable,
		},
		{
			name:  "unrecognised stored status is unavailable",
			pouch: Pouch{ID: 1, Status: "quebrado"},
			want:  Unavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAvailability(tt.pouch, tt.linked); got != tt.want {
				t.Fatalf("availability = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAvailabilityLabel(t *testing.T) {
	if got := Unavailable.Label(); got != "Em transito / Indisponível" {
		t.Fatalf("label = %q", got)
	}
	if got := Available.Label(); got != "Disponível" {
		t.Fatalf("label = %q", got)
	}
}

package ingest

import (
	"reflect"
	"testing"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

func TestParseEquipment(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"Tent (2)", []string{"Tent"}},
		{"RV/Motorhome (1), Small Tent (1)", []string{"RV/Motorhome", "Small Tent"}},
		{"Trailer", []string{"Trailer"}},
		{"  Tent  ", []string{"Tent"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		got := ParseEquipment(tt.raw)
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseEquipment(%q) = %v, want %v", tt.raw, got, tt.expected)
		}
	}
}

func TestFootprintFor(t *testing.T) {
	tests := []struct {
		equipment []string
		expected  models.Footprint
	}{
		{[]string{"Tent"}, models.FootprintTent},
		{[]string{"tent"}, models.FootprintTent},
		{[]string{"Small Tent"}, models.FootprintTent},
		{[]string{"RV/Motorhome", "Tent"}, models.FootprintTent},
		{[]string{"RV/Motorhome"}, models.FootprintRV},
		{[]string{"Trailer", "Car"}, models.FootprintRV},
		{nil, models.FootprintUnknown},
	}

	for _, tt := range tests {
		if got := FootprintFor(tt.equipment); got != tt.expected {
			t.Errorf("FootprintFor(%v) = %v, want %v", tt.equipment, got, tt.expected)
		}
	}
}

func TestObfuscateReservationNumber(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"12345678", "...345678"},
		{"123456", "...123456"},
		{"123", "...123"}, // shorter raw values are kept whole
		{"", "..."},
	}

	for _, tt := range tests {
		if got := ObfuscateReservationNumber(tt.raw); got != tt.expected {
			t.Errorf("ObfuscateReservationNumber(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

func normalizeHeader(rows [][]string) *Header {
	labels := headerRow()
	columns := make(map[string]int, len(labels))
	for i, label := range labels {
		columns[label] = i
	}
	return &Header{RowIndex: 1, Columns: columns, Rows: rows}
}

func TestNormalizeRows(t *testing.T) {
	today := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	h := normalizeHeader([][]string{
		{"A", "A001", "12345678", "RESERVED", "7/8/2025", "7/9/2025", "Smith, J.", "2", "Tent (1)", "1"},
		{"A", "A002", "87654321", "CHECKED_IN", "7/7/2025", "7/10/2025", "Doe, M.", "4", "RV/Motorhome (1)", "3"},
		{"B", "B001", "11112222", "CANCELLED", "7/9/2025", "7/11/2025", "Roe, K.", "3", "", "2"},
	})

	rs := NormalizeRows(h, today)
	if len(rs) != 3 {
		t.Fatalf("Expected 3 reservations, got %d", len(rs))
	}

	first := rs[0]
	if first.ReservationNumber != "...345678" {
		t.Errorf("Unexpected obfuscated number %q", first.ReservationNumber)
	}
	if !first.CheckInTag {
		t.Error("Expected CheckInTag for RESERVED row arriving today")
	}
	if first.Footprint != models.FootprintTent {
		t.Errorf("Expected tent footprint, got %v", first.Footprint)
	}
	if first.Observed || !first.Occupied {
		t.Errorf("RESERVED must be occupied but not observed, got observed=%v occupied=%v", first.Observed, first.Occupied)
	}
	if first.ArrivalDisplay != "07/08" || first.DepartureDisplay != "07/09" {
		t.Errorf("Unexpected display dates %q, %q", first.ArrivalDisplay, first.DepartureDisplay)
	}

	second := rs[1]
	if second.CheckInTag {
		t.Error("CHECKED_IN row must not carry the check-in tag")
	}
	if !second.Observed || !second.Occupied {
		t.Error("CHECKED_IN must be observed and occupied")
	}
	if second.Footprint != models.FootprintRV {
		t.Errorf("Expected RV footprint, got %v", second.Footprint)
	}
	if second.Overnights != 3 || second.Occupants != 4 {
		t.Errorf("Unexpected coercions: overnights=%d occupants=%d", second.Overnights, second.Occupants)
	}

	third := rs[2]
	if third.Occupied || third.Observed || third.CheckInTag {
		t.Error("CANCELLED must not be occupied, observed, or check-in tagged")
	}
	if third.Footprint != models.FootprintUnknown {
		t.Errorf("Empty equipment must be unknown, got %v", third.Footprint)
	}
}

func TestNormalizeRowsDegenerateValues(t *testing.T) {
	today := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	h := normalizeHeader([][]string{
		{"A", "A001", "12345678", "RESERVED", "not a date", "also not", "Smith, J.", "n/a", "Tent", "junk"},
	})

	rs := NormalizeRows(h, today)
	r := rs[0]
	if !r.ArrivalDate.IsZero() || !r.DepartureDate.IsZero() {
		t.Error("Unparseable dates must coerce to zero time")
	}
	if r.ArrivalDisplay != "" || r.DepartureDisplay != "" {
		t.Error("Zero dates must render empty display strings")
	}
	if r.Overnights != 0 || r.Occupants != 0 {
		t.Errorf("Unparseable numerics must coerce to 0, got %d and %d", r.Overnights, r.Occupants)
	}
	if r.CheckInTag {
		t.Error("A zero arrival date must never carry the check-in tag")
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"4", 4},
		{" 4 ", 4},
		{"4.0", 4},
		{"3.9", 3},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := coerceInt(tt.raw); got != tt.expected {
			t.Errorf("coerceInt(%q) = %d, want %d", tt.raw, got, tt.expected)
		}
	}
}

func TestParseDateLayouts(t *testing.T) {
	want := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"7/8/2025", "07/08/2025", "7/8/25", "07-08-25", "2025-07-08", "Jul 8, 2025"} {
		if got := parseDate(raw); !got.Equal(want) {
			t.Errorf("parseDate(%q) = %v, want %v", raw, got, want)
		}
	}
	if !parseDate("tomorrow").IsZero() {
		t.Error("Expected zero time for unparseable date")
	}
}

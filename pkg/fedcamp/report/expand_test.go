package report

import (
	"testing"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func occupiedReservation(site string, arrival, departure time.Time, occupants int) models.Reservation {
	return models.Reservation{
		SiteNumber:    site,
		Status:        models.StatusReserved,
		ArrivalDate:   arrival,
		DepartureDate: departure,
		Footprint:     models.FootprintRV,
		Occupied:      true,
		Occupants:     occupants,
	}
}

func TestExpandNightsMultiNight(t *testing.T) {
	rs := []models.Reservation{
		occupiedReservation("A001", day(2025, 7, 7), day(2025, 7, 10), 4),
	}

	nights := ExpandNights(rs)
	if len(nights) != 3 {
		t.Fatalf("Expected 3 nights, got %d", len(nights))
	}
	if nights[0].Duration != models.DurationFirstNight {
		t.Errorf("Night 0: expected first night, got %v", nights[0].Duration)
	}
	for i := 1; i < 3; i++ {
		if nights[i].Duration != models.DurationContinuingNight {
			t.Errorf("Night %d: expected continuing night, got %v", i, nights[i].Duration)
		}
	}
	for i, n := range nights {
		want := day(2025, 7, 7+i)
		if !n.Date.Equal(want) {
			t.Errorf("Night %d: expected date %v, got %v", i, want, n.Date)
		}
		if n.Occupants != 4 {
			t.Errorf("Night %d: expected 4 occupants, got %d", i, n.Occupants)
		}
	}
}

func TestExpandNightsSingleNight(t *testing.T) {
	rs := []models.Reservation{
		occupiedReservation("A001", day(2025, 7, 8), day(2025, 7, 9), 2),
	}

	nights := ExpandNights(rs)
	if len(nights) != 1 {
		t.Fatalf("Expected 1 night, got %d", len(nights))
	}
	if nights[0].Duration != models.DurationSingleNight {
		t.Errorf("Expected single night, got %v", nights[0].Duration)
	}
}

func TestExpandNightsSkipsDegenerates(t *testing.T) {
	notOccupied := occupiedReservation("A001", day(2025, 7, 8), day(2025, 7, 9), 2)
	notOccupied.Occupied = false

	rs := []models.Reservation{
		notOccupied,
		occupiedReservation("A002", day(2025, 7, 9), day(2025, 7, 9), 2),  // zero span
		occupiedReservation("A003", day(2025, 7, 10), day(2025, 7, 8), 2), // inverted
		occupiedReservation("A004", time.Time{}, day(2025, 7, 9), 2),      // missing arrival
		occupiedReservation("A005", day(2025, 7, 8), time.Time{}, 2),      // missing departure
	}

	if nights := ExpandNights(rs); len(nights) != 0 {
		t.Fatalf("Expected 0 nights from degenerate rows, got %d", len(nights))
	}
}

func TestExpandNightsEmptyInput(t *testing.T) {
	if nights := ExpandNights(nil); len(nights) != 0 {
		t.Fatalf("Expected no nights, got %d", len(nights))
	}
}

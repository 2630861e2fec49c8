// Package placard renders printable check-in placards for reserved sites.
package placard

import (
	"errors"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// ErrNoPlacards indicates no reservation passed the placard filters. An
// empty eligible set reports "nothing to generate" instead of emitting an
// empty document.
var ErrNoPlacards = errors.New("no placard-eligible reservations")

// Record is the minimal field set one placard needs.
type Record struct {
	ReservationNumber   string `json:"reservation_number"`
	SiteNumber          string `json:"site_number"`
	ArrivalDisplay      string `json:"arrival_display"`
	DepartureDisplay    string `json:"departure_display"`
	PrimaryOccupantName string `json:"primary_occupant_name"`
	Occupants           int    `json:"occupants"`
}

// Filter restricts which reservations get placards. Zero-length slices mean
// no restriction on that axis.
type Filter struct {
	// CheckInOnly keeps only rows with the check-in tag set.
	CheckInOnly bool
	// Campsites keeps only the named site numbers.
	Campsites []string
	// ArrivalDates keeps only reservations arriving on the given dates.
	ArrivalDates []time.Time
}

// SelectRecords applies the filter and maps the surviving reservations to
// placard records, preserving row order.
func SelectRecords(reservations []models.Reservation, f Filter) []Record {
	sites := make(map[string]bool, len(f.Campsites))
	for _, s := range f.Campsites {
		sites[s] = true
	}
	dates := make(map[time.Time]bool, len(f.ArrivalDates))
	for _, d := range f.ArrivalDates {
		dates[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] = true
	}

	var records []Record
	for _, r := range reservations {
		if f.CheckInOnly && !r.CheckInTag {
			continue
		}
		if len(sites) > 0 && !sites[r.SiteNumber] {
			continue
		}
		if len(dates) > 0 && !dates[r.ArrivalDate] {
			continue
		}
		records = append(records, Record{
			ReservationNumber:   r.ReservationNumber,
			SiteNumber:          r.SiteNumber,
			ArrivalDisplay:      r.ArrivalDisplay,
			DepartureDisplay:    r.DepartureDisplay,
			PrimaryOccupantName: r.PrimaryOccupantName,
			Occupants:           r.Occupants,
		})
	}
	return records
}

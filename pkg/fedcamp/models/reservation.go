// Package models defines data structures for reservation report processing.
package models

import "time"

// Footprint is the coarse equipment category for a reservation.
type Footprint string

const (
	// FootprintTent marks reservations whose equipment includes a tent.
	FootprintTent Footprint = "tent"
	// FootprintRV marks reservations with non-tent equipment.
	FootprintRV Footprint = "RV"
	// FootprintUnknown marks reservations with no equipment listed.
	FootprintUnknown Footprint = "unknown"
)

// Reservation status values as they appear in the source report.
const (
	StatusReserved   = "RESERVED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
)

// Reservation is one normalized row from the reservation detail report.
type Reservation struct {
	// RawReservationNumber is the reservation number as it appears in the sheet.
	RawReservationNumber string `json:"raw_reservation_number"`
	// ReservationNumber is the obfuscated form: "..." plus the last 6 characters.
	ReservationNumber string `json:"reservation_number"`
	// SiteNumber identifies the campsite. Not unique across rows.
	SiteNumber string `json:"site_number"`
	// Status is the raw reservation status value.
	Status string `json:"status"`
	// ArrivalDate is zero if the source value could not be parsed.
	ArrivalDate time.Time `json:"arrival_date"`
	// DepartureDate is zero if the source value could not be parsed.
	DepartureDate time.Time `json:"departure_date"`
	// ArrivalDisplay is the MM/DD rendering of ArrivalDate, for placards only.
	ArrivalDisplay string `json:"arrival_display"`
	// DepartureDisplay is the MM/DD rendering of DepartureDate, for placards only.
	DepartureDisplay string `json:"departure_display"`
	// CheckInTag marks rows eligible for check-in placard generation:
	// arrival today or later and status RESERVED.
	CheckInTag bool `json:"checkin_tag"`
	// Footprint is derived from the equipment list.
	Footprint Footprint `json:"camper_footprint"`
	// Observed is true for statuses staff have verified on the ground.
	Observed bool `json:"observed"`
	// Occupied is true for statuses that imply the site is or will be occupied.
	Occupied bool `json:"occupied"`
	// Overnights is the "Nights/ Days" field coerced to an int, 0 if unparseable.
	Overnights int `json:"overnights"`
	// Occupants is the "# of Occupants" field coerced to an int, 0 if unparseable.
	Occupants int `json:"occupants"`
	// PrimaryOccupantName is the pre-obfuscated visitor name, e.g. "Smith, J.".
	PrimaryOccupantName string `json:"primary_occupant_name"`
}

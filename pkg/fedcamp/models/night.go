package models

import "time"

// DurationClass tags an occupied night by its position within the stay.
type DurationClass string

const (
	// DurationSingleNight is the only night of a one-night stay.
	DurationSingleNight DurationClass = "single night"
	// DurationFirstNight is the first night of a multi-night stay.
	DurationFirstNight DurationClass = "first night"
	// DurationContinuingNight is any later night of a multi-night stay.
	DurationContinuingNight DurationClass = "continuing night"
)

// OccupiedNight is one (reservation, calendar night) fact row. An occupied
// reservation spanning [arrival, departure) contributes one row per night.
type OccupiedNight struct {
	// Date is the occupied calendar date.
	Date time.Time `json:"occupied_date"`
	// SiteNumber identifies the campsite.
	SiteNumber string `json:"site_number"`
	// Footprint is the reservation's equipment category.
	Footprint Footprint `json:"camper_footprint"`
	// Occupants is the reservation's occupant count, repeated on each night.
	Occupants int `json:"occupants"`
	// Duration is the night's position within the stay.
	Duration DurationClass `json:"duration"`
}

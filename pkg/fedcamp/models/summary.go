package models

import "time"

// DailySummary aggregates all occupied nights that fall on one calendar date.
// Missing footprint or duration categories report 0, never an absent field.
type DailySummary struct {
	// Date is the occupied calendar date.
	Date time.Time `json:"date"`
	// TotalSites counts distinct occupied sites on the date.
	TotalSites int `json:"total_sites"`
	// TotalOccupants sums occupants over all occupied nights on the date.
	TotalOccupants int `json:"total_occupants"`
	// RVSites counts distinct RV-footprint sites on the date.
	RVSites int `json:"rv_sites"`
	// TentSites counts distinct tent-footprint sites on the date.
	TentSites int `json:"tent_sites"`
	// FirstNightOccupants sums occupants over first-night rows.
	FirstNightOccupants int `json:"first_night_occupants"`
	// SingleNightOccupants sums occupants over single-night rows.
	SingleNightOccupants int `json:"single_night_occupants"`
	// ContinuingNightOccupants sums occupants over continuing-night rows.
	ContinuingNightOccupants int `json:"continuing_night_occupants"`
	// Year is the calendar year of Date.
	Year int `json:"year"`
	// Month is the full English month name, e.g. "July".
	Month string `json:"month"`
	// Week is the ISO-8601 week number of Date.
	Week int `json:"week"`
	// Day is the full English weekday name, e.g. "Tuesday".
	Day string `json:"day"`
}

// BusiestDay is the highest-weighted DailySummary row within one ISO week.
type BusiestDay struct {
	// Week is the ISO-8601 week number.
	Week int `json:"week"`
	// Date is the busiest date within the week.
	Date time.Time `json:"date"`
	// Day is the full English weekday name of Date.
	Day string `json:"day"`
	// TotalOccupants is copied from the winning DailySummary row.
	TotalOccupants int `json:"total_occupants"`
	// FirstNightOccupants is copied from the winning DailySummary row.
	FirstNightOccupants int `json:"first_night_occupants"`
	// SingleNightOccupants is copied from the winning DailySummary row.
	SingleNightOccupants int `json:"single_night_occupants"`
	// ContinuingNightOccupants is copied from the winning DailySummary row.
	ContinuingNightOccupants int `json:"continuing_night_occupants"`
	// WeightedOccupants is the weighted score that won the week.
	WeightedOccupants int `json:"weighted_occupants"`
}

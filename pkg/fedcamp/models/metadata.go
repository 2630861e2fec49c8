package models

import "time"

// SheetMetadata holds the labeled preamble values above the header row.
// Either field may be absent; absence is tolerated and nothing downstream
// validates reservation rows against it.
type SheetMetadata struct {
	// Location is the park or campground name from the "Location:" line.
	Location string `json:"location,omitempty"`
	// RunDate is the report generation time from the "Run Date and Time:"
	// line, zero if the line is missing or unparseable.
	RunDate time.Time `json:"run_date,omitempty"`
	// RunTimezone is the trailing timezone text of the run date line,
	// e.g. "Mountain Time".
	RunTimezone string `json:"run_timezone,omitempty"`
}

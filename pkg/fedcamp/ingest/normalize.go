package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// obfuscatedNumberKeep is how many trailing characters of the raw reservation
// number survive obfuscation. Shorter raw values are kept whole.
const obfuscatedNumberKeep = 6

// quantitySuffix strips trailing quantity annotations from equipment items,
// e.g. "Tent (2)" -> "Tent".
var quantitySuffix = regexp.MustCompile(`\s*\(\d+\)$`)

// Date layouts seen in exported reports. excelize renders date cells through
// their number format, so both slash and dash forms show up.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"01-02-06",
	"2006-01-02",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// NormalizeRows maps every row beneath the header to a Reservation, one to
// one and in order. Unparseable numerics coerce to 0 and unparseable dates to
// the zero time; normalization itself never fails.
func NormalizeRows(h *Header, today time.Time) []models.Reservation {
	reservations := make([]models.Reservation, 0, len(h.Rows))

	for _, row := range h.Rows {
		rawNumber := strings.TrimSpace(h.Cell(row, "Reservation #"))
		status := strings.TrimSpace(h.Cell(row, "Reservation Status"))
		arrival := parseDate(h.Cell(row, "Arrival Date"))
		departure := parseDate(h.Cell(row, "Departure Date"))
		equipment := ParseEquipment(h.Cell(row, "Equipment"))

		reservations = append(reservations, models.Reservation{
			RawReservationNumber: rawNumber,
			ReservationNumber:    ObfuscateReservationNumber(rawNumber),
			SiteNumber:           strings.TrimSpace(h.Cell(row, "Site #")),
			Status:               status,
			ArrivalDate:          arrival,
			DepartureDate:        departure,
			ArrivalDisplay:       displayDate(arrival),
			DepartureDisplay:     displayDate(departure),
			CheckInTag:           checkInTag(arrival, status, today),
			Footprint:            FootprintFor(equipment),
			Observed:             status == models.StatusCheckedIn || status == models.StatusCheckedOut,
			Occupied:             status == models.StatusCheckedIn || status == models.StatusCheckedOut || status == models.StatusReserved,
			Overnights:           coerceInt(h.Cell(row, "Nights/ Days")),
			Occupants:            coerceInt(h.Cell(row, "# of Occupants")),
			PrimaryOccupantName:  strings.TrimSpace(h.Cell(row, primaryOccupantColumn)),
		})
	}

	log.Debug().
		Int("reservations", len(reservations)).
		Msg("Normalized reservation rows")

	return reservations
}

// ObfuscateReservationNumber keeps only the trailing characters of the raw
// reservation number, prefixed with a literal "...".
func ObfuscateReservationNumber(raw string) string {
	if len(raw) > obfuscatedNumberKeep {
		raw = raw[len(raw)-obfuscatedNumberKeep:]
	}
	return "..." + raw
}

// ParseEquipment splits a raw equipment string on commas, trims each item,
// and strips trailing quantity suffixes. A blank value yields no items.
func ParseEquipment(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = quantitySuffix.ReplaceAllString(strings.TrimSpace(item), "")
		items = append(items, item)
	}
	return items
}

// FootprintFor categorizes an equipment list: tent beats RV, and an empty
// list is unknown.
func FootprintFor(equipment []string) models.Footprint {
	if len(equipment) == 0 {
		return models.FootprintUnknown
	}
	for _, item := range equipment {
		switch strings.ToLower(item) {
		case "tent", "small tent":
			return models.FootprintTent
		}
	}
	return models.FootprintRV
}

// checkInTag marks reservations eligible for check-in placards: arriving
// today or later and still in RESERVED status. A zero arrival date never
// qualifies.
func checkInTag(arrival time.Time, status string, today time.Time) bool {
	return !arrival.IsZero() && !arrival.Before(today) && status == models.StatusReserved
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func displayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("01/02")
}

// coerceInt parses a numeric cell, accepting integer and decimal renderings.
// Anything unparseable coerces to 0.
func coerceInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(f)
	}
	return 0
}

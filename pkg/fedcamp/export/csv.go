// Package export serializes the canonical tables for download packaging.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// csvDateLayout is the date rendering used in all exported tables.
const csvDateLayout = "2006-01-02"

// Table is an ordered set of uniformly-keyed records ready for delimited
// export. Column order is stable across runs.
type Table struct {
	// Name is the file name the table takes inside a download package.
	Name string
	// Header holds the column labels.
	Header []string
	// Rows holds one record per row, aligned with Header.
	Rows [][]string
}

// WriteCSV writes the table to w as RFC 4180 CSV with a header row.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReservationsTable flattens the canonical reservation rows.
func ReservationsTable(reservations []models.Reservation) Table {
	t := Table{
		Name: "reservations.csv",
		Header: []string{
			"Reservation #", "ReservationNumber", "SiteNumber",
			"Arrival Date", "ArrivalDate", "CheckInTag",
			"Departure Date", "DepartureDate", "Camper Footprint",
			"observed", "occupied", "Overnights", "Occupants",
			"Primary Occupant Name",
		},
	}
	for _, r := range reservations {
		t.Rows = append(t.Rows, []string{
			r.RawReservationNumber,
			r.ReservationNumber,
			r.SiteNumber,
			formatDate(r.ArrivalDate),
			r.ArrivalDisplay,
			strconv.FormatBool(r.CheckInTag),
			formatDate(r.DepartureDate),
			r.DepartureDisplay,
			string(r.Footprint),
			strconv.FormatBool(r.Observed),
			strconv.FormatBool(r.Occupied),
			strconv.Itoa(r.Overnights),
			strconv.Itoa(r.Occupants),
			r.PrimaryOccupantName,
		})
	}
	return t
}

// OccupiedNightsTable flattens the per-night fact rows.
func OccupiedNightsTable(nights []models.OccupiedNight) Table {
	t := Table{
		Name: "occupied_reservations_by_day.csv",
		Header: []string{
			"Occupied Date", "SiteNumber", "Camper Footprint",
			"Occupants", "Duration",
		},
	}
	for _, n := range nights {
		t.Rows = append(t.Rows, []string{
			formatDate(n.Date),
			n.SiteNumber,
			string(n.Footprint),
			strconv.Itoa(n.Occupants),
			string(n.Duration),
		})
	}
	return t
}

// DailySummaryTable flattens the per-date summary rows.
func DailySummaryTable(days []models.DailySummary) Table {
	t := Table{
		Name: "daily_reservation_summary.csv",
		Header: []string{
			"Occupied Date", "total_sites", "total_occupants",
			"rv_sites", "tent_sites", "first_night_occupants",
			"single_night_occupants", "continuing_night_occupants",
			"year", "month", "week", "day",
		},
	}
	for _, d := range days {
		t.Rows = append(t.Rows, []string{
			formatDate(d.Date),
			strconv.Itoa(d.TotalSites),
			strconv.Itoa(d.TotalOccupants),
			strconv.Itoa(d.RVSites),
			strconv.Itoa(d.TentSites),
			strconv.Itoa(d.FirstNightOccupants),
			strconv.Itoa(d.SingleNightOccupants),
			strconv.Itoa(d.ContinuingNightOccupants),
			strconv.Itoa(d.Year),
			d.Month,
			strconv.Itoa(d.Week),
			d.Day,
		})
	}
	return t
}

// BusiestDaysTable flattens the per-week busiest day rows.
func BusiestDaysTable(busiest []models.BusiestDay) Table {
	t := Table{
		Name: "busiest_days.csv",
		Header: []string{
			"week", "Occupied Date", "day", "total_occupants",
			"first_night_occupants", "single_night_occupants",
			"continuing_night_occupants", "weighted_occupants",
		},
	}
	for _, b := range busiest {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(b.Week),
			formatDate(b.Date),
			b.Day,
			strconv.Itoa(b.TotalOccupants),
			strconv.Itoa(b.FirstNightOccupants),
			strconv.Itoa(b.SingleNightOccupants),
			strconv.Itoa(b.ContinuingNightOccupants),
			strconv.Itoa(b.WeightedOccupants),
		})
	}
	return t
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(csvDateLayout)
}

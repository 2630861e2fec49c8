package export

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

func sampleTables() []Table {
	date := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	reservations := []models.Reservation{{
		RawReservationNumber: "12345678",
		ReservationNumber:    "...345678",
		SiteNumber:           "A001",
		Status:               models.StatusReserved,
		ArrivalDate:          date,
		DepartureDate:        date.AddDate(0, 0, 1),
		ArrivalDisplay:       "07/08",
		DepartureDisplay:     "07/09",
		Footprint:            models.FootprintTent,
		Occupied:             true,
		Overnights:           1,
		Occupants:            2,
		PrimaryOccupantName:  "Smith, J.",
	}}
	nights := []models.OccupiedNight{{
		Date:       date,
		SiteNumber: "A001",
		Footprint:  models.FootprintTent,
		Occupants:  2,
		Duration:   models.DurationSingleNight,
	}}
	days := []models.DailySummary{{
		Date: date, TotalSites: 1, TotalOccupants: 2, TentSites: 1,
		SingleNightOccupants: 2, Year: 2025, Month: "July", Week: 28, Day: "Tuesday",
	}}
	busiest := []models.BusiestDay{{
		Week: 28, Date: date, Day: "Tuesday", TotalOccupants: 2,
		SingleNightOccupants: 2, WeightedOccupants: 4,
	}}

	return []Table{
		ReservationsTable(reservations),
		OccupiedNightsTable(nights),
		DailySummaryTable(days),
		BusiestDaysTable(busiest),
	}
}

func TestWriteCSVRoundRead(t *testing.T) {
	tables := sampleTables()

	var buf bytes.Buffer
	if err := tables[0].WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Re-reading CSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d records", len(records))
	}
	if len(records[0]) != len(records[1]) {
		t.Errorf("Header has %d columns but row has %d", len(records[0]), len(records[1]))
	}
	if records[1][1] != "...345678" {
		t.Errorf("Expected obfuscated number in column 2, got %q", records[1][1])
	}
	if records[1][3] != "2025-07-08" {
		t.Errorf("Expected ISO arrival date, got %q", records[1][3])
	}
}

func TestPackageBytesZip(t *testing.T) {
	data, err := PackageBytes(FormatZip, sampleTables())
	if err != nil {
		t.Fatalf("PackageBytes failed: %v", err)
	}

	// Zip local file header signature.
	if !bytes.HasPrefix(data, []byte{'P', 'K', 0x03, 0x04}) {
		t.Fatalf("Output does not start with zip signature: % x", data[:4])
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Reading zip back failed: %v", err)
	}
	if len(zr.File) != 4 {
		t.Fatalf("Expected 4 CSV entries, got %d", len(zr.File))
	}
	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"reservations.csv", "occupied_reservations_by_day.csv",
		"daily_reservation_summary.csv", "busiest_days.csv",
	} {
		if !names[want] {
			t.Errorf("Missing archive entry %q", want)
		}
	}
}

func TestPackageFileTarGz(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.tar.gz")
	if err := PackageFile(FormatTarGz, path, sampleTables()); err != nil {
		t.Fatalf("PackageFile failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Archive file missing: %v", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("Output is not a valid gzip stream: %v", err)
	}
	if _, err := io.ReadAll(gz); err != nil {
		t.Fatalf("Decompressing archive failed: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("Gzip stream invalid: %v", err)
	}
}

func TestBuildDownloadPackageUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := BuildDownloadPackage(&buf, Format("rar"), sampleTables()); err == nil {
		t.Fatal("Expected error for unsupported format")
	}
}

func TestPackageBytesEmptyTables(t *testing.T) {
	// Empty result sets are valid outputs: the archive still carries the
	// headers of each table.
	tables := []Table{ReservationsTable(nil), OccupiedNightsTable(nil)}
	data, err := PackageBytes(FormatZip, tables)
	if err != nil {
		t.Fatalf("PackageBytes failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Reading zip back failed: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(zr.File))
	}
}

package ingest

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// ErrSchema indicates no row contains the full required-column set.
var ErrSchema = errors.New("no header row with required columns")

// Column labels every reservation detail report must carry in its header row.
var requiredColumns = []string{
	"Loop",
	"Site #",
	"Reservation #",
	"Reservation Status",
	"Arrival Date",
	"Departure Date",
	"Primary Occupant Name",
	"# of Occupants",
	"Equipment",
	"Nights/ Days",
}

// metadataScanRows bounds the preamble scan; the metadata lines always sit
// above the header row, within the first few rows of the sheet.
const metadataScanRows = 10

const (
	locationPrefix = "Location:"
	runDatePrefix  = "Run Date and Time:"
)

// Header is the located header row plus the typed working rows beneath it.
type Header struct {
	// RowIndex is the 0-based grid index of the header row.
	RowIndex int
	// Columns maps each header label to its column index.
	Columns map[string]int
	// Rows holds every grid row strictly after the header row.
	Rows [][]string
}

// Cell returns the value of the named column in row, or "" when the row is
// too short to reach it.
func (h *Header) Cell(row []string, label string) string {
	idx, ok := h.Columns[label]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// LocateHeader finds the first row whose cells are a superset of the required
// column labels. A match at row 0 is treated as not found: the report format
// always places a metadata preamble above the header.
func LocateHeader(grid [][]string) (*Header, error) {
	headerIdx := -1
	for i, row := range grid {
		if containsAll(row, requiredColumns) {
			headerIdx = i
			break
		}
	}
	if headerIdx <= 0 {
		return nil, ErrSchema
	}

	columns := make(map[string]int)
	for j, label := range grid[headerIdx] {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, seen := columns[label]; !seen {
			columns[label] = j
		}
	}

	log.Debug().
		Int("header_row", headerIdx).
		Int("data_rows", len(grid)-headerIdx-1).
		Msg("Located header row")

	return &Header{
		RowIndex: headerIdx,
		Columns:  columns,
		Rows:     grid[headerIdx+1:],
	}, nil
}

func containsAll(row []string, labels []string) bool {
	values := make(map[string]bool, len(row))
	for _, cell := range row {
		values[strings.TrimSpace(cell)] = true
	}
	for _, label := range labels {
		if !values[label] {
			return false
		}
	}
	return true
}

// runDatePattern splits the run date line into date, time, and trailing
// timezone text, e.g. "07/08/2025 2:15 PM Mountain Time".
var runDatePattern = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{4})\s+(\d{1,2}:\d{2}(?::\d{2})?\s*(?:[AP]M)?)\s*(.*)$`)

var runDateLayouts = []string{
	"1/2/2006 3:04 PM",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
}

// ExtractMetadata scans the leading rows for the "Location:" and
// "Run Date and Time:" lines. Absence of either is tolerated; this is
// metadata and nothing downstream validates against it.
func ExtractMetadata(grid [][]string) models.SheetMetadata {
	var meta models.SheetMetadata

	limit := metadataScanRows
	if len(grid) < limit {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		row := grid[i]
		for j, cell := range row {
			cell = strings.TrimSpace(cell)
			switch {
			case strings.HasPrefix(cell, locationPrefix):
				meta.Location = labeledValue(cell, locationPrefix, row, j)
			case strings.HasPrefix(cell, runDatePrefix):
				raw := labeledValue(cell, runDatePrefix, row, j)
				meta.RunDate, meta.RunTimezone = parseRunDate(raw)
			}
		}
	}

	return meta
}

// labeledValue returns the text after the prefix, falling back to the next
// non-empty cell when the label occupies a cell of its own.
func labeledValue(cell, prefix string, row []string, col int) string {
	value := strings.TrimSpace(strings.TrimPrefix(cell, prefix))
	if value != "" {
		return value
	}
	for j := col + 1; j < len(row); j++ {
		if v := strings.TrimSpace(row[j]); v != "" {
			return v
		}
	}
	return ""
}

func parseRunDate(raw string) (time.Time, string) {
	m := runDatePattern.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, ""
	}
	stamp := m[1] + " " + strings.TrimSpace(m[2])
	for _, layout := range runDateLayouts {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t, strings.TrimSpace(m[3])
		}
	}
	return time.Time{}, strings.TrimSpace(m[3])
}

// Package ingest turns a reservation detail spreadsheet into normalized rows.
package ingest

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ErrNotFound indicates the input file does not exist.
var ErrNotFound = errors.New("input file not found")

// ErrMalformedInput indicates the input file is not a decodable spreadsheet.
var ErrMalformedInput = errors.New("malformed input spreadsheet")

// LoadGrid reads the first sheet of an xlsx file into an untyped 2-D grid of
// cell strings. No schema is assumed; the header row is located later.
func LoadGrid(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	if len(sheetList) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedInput)
	}

	rows, err := f.GetRows(sheetList[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	log.Debug().
		Str("sheet", sheetList[0]).
		Int("rows", len(rows)).
		Msg("Loaded reservation grid")

	return rows, nil
}

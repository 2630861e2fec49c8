package fedcamp

import (
	"github.com/rs/zerolog/log"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/export"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/ingest"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/placard"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/report"
)

// Report holds the canonical tables derived from one reservation
// spreadsheet. Every table is fully materialized before any output artifact
// is generated; re-running Process on the same file rebuilds it from
// scratch.
type Report struct {
	InputFile      string
	Metadata       models.SheetMetadata
	Reservations   []models.Reservation
	OccupiedNights []models.OccupiedNight
	DailySummaries []models.DailySummary
	BusiestDays    []models.BusiestDay
}

// Process runs the full pipeline over one spreadsheet: load the grid, locate
// the header and metadata, gate on name obfuscation, normalize rows, expand
// occupied nights, summarize per day, and rank the busiest day per week.
// Any stage failure aborts the run; there is no retry.
func Process(path string, opts Options) (*Report, error) {
	grid, err := ingest.LoadGrid(path)
	if err != nil {
		return nil, NewStageError("load", err)
	}

	meta := ingest.ExtractMetadata(grid)

	header, err := ingest.LocateHeader(grid)
	if err != nil {
		return nil, NewStageError("header", err)
	}

	if err := ingest.CheckNames(header, opts.EffectiveRand()); err != nil {
		return nil, NewStageError("privacy", err)
	}

	reservations := ingest.NormalizeRows(header, opts.EffectiveToday())
	nights := report.ExpandNights(reservations)
	days := report.Summarize(nights)
	busiest := report.BusiestDays(days, opts.EffectiveWeights())

	log.Info().
		Str("input", path).
		Int("reservations", len(reservations)).
		Int("occupied_nights", len(nights)).
		Int("days", len(days)).
		Int("weeks", len(busiest)).
		Msg("Processed reservation report")

	return &Report{
		InputFile:      path,
		Metadata:       meta,
		Reservations:   reservations,
		OccupiedNights: nights,
		DailySummaries: days,
		BusiestDays:    busiest,
	}, nil
}

// Tables returns the canonical tables in download-package order.
func (r *Report) Tables() []export.Table {
	return []export.Table{
		export.ReservationsTable(r.Reservations),
		export.OccupiedNightsTable(r.OccupiedNights),
		export.DailySummaryTable(r.DailySummaries),
		export.BusiestDaysTable(r.BusiestDays),
	}
}

// PlacardRecords applies the filter and returns the placard input records.
func (r *Report) PlacardRecords(f placard.Filter) []placard.Record {
	return placard.SelectRecords(r.Reservations, f)
}

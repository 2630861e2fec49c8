// Package main provides the CLI entry point for fedcamp-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/export"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/placard"
)

var (
	outputDir     string
	makePlacards  bool
	arrivalDates  []string
	campsites     []string
	packageFormat string
	printSummary  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fedcamp [input.xlsx]",
		Short: "Process a Recreation.gov camping reservation detail report",
		Long: `fedcamp normalizes a camping reservation detail report spreadsheet,
derives per-night occupancy statistics, and renders check-in placards
and a packaged export of the derived tables.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for output files")
	rootCmd.Flags().BoolVar(&makePlacards, "placards", false, "Generate check-in placards PDF")
	rootCmd.Flags().StringArrayVar(&arrivalDates, "arrival-date", nil, "Arrival date(s) for placards (YYYY-MM-DD)")
	rootCmd.Flags().StringArrayVar(&campsites, "campsite", nil, "Specific campsites to include in placards")
	rootCmd.Flags().StringVar(&packageFormat, "package", "", "Bundle table exports: zip or tar.gz")
	rootCmd.Flags().BoolVar(&printSummary, "summary", false, "Print the daily occupancy summary")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupEnvironment()
	inputPath := args[0]

	dates, err := parseArrivalDates(arrivalDates)
	if err != nil {
		return err
	}

	rep, err := fedcamp.Process(inputPath, fedcamp.DefaultOptions())
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	if printSummary {
		writeSummary(rep)
	}

	if makePlacards {
		if err := writePlacards(rep, dates); err != nil {
			return err
		}
	}

	if packageFormat != "" {
		path := filepath.Join(outputDir, "reservation_tables."+packageFormat)
		if err := export.PackageFile(export.Format(packageFormat), path, rep.Tables()); err != nil {
			return fmt.Errorf("failed to build download package: %w", err)
		}
		fmt.Println("Wrote", path)
	}

	return nil
}

func parseArrivalDates(raw []string) ([]time.Time, error) {
	var dates []time.Time
	for _, s := range raw {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid --arrival-date %q: use YYYY-MM-DD", s)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func writePlacards(rep *fedcamp.Report, dates []time.Time) error {
	records := rep.PlacardRecords(placard.Filter{
		CheckInOnly:  true,
		Campsites:    campsites,
		ArrivalDates: dates,
	})

	path := filepath.Join(outputDir, "placards.pdf")
	err := placard.BuildFile(records, placard.DefaultLayout(), path)
	if errors.Is(err, placard.ErrNoPlacards) {
		log.Warn().Msg("No placard-eligible reservations; nothing to generate")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write placards: %w", err)
	}

	fmt.Println("Wrote", path)
	return nil
}

func writeSummary(rep *fedcamp.Report) {
	if rep.Metadata.Location != "" {
		fmt.Println("Location:", rep.Metadata.Location)
	}
	if !rep.Metadata.RunDate.IsZero() {
		fmt.Println("Report run:", rep.Metadata.RunDate.Format("2006-01-02 15:04"), rep.Metadata.RunTimezone)
	}

	fmt.Printf("%-12s %-10s %6s %6s %4s %6s\n", "Date", "Day", "Sites", "Occ", "RV", "Tent")
	for _, d := range rep.DailySummaries {
		fmt.Printf("%-12s %-10s %6d %6d %4d %6d\n",
			d.Date.Format("2006-01-02"), d.Day, d.TotalSites, d.TotalOccupants, d.RVSites, d.TentSites)
	}

	for _, b := range rep.BusiestDays {
		fmt.Printf("Week %d busiest: %s (%s), weighted occupants %d\n",
			b.Week, b.Date.Format("2006-01-02"), b.Day, b.WeightedOccupants)
	}
}

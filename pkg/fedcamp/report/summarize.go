package report

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// dayAccumulator collects per-date statistics during the single grouping
// pass. Site sets count distinct sites: two overlapping reservations on one
// site count that site once.
type dayAccumulator struct {
	sites          map[string]bool
	rvSites        map[string]bool
	tentSites      map[string]bool
	totalOccupants int
	firstNight     int
	singleNight    int
	continuing     int
}

// Summarize groups occupied nights by date into one DailySummary per
// distinct date, sorted ascending. Categories with no rows on a date report
// 0 rather than being absent.
func Summarize(nights []models.OccupiedNight) []models.DailySummary {
	byDate := make(map[time.Time]*dayAccumulator)

	for _, n := range nights {
		acc := byDate[n.Date]
		if acc == nil {
			acc = &dayAccumulator{
				sites:     make(map[string]bool),
				rvSites:   make(map[string]bool),
				tentSites: make(map[string]bool),
			}
			byDate[n.Date] = acc
		}

		acc.sites[n.SiteNumber] = true
		acc.totalOccupants += n.Occupants

		switch n.Footprint {
		case models.FootprintRV:
			acc.rvSites[n.SiteNumber] = true
		case models.FootprintTent:
			acc.tentSites[n.SiteNumber] = true
		}

		switch n.Duration {
		case models.DurationFirstNight:
			acc.firstNight += n.Occupants
		case models.DurationSingleNight:
			acc.singleNight += n.Occupants
		case models.DurationContinuingNight:
			acc.continuing += n.Occupants
		}
	}

	dates := make([]time.Time, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	summaries := make([]models.DailySummary, 0, len(dates))
	for _, date := range dates {
		acc := byDate[date]
		_, week := date.ISOWeek()
		summaries = append(summaries, models.DailySummary{
			Date:                     date,
			TotalSites:               len(acc.sites),
			TotalOccupants:           acc.totalOccupants,
			RVSites:                  len(acc.rvSites),
			TentSites:                len(acc.tentSites),
			FirstNightOccupants:      acc.firstNight,
			SingleNightOccupants:     acc.singleNight,
			ContinuingNightOccupants: acc.continuing,
			Year:                     date.Year(),
			Month:                    date.Month().String(),
			Week:                     week,
			Day:                      date.Weekday().String(),
		})
	}

	log.Debug().
		Int("occupied_nights", len(nights)).
		Int("days", len(summaries)).
		Msg("Summarized occupied nights by day")

	return summaries
}

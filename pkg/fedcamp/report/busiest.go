package report

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// Weights configures the busiest-day scoring rule. First nights weigh
// heaviest because arrival days drive check-in workload.
type Weights struct {
	First      int
	Single     int
	Continuing int
}

// DefaultWeights returns the canonical weighting (3, 2, 1). An earlier
// report variant used (2, 2, 1); pass explicit Weights to reproduce it.
func DefaultWeights() Weights {
	return Weights{First: 3, Single: 2, Continuing: 1}
}

// Score computes the weighted occupant count for one daily summary row.
func (w Weights) Score(d models.DailySummary) int {
	return w.First*d.FirstNightOccupants +
		w.Single*d.SingleNightOccupants +
		w.Continuing*d.ContinuingNightOccupants
}

// BusiestDays picks, for each ISO week present, the daily summary row with
// the highest weighted occupant count. Ties keep the earlier row. The result
// is sorted ascending by week number.
func BusiestDays(days []models.DailySummary, w Weights) []models.BusiestDay {
	best := make(map[int]models.BusiestDay)

	for _, d := range days {
		score := w.Score(d)
		if current, ok := best[d.Week]; ok && score <= current.WeightedOccupants {
			continue
		}
		best[d.Week] = models.BusiestDay{
			Week:                     d.Week,
			Date:                     d.Date,
			Day:                      d.Day,
			TotalOccupants:           d.TotalOccupants,
			FirstNightOccupants:      d.FirstNightOccupants,
			SingleNightOccupants:     d.SingleNightOccupants,
			ContinuingNightOccupants: d.ContinuingNightOccupants,
			WeightedOccupants:        score,
		}
	}

	weeks := make([]int, 0, len(best))
	for week := range best {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	busiest := make([]models.BusiestDay, 0, len(weeks))
	for _, week := range weeks {
		busiest = append(busiest, best[week])
	}

	log.Debug().
		Int("weeks", len(busiest)).
		Msg("Ranked busiest day per week")

	return busiest
}

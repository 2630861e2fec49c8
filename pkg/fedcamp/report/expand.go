// Package report derives occupancy statistics from normalized reservations.
package report

import (
	"github.com/rs/zerolog/log"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/models"
)

// ExpandNights explodes each occupied reservation into one fact row per
// calendar night in [arrival, departure). Reservations with a missing date
// or a non-positive span contribute nothing; that is degenerate data, not an
// error.
func ExpandNights(reservations []models.Reservation) []models.OccupiedNight {
	var nights []models.OccupiedNight

	for _, r := range reservations {
		if !r.Occupied || r.ArrivalDate.IsZero() || r.DepartureDate.IsZero() {
			continue
		}
		total := int(r.DepartureDate.Sub(r.ArrivalDate).Hours() / 24)
		if total <= 0 {
			continue
		}

		for i := 0; i < total; i++ {
			duration := models.DurationContinuingNight
			switch {
			case total == 1:
				duration = models.DurationSingleNight
			case i == 0:
				duration = models.DurationFirstNight
			}

			nights = append(nights, models.OccupiedNight{
				Date:       r.ArrivalDate.AddDate(0, 0, i),
				SiteNumber: r.SiteNumber,
				Footprint:  r.Footprint,
				Occupants:  r.Occupants,
				Duration:   duration,
			})
		}
	}

	log.Debug().
		Int("reservations", len(reservations)).
		Int("occupied_nights", len(nights)).
		Msg("Expanded reservations into occupied nights")

	return nights
}

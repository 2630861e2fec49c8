// Package fedcamp processes Recreation.gov camping reservation detail reports.
package fedcamp

import (
	"math/rand"
	"time"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/report"
)

// Options configures pipeline behavior.
type Options struct {
	// Today anchors the check-in tag rule. If zero, the current local date
	// is used.
	Today time.Time
	// Weights overrides the busiest-day weighting. If nil,
	// report.DefaultWeights applies.
	Weights *report.Weights
	// Rand is the sampling source for the privacy gate. If nil, a
	// time-seeded source is used; inject a fixed seed for deterministic
	// tests.
	Rand *rand.Rand
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{}
}

// EffectiveToday returns the configured anchor date, truncated to midnight UTC.
func (o Options) EffectiveToday() time.Time {
	t := o.Today
	if t.IsZero() {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EffectiveWeights returns the configured or default busiest-day weights.
func (o Options) EffectiveWeights() report.Weights {
	if o.Weights != nil {
		return *o.Weights
	}
	return report.DefaultWeights()
}

// EffectiveRand returns the configured or a time-seeded sampling source.
func (o Options) EffectiveRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

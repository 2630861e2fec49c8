package ingest

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/rs/zerolog/log"
)

// ErrPrivacyValidation indicates the sampled primary occupant names are not
// obfuscated. Fatal by design: unredacted names must never reach placards or
// exports, so this gate cannot be downgraded to a warning.
var ErrPrivacyValidation = errors.New("primary occupant names do not appear obfuscated")

// piiSampleSize caps how many rows the privacy gate inspects per run.
const piiSampleSize = 10

// primaryOccupantColumn is the column the privacy gate samples.
const primaryOccupantColumn = "Primary Occupant Name"

// obfuscatedName matches the expected redacted shape "LastPrefix, F." with
// optional trailing dots on either part, e.g. "Smith, J." or "Johnson, M".
var obfuscatedName = regexp.MustCompile(`^[A-Za-z]+\.*, [A-Za-z]+\.*$`)

// ValidateNameFormat reports whether name is in the obfuscated form.
func ValidateNameFormat(name string) bool {
	return obfuscatedName.MatchString(name)
}

// CheckNames samples up to 10 values from the primary occupant name column
// and fails if any is not obfuscated. This is a heuristic gate, not an
// exhaustive scan: a bad row outside the sample can slip through, which is an
// accepted risk. The rng is injected so tests can fix which rows are drawn.
func CheckNames(h *Header, rng *rand.Rand) error {
	names := make([]string, 0, len(h.Rows))
	for _, row := range h.Rows {
		names = append(names, h.Cell(row, primaryOccupantColumn))
	}

	sampleSize := piiSampleSize
	if len(names) < sampleSize {
		sampleSize = len(names)
	}

	invalid := 0
	for _, idx := range rng.Perm(len(names))[:sampleSize] {
		if !ValidateNameFormat(names[idx]) {
			invalid++
		}
	}

	if invalid > 0 {
		// Deliberately omit the offending values: they may be raw PII.
		return fmt.Errorf("%w: %d of %d sampled names failed the check",
			ErrPrivacyValidation, invalid, sampleSize)
	}

	log.Debug().
		Int("sampled", sampleSize).
		Int("rows", len(names)).
		Msg("Primary occupant names passed obfuscation check")

	return nil
}

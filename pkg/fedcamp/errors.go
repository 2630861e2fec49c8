package fedcamp

import (
	"fmt"

	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/ingest"
	"github.com/skybuilds/fedcamp-go/pkg/fedcamp/placard"
)

// Pipeline error taxonomy, re-exported from the stage packages that raise
// them. All four ingestion errors are fatal: a run either produces the full
// table set or fails with a diagnosable reason.
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = ingest.ErrNotFound
	// ErrMalformedInput indicates the input file is not a decodable spreadsheet.
	ErrMalformedInput = ingest.ErrMalformedInput
	// ErrSchema indicates no row contains the full required-column set.
	ErrSchema = ingest.ErrSchema
	// ErrPrivacyValidation indicates sampled occupant names are not
	// obfuscated. This gate must never be bypassed or downgraded.
	ErrPrivacyValidation = ingest.ErrPrivacyValidation
	// ErrNoPlacards indicates no reservation passed the placard filters.
	ErrNoPlacards = placard.ErrNoPlacards
)

// StageError wraps an error with the pipeline stage it occurred in.
type StageError struct {
	Stage string // "load", "header", "privacy", "normalize", "placards", "package"
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}

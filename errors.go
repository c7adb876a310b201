package scaffold

import (
	"errors"

	"github.com/meigma/scaffold/faidx"
	"github.com/meigma/scaffold/index"
)

// Errors re-exported from subpackages.
var (
	// ErrMalformedConfig is returned when the index_files configuration
	// section is structurally invalid. Startup-fatal, never per-request.
	ErrMalformedConfig = index.ErrMalformedConfig

	// ErrIndexLoad is recorded when a resolved index's FASTA or .fai cannot
	// be opened at retrieval time.
	ErrIndexLoad = faidx.ErrIndexLoad

	// ErrSequenceNotFound is recorded when a scaffold name is absent from
	// the resolved index.
	ErrSequenceNotFound = faidx.ErrSequenceNotFound
)

// Sentinel errors specific to the scaffold package.
var (
	// ErrNoIndexAvailable is returned when a requested index matches no
	// local entry and delegation produced no successful outcome.
	ErrNoIndexAvailable = errors.New("scaffold: no index available")

	// ErrInvalidRequest is returned when a request is missing a required
	// field or carries a negative line width.
	ErrInvalidRequest = errors.New("scaffold: invalid request")
)

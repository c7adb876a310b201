package scaffold

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultLineWidth is the FASTA body line width applied when a request does
// not specify one.
const DefaultLineWidth = 60

// Request is one scaffold retrieval invocation.
type Request struct {
	// Index identifies the index the caller selected: a configured local
	// name, a FASTA path, or a provider-qualified name taken from a peer's
	// advertisement.
	Index string `json:"index"`

	// Scaffold is the name of the sequence to retrieve. Required.
	Scaffold string `json:"scaffold"`

	// LineWidth is the FASTA body line width. Nil selects DefaultLineWidth;
	// zero emits the whole sequence on a single line.
	LineWidth *int `json:"line_width,omitempty"`
}

func (r Request) lineWidth() int {
	if r.LineWidth == nil {
		return DefaultLineWidth
	}
	return *r.LineWidth
}

func (r Request) validate() error {
	if r.Scaffold == "" {
		return fmt.Errorf("%w: missing scaffold name", ErrInvalidRequest)
	}
	if r.Index == "" {
		return fmt.Errorf("%w: missing index identifier", ErrInvalidRequest)
	}
	if r.LineWidth != nil && *r.LineWidth < 0 {
		return fmt.Errorf("%w: negative line width %d", ErrInvalidRequest, *r.LineWidth)
	}
	return nil
}

// Status describes the lifecycle state of an Outcome.
type Status string

const (
	StatusStarted   Status = "started"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Outcome is the job record produced for one retrieval attempt. A request
// yields exactly one outcome when served locally and one or more merged
// peer outcomes when delegated.
type Outcome struct {
	// JobID uniquely identifies the retrieval attempt.
	JobID uuid.UUID `json:"job_id"`

	// Scaffold is the requested sequence name the outcome is tagged with.
	Scaffold string `json:"scaffold"`

	// Index is the local name of the index that served the attempt. For a
	// failed delegation it holds the caller's requested identifier.
	Index string `json:"index,omitempty"`

	// Provider names the instance that produced the outcome.
	Provider string `json:"provider,omitempty"`

	// Status is the terminal state of the attempt.
	Status Status `json:"status"`

	// Result holds the formatted FASTA artifact on success.
	Result []byte `json:"result,omitempty"`

	// Error carries the human-readable failure message on failure.
	Error string `json:"error,omitempty"`
}

// Succeeded reports whether the outcome reached StatusSucceeded.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}

// fail marks the outcome failed with the error's message and returns it.
func (o Outcome) fail(err error) Outcome {
	o.Status = StatusFailed
	o.Error = err.Error()
	return o
}

package scaffold

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// delegate fans the request out to every paired peer, each invoked exactly
// once, and merges their outcomes in pairing order. A peer-level error is
// recorded as a failed outcome and never aborts the remaining peers.
//
// The aggregate succeeds when at least one peer outcome succeeded; with no
// peers configured, or none producing a success, the request reports
// ErrNoIndexAvailable.
func (s *Service) delegate(ctx context.Context, req Request) ([]Outcome, error) {
	if len(s.peers) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoIndexAvailable, req.Index)
	}

	results := make([][]Outcome, len(s.peers))

	eg, ctx := errgroup.WithContext(ctx)
	if s.peerLimit > 0 {
		eg.SetLimit(s.peerLimit)
	}
	for i, p := range s.peers {
		eg.Go(func() error {
			outcomes, err := p.Run(ctx, req)
			if err != nil {
				s.log().Warn("peer delegation failed",
					"peer", p.Name(), "index", req.Index, "error", err)
				results[i] = []Outcome{peerFailure(p, req, err)}
				return nil
			}
			results[i] = outcomes
			return nil
		})
	}
	// Workers record their own failures, so Wait never observes an error.
	_ = eg.Wait()

	var merged []Outcome
	succeeded := false
	for _, outcomes := range results {
		for _, o := range outcomes {
			succeeded = succeeded || o.Succeeded()
		}
		merged = append(merged, outcomes...)
	}

	if !succeeded {
		return merged, fmt.Errorf("%w: %q", ErrNoIndexAvailable, req.Index)
	}
	s.log().Info("delegated request served by peers",
		"index", req.Index, "scaffold", req.Scaffold, "outcomes", len(merged))
	return merged, nil
}

// peerFailure records a peer-level error as a failed outcome so partial
// failures stay visible in the aggregate.
func peerFailure(p Peer, req Request, err error) Outcome {
	return Outcome{
		JobID:    uuid.New(),
		Scaffold: req.Scaffold,
		Index:    req.Index,
		Provider: p.Name(),
		Status:   StatusFailed,
		Error:    err.Error(),
	}
}

// Package scaffold exposes named genomic reference sequences stored in
// indexed FASTA collections.
//
// A Service resolves a caller-supplied index identifier against its local
// registry; on a hit it fetches the named scaffold through a .fai index and
// re-encodes it as line-wrapped FASTA text, and on a miss it delegates the
// request to paired peer instances and aggregates their outcomes.
package scaffold

import (
	"context"
	"log/slog"

	"github.com/meigma/scaffold/index"
)

// Service identity, used by hosts when listing available services.
const (
	ServiceName        = "scaffold"
	ServiceDescription = "Efficient access to named reference sequences within configured FASTA collections."
)

// Service is one scaffold retrieval instance.
//
// The index registry is read-only after construction, so a Service is safe
// for concurrent use: each request owns its own FASTA handle and outcome
// set, and no state is shared between in-flight requests.
type Service struct {
	registry  *index.Registry
	provider  string
	peers     []Peer
	qualifier Qualifier
	peerLimit int
	logger    *slog.Logger
}

// Peer is a paired service instance reachable for delegated requests.
type Peer interface {
	// Name identifies the peer in logs and recorded outcomes.
	Name() string

	// Run executes the same request against the peer and returns the
	// outcomes it produced.
	Run(ctx context.Context, req Request) ([]Outcome, error)
}

// New creates a Service over an already-loaded index registry.
// A nil registry is treated as empty, in which case every request delegates.
func New(registry *index.Registry, opts ...Option) (*Service, error) {
	if registry == nil {
		registry = &index.Registry{}
	}
	s := &Service{
		registry:  registry,
		qualifier: DefaultQualifier,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (s *Service) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}

// Registry returns the service's index registry.
func (s *Service) Registry() *index.Registry {
	return s.registry
}

// Provider returns the configured provider name, empty when unset.
func (s *Service) Provider() string {
	return s.provider
}

package scaffold

import (
	"errors"
	"log/slog"
)

// Option configures a Service.
type Option func(*Service) error

// WithProvider sets the provider name this instance belongs to. The name
// qualifies advertised index names when peers are paired, and lets the
// instance recognize its own qualified identifiers on inbound requests.
func WithProvider(name string) Option {
	return func(s *Service) error {
		s.provider = name
		return nil
	}
}

// WithPeers adds paired service instances consulted when a requested index
// matches no local entry. Nil peers are ignored.
func WithPeers(peers ...Peer) Option {
	return func(s *Service) error {
		for _, p := range peers {
			if p != nil {
				s.peers = append(s.peers, p)
			}
		}
		return nil
	}
}

// WithQualifier replaces the provider qualification scheme. The scheme is a
// convention shared across paired instances, so all peers of a deployment
// must agree on it.
func WithQualifier(q Qualifier) Option {
	return func(s *Service) error {
		if q == nil {
			return errors.New("scaffold: qualifier must not be nil")
		}
		s.qualifier = q
		return nil
	}
}

// WithPeerLimit caps how many peers are invoked concurrently during
// delegation. Zero or negative means no limit.
func WithPeerLimit(n int) Option {
	return func(s *Service) error {
		s.peerLimit = n
		return nil
	}
}

// WithLogger sets a logger for the service.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

package scaffold

import "context"

// Run executes one scaffold request: resolve the requested index locally,
// retrieve on a hit, delegate to paired peers on a miss.
//
// The returned slice holds every outcome the request produced, failed ones
// included: one outcome for a local retrieval, the merged peer outcomes for
// a delegated one. The error return is reserved for invalid requests and
// for ErrNoIndexAvailable; a retrieval that fails is reported through its
// outcome, never as an error, so one request cannot disturb another.
func (s *Service) Run(ctx context.Context, req Request) ([]Outcome, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	entry, ok := s.registry.Resolve(req.Index)
	if !ok && s.provider != "" {
		// Callers that picked the index from a shared advertisement send a
		// qualified identifier; recognize our own before delegating.
		if provider, name, split := s.qualifier.Split(req.Index); split && provider == s.provider {
			entry, ok = s.registry.Resolve(name)
		}
	}

	if !ok {
		s.log().Debug("no local index, delegating",
			"index", req.Index, "scaffold", req.Scaffold, "peers", len(s.peers))
		return s.delegate(ctx, req)
	}

	return []Outcome{s.retrieve(entry, req)}, nil
}

package scaffold

import (
	"github.com/google/uuid"

	"github.com/meigma/scaffold/faidx"
	"github.com/meigma/scaffold/index"
)

// retrieve fetches one scaffold from a resolved local entry and formats it
// as FASTA text. The index handle is scoped to this call and released on
// every exit path.
func (s *Service) retrieve(entry index.Entry, req Request) Outcome {
	outcome := Outcome{
		JobID:    uuid.New(),
		Scaffold: req.Scaffold,
		Index:    entry.LocalName,
		Provider: s.provider,
		Status:   StatusStarted,
	}

	s.log().Debug("retrieving scaffold",
		"scaffold", req.Scaffold, "index", entry.LocalName, "fasta", entry.FastaPath)

	f, err := faidx.Open(entry.FastaPath)
	if err != nil {
		s.log().Error("index load failed", "fasta", entry.FastaPath, "error", err)
		return outcome.fail(err)
	}
	defer f.Close()

	seq, err := f.Fetch(req.Scaffold)
	if err != nil {
		s.log().Warn("scaffold fetch failed",
			"scaffold", req.Scaffold, "fasta", entry.FastaPath, "error", err)
		return outcome.fail(err)
	}

	outcome.Result = Format(req.Scaffold, seq, req.lineWidth())
	outcome.Status = StatusSucceeded
	s.log().Info("scaffold retrieved",
		"scaffold", req.Scaffold, "index", entry.LocalName, "length", len(seq))
	return outcome
}

// Package index holds the registry of locally configured sequence indexes
// and the resolution policy mapping caller-supplied identifiers onto them.
package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Configuration keys for one index record. The names are the wire contract
// with hosting configurations and predate this implementation.
const (
	LocalNameKey = "Blast database"
	FastaPathKey = "Fasta"
)

// Entry is one configured, locally accessible sequence index.
type Entry struct {
	// LocalName is the bare identifier the index is known by in local
	// configuration, typically a database name.
	LocalName string `json:"Blast database"`

	// FastaPath locates the indexed FASTA file backing the entry.
	// Validity is checked at use, not at load.
	FastaPath string `json:"Fasta"`
}

// Registry is the immutable, ordered table of configured entries.
//
// Order is configuration order and doubles as the display order presented
// to callers. Duplicates are preserved; Resolve returns the first match.
// A Registry is read-only after Load and safe for concurrent use.
type Registry struct {
	entries []Entry
}

// Load builds a Registry from the raw index_files configuration section.
//
// The section may be a JSON array of records or a single record object.
// Absent or empty input yields a valid empty registry, in which case every
// request delegates to paired services. Anything else is ErrMalformedConfig,
// which is fatal for service startup.
func Load(data []byte) (*Registry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &Registry{}, nil
	}

	var entries []Entry
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
	case '{':
		var e Entry
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
		}
		entries = []Entry{e}
	default:
		return nil, fmt.Errorf("%w: index_files must be a record or an array of records", ErrMalformedConfig)
	}

	return &Registry{entries: entries}, nil
}

// FromEntries builds a Registry directly from already-parsed entries.
func FromEntries(entries []Entry) *Registry {
	r := &Registry{entries: make([]Entry, len(entries))}
	copy(r.entries, entries)
	return r
}

// Count returns the number of configured entries.
func (r *Registry) Count() int {
	return len(r.entries)
}

// EntryAt returns the entry at position i in configuration order.
func (r *Registry) EntryAt(i int) Entry {
	return r.entries[i]
}

// Entries returns an iterator over all entries in configuration order.
func (r *Registry) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range r.entries {
			if !yield(e) {
				return
			}
		}
	}
}

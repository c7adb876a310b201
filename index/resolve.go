package index

// Resolve maps a caller-supplied identifier onto a configured entry.
//
// Entries are scanned in configuration order. For each entry the FASTA path
// is compared before the local name, and empty fields never match. The first
// matching entry wins.
//
// A miss is not an error: it is the routing signal that the request should
// be delegated to paired services.
func (r *Registry) Resolve(requested string) (Entry, bool) {
	if requested == "" {
		return Entry{}, false
	}
	for _, e := range r.entries {
		if e.FastaPath != "" && e.FastaPath == requested {
			return e, true
		}
		if e.LocalName != "" && e.LocalName == requested {
			return e, true
		}
	}
	return Entry{}, false
}

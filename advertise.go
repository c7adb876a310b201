package scaffold

// IndexOption is one selectable index presented to callers.
type IndexOption struct {
	// Label is the display name: the provider-qualified local name when
	// this instance has paired peers, the bare local name otherwise.
	Label string `json:"label"`

	// Value is the identifier a caller sends back in Request.Index.
	Value string `json:"value"`
}

// Advertise lists the configured indexes in registry order for selection
// UIs. Qualification distinguishes same-named indexes hosted by different
// providers, so it only applies when this instance actually has peers.
// Advertise never mutates the registry.
func (s *Service) Advertise() []IndexOption {
	qualify := len(s.peers) > 0 && s.provider != ""

	opts := make([]IndexOption, 0, s.registry.Count())
	for e := range s.registry.Entries() {
		label := e.LocalName
		if qualify {
			label = s.qualifier.Qualify(s.provider, e.LocalName)
		}
		opts = append(opts, IndexOption{Label: label, Value: e.FastaPath})
	}
	return opts
}

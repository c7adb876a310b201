package scaffold

import "strings"

// Qualifier combines a provider name with a local index name into the
// qualified identifier advertised to callers, and splits such identifiers
// back apart so an instance can recognize its own.
//
// The concrete scheme is a convention shared across paired instances, not a
// property of this package; any deterministic, reversible combination
// satisfies it.
type Qualifier interface {
	// Qualify returns the qualified identifier for a provider and a local
	// index name.
	Qualify(provider, name string) string

	// Split breaks a qualified identifier into provider and local name.
	// ok is false when the identifier is not qualified under this scheme.
	Split(qualified string) (provider, name string, ok bool)
}

// SeparatorQualifier joins provider and name around a fixed separator.
// Provider names must not contain the separator themselves.
type SeparatorQualifier struct {
	Sep string
}

// Qualify returns provider+Sep+name, or the bare name when provider is empty.
func (q SeparatorQualifier) Qualify(provider, name string) string {
	if provider == "" {
		return name
	}
	return provider + q.Sep + name
}

// Split cuts at the first separator occurrence.
func (q SeparatorQualifier) Split(qualified string) (string, string, bool) {
	provider, name, ok := strings.Cut(qualified, q.Sep)
	if !ok || provider == "" || name == "" {
		return "", "", false
	}
	return provider, name, true
}

// DefaultQualifier is the scheme used when no custom Qualifier is
// configured: "provider::name".
var DefaultQualifier Qualifier = SeparatorQualifier{Sep: "::"}

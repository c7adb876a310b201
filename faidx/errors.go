package faidx

import "errors"

// Sentinel errors for indexed FASTA access.
var (
	// ErrIndexLoad is returned when an indexed FASTA cannot be opened: the
	// sequence file is missing or unreadable, or its .fai index cannot be
	// loaded or built.
	ErrIndexLoad = errors.New("faidx: cannot load index")

	// ErrSequenceNotFound is returned when a named sequence is absent from
	// the index.
	ErrSequenceNotFound = errors.New("faidx: sequence not found")

	// ErrCorruptIndex is returned when a .fai file cannot be parsed or
	// disagrees with the sequence data it describes.
	ErrCorruptIndex = errors.New("faidx: corrupt index")

	// ErrMalformedFasta is returned when a FASTA file cannot be indexed,
	// typically because a sequence has ragged line lengths that make random
	// access unsound.
	ErrMalformedFasta = errors.New("faidx: malformed fasta")
)

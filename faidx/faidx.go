// Package faidx provides random access to named sequences in FASTA files
// through .fai index files.
//
// A File is a scoped, single-request resource: callers open it, fetch the
// sequences they need and close it again. Handles are never shared or
// cached across requests.
package faidx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// File is an open indexed FASTA.
type File struct {
	path   string
	idx    *Index
	src    io.ReaderAt
	closer io.Closer
}

// Open opens the indexed FASTA at path.
//
// path is either a local filesystem path or an http(s) URL of a remotely
// hosted reference FASTA. The .fai index is expected alongside the sequence
// file at path+".fai"; for a local FASTA with no index, one is built on the
// fly and written back alongside on a best-effort basis.
//
// Any failure to open the sequence data or its index reports ErrIndexLoad.
func Open(path string) (*File, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openRemote(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIndexLoad, path, err)
	}
	idx, err := loadOrBuildIndex(path, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &File{path: path, idx: idx, src: f, closer: f}, nil
}

// loadOrBuildIndex reads path+".fai", building and persisting it when absent.
func loadOrBuildIndex(path string, f *os.File) (*Index, error) {
	faiPath := path + ".fai"
	data, err := os.ReadFile(faiPath)
	switch {
	case err == nil:
		idx, perr := ParseIndex(bytes.NewReader(data))
		if perr != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrIndexLoad, faiPath, perr)
		}
		return idx, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s: %v", ErrIndexLoad, faiPath, err)
	}

	idx, err := BuildIndex(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIndexLoad, path, err)
	}

	// Persist so later opens skip the scan. Failure to write is not fatal;
	// the in-memory index is complete.
	var buf bytes.Buffer
	if werr := WriteIndex(&buf, idx); werr == nil {
		_ = os.WriteFile(faiPath, buf.Bytes(), 0o644)
	}
	return idx, nil
}

// Index returns the parsed .fai index.
func (f *File) Index() *Index {
	return f.idx
}

// Fetch returns the full sequence bytes for the named scaffold, newline
// characters stripped.
func (f *File) Fetch(name string) ([]byte, error) {
	rec, ok := f.idx.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrSequenceNotFound, name, f.path)
	}
	if rec.Length == 0 {
		return []byte{}, nil
	}

	// Byte offset of the base after the last one, derived from the record's
	// uniform line geometry.
	last := rec.Length - 1
	end := rec.Offset +
		int64(last/rec.BasesPerLine)*int64(rec.BytesPerLine) +
		int64(last%rec.BasesPerLine) + 1

	raw := make([]byte, end-rec.Offset)
	n, err := f.src.ReadAt(raw, rec.Offset)
	if n < len(raw) {
		if err == nil || err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %q in %s: %v", ErrCorruptIndex, name, f.path, err)
	}

	seq := make([]byte, 0, rec.Length)
	for _, b := range raw {
		if b == '\n' || b == '\r' {
			continue
		}
		seq = append(seq, b)
	}
	if len(seq) != rec.Length {
		return nil, fmt.Errorf("%w: %q in %s: expected %d bases, read %d",
			ErrCorruptIndex, name, f.path, rec.Length, len(seq))
	}
	return seq, nil
}

// Close releases the underlying sequence data handle. It is safe to call on
// every exit path; remote sources hold no resources and close to nil.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

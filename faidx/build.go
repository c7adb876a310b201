package faidx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Build scans the FASTA file at path and produces its .fai index.
func Build(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return BuildIndex(f)
}

// BuildIndex scans FASTA data and produces its index.
//
// Random access needs a uniform line geometry, so every sequence line of a
// record must have the same length except the last one; anything else is
// ErrMalformedFasta. Duplicate sequence names are rejected for the same
// reason duplicate keys in the .fai would be ambiguous.
func BuildIndex(r io.Reader) (*Index, error) {
	idx := newIndex()
	br := bufio.NewReaderSize(r, 64*1024)

	var (
		cur       *Record
		offset    int64
		shortSeen bool // a short or blank line ended cur's uniform block
	)

	flush := func() error {
		if cur == nil {
			return nil
		}
		if _, dup := idx.records[cur.Name]; dup {
			return fmt.Errorf("%w: duplicate sequence name %q", ErrMalformedFasta, cur.Name)
		}
		idx.add(*cur)
		cur = nil
		return nil
	}

	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			n := len(line)
			body := bytes.TrimRight(line, "\r\n")

			switch {
			case len(body) > 0 && body[0] == '>':
				if err := flush(); err != nil {
					return nil, err
				}
				fields := bytes.Fields(body[1:])
				if len(fields) == 0 {
					return nil, fmt.Errorf("%w: header without a sequence name", ErrMalformedFasta)
				}
				cur = &Record{Name: string(fields[0]), Offset: offset + int64(n)}
				shortSeen = false

			case cur != nil && len(body) > 0:
				if shortSeen {
					return nil, fmt.Errorf("%w: ragged sequence lines in %q", ErrMalformedFasta, cur.Name)
				}
				switch {
				case cur.BasesPerLine == 0:
					cur.BasesPerLine = len(body)
					cur.BytesPerLine = n
				case len(body) > cur.BasesPerLine:
					return nil, fmt.Errorf("%w: ragged sequence lines in %q", ErrMalformedFasta, cur.Name)
				case len(body) < cur.BasesPerLine || n != cur.BytesPerLine:
					// Shorter (or differently terminated) line: legal only as
					// the final line of the record.
					shortSeen = true
				}
				cur.Length += len(body)

			case cur != nil:
				// Blank line inside a record ends its uniform block.
				shortSeen = true

			case len(body) > 0:
				return nil, fmt.Errorf("%w: sequence data before first header", ErrMalformedFasta)
			}

			offset += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return idx, nil
}

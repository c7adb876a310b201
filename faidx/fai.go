package faidx

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Record describes one sequence in a .fai index: its length in bases, the
// byte offset of its first base, and the uniform line geometry of its body.
type Record struct {
	Name         string
	Length       int
	Offset       int64
	BasesPerLine int
	BytesPerLine int
}

// Index is the parsed .fai index of a FASTA file. It preserves the order
// sequences appear in, and resolves duplicate names to the first occurrence.
type Index struct {
	records map[string]Record
	order   []string
}

func newIndex() *Index {
	return &Index{records: make(map[string]Record)}
}

func (idx *Index) add(rec Record) {
	if _, dup := idx.records[rec.Name]; dup {
		return
	}
	idx.records[rec.Name] = rec
	idx.order = append(idx.order, rec.Name)
}

// Lookup returns the record for the named sequence.
func (idx *Index) Lookup(name string) (Record, bool) {
	rec, ok := idx.records[name]
	return rec, ok
}

// Len returns the number of indexed sequences.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Names returns the sequence names in file order.
func (idx *Index) Names() []string {
	names := make([]string, len(idx.order))
	copy(names, idx.order)
	return names
}

// ParseIndex reads a .fai index: one tab-separated line per sequence with
// name, length, offset, bases per line and bytes per line.
func ParseIndex(r io.Reader) (*Index, error) {
	idx := newIndex()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 5 {
			return nil, fmt.Errorf("%w: short record %q", ErrCorruptIndex, line)
		}
		rec := Record{Name: fields[0]}
		var err error
		if rec.Length, err = strconv.Atoi(fields[1]); err != nil {
			return nil, fmt.Errorf("%w: length of %q: %v", ErrCorruptIndex, rec.Name, err)
		}
		if rec.Offset, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return nil, fmt.Errorf("%w: offset of %q: %v", ErrCorruptIndex, rec.Name, err)
		}
		if rec.BasesPerLine, err = strconv.Atoi(fields[3]); err != nil {
			return nil, fmt.Errorf("%w: line bases of %q: %v", ErrCorruptIndex, rec.Name, err)
		}
		if rec.BytesPerLine, err = strconv.Atoi(fields[4]); err != nil {
			return nil, fmt.Errorf("%w: line bytes of %q: %v", ErrCorruptIndex, rec.Name, err)
		}
		if rec.Length < 0 || rec.Offset < 0 || rec.BasesPerLine < 0 || rec.BytesPerLine < rec.BasesPerLine {
			return nil, fmt.Errorf("%w: inconsistent record for %q", ErrCorruptIndex, rec.Name)
		}
		if rec.Length > 0 && rec.BasesPerLine == 0 {
			return nil, fmt.Errorf("%w: zero line width for non-empty %q", ErrCorruptIndex, rec.Name)
		}
		idx.add(rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, err)
	}
	return idx, nil
}

// WriteIndex emits the index as .fai text in file order.
func WriteIndex(w io.Writer, idx *Index) error {
	for _, name := range idx.order {
		rec := idx.records[name]
		_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			rec.Name, rec.Length, rec.Offset, rec.BasesPerLine, rec.BytesPerLine)
		if err != nil {
			return err
		}
	}
	return nil
}

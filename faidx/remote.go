package faidx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// maxRemoteIndexSize bounds how much .fai data is read from a remote host.
const maxRemoteIndexSize = 64 << 20

// openRemote opens a remotely hosted indexed FASTA. The .fai index must
// already exist alongside the sequence file; nothing is built remotely.
func openRemote(url string) (*File, error) {
	src, err := NewHTTPSource(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIndexLoad, url, err)
	}

	data, err := fetchRemoteIndex(url + ".fai")
	if err != nil {
		return nil, fmt.Errorf("%w: %s.fai: %v", ErrIndexLoad, url, err)
	}
	idx, err := ParseIndex(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s.fai: %v", ErrIndexLoad, url, err)
	}

	return &File{path: url, idx: idx, src: src}, nil
}

func fetchRemoteIndex(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed: %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteIndexSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxRemoteIndexSize {
		return nil, fmt.Errorf("index exceeds %d bytes", maxRemoteIndexSize)
	}
	return data, nil
}

package faidx

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rangeServer(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "data", time.Time{}, bytes.NewReader(data))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestHTTPSourceReadAt(t *testing.T) {
	t.Parallel()

	data := []byte("ACGTACGTACGTA")
	server := rangeServer(t, data)

	src, err := NewHTTPSource(server.URL)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), src.Size())

	buf := make([]byte, 4)
	n, err := src.ReadAt(buf, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "ACGT", string(buf))
}

func TestHTTPSourceReadAtEOF(t *testing.T) {
	t.Parallel()

	data := []byte("ACGTACGT")
	server := rangeServer(t, data)

	src, err := NewHTTPSource(server.URL)
	require.NoError(t, err)

	buf := make([]byte, 8)
	n, err := src.ReadAt(buf, 5)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "CGT", string(buf[:n]))

	_, err = src.ReadAt(buf, int64(len(data)))
	assert.Equal(t, io.EOF, err)
}

func TestHTTPSourceRangeUnsupported(t *testing.T) {
	t.Parallel()

	data := []byte("no ranges here")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		_, _ = w.Write(data)
	}))
	t.Cleanup(server.Close)

	_, err := NewHTTPSource(server.URL)
	assert.Error(t, err)
}

func TestHTTPSourceServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, err := NewHTTPSource(server.URL)
	assert.Error(t, err)
}

package faidx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFasta writes the shared test FASTA into a temp dir and returns its path.
func writeFasta(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ref.fa")
	require.NoError(t, os.WriteFile(path, []byte(testFasta), 0o644))
	return path
}

func TestOpenBuildsMissingIndex(t *testing.T) {
	t.Parallel()

	path := writeFasta(t)

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, 4, f.Index().Len())

	// The built index is persisted alongside the FASTA.
	_, err = os.Stat(path + ".fai")
	assert.NoError(t, err)
}

func TestOpenUsesExistingIndex(t *testing.T) {
	t.Parallel()

	path := writeFasta(t)

	// A pre-existing .fai wins over a rebuild, even a partial one.
	fai := "scaffoldA\t13\t33\t10\t11\n"
	require.NoError(t, os.WriteFile(path+".fai", []byte(fai), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, 1, f.Index().Len())

	seq, err := f.Fetch("scaffoldA")
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTACGTA", string(seq))
}

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope.fa"))
	assert.ErrorIs(t, err, ErrIndexLoad)
}

func TestOpenCorruptIndexFile(t *testing.T) {
	t.Parallel()

	path := writeFasta(t)
	require.NoError(t, os.WriteFile(path+".fai", []byte("not\ta\tfai\n"), 0o644))

	_, err := Open(path)
	assert.ErrorIs(t, err, ErrIndexLoad)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	f, err := Open(writeFasta(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	t.Run("multi-line scaffold", func(t *testing.T) {
		seq, err := f.Fetch("scaffoldA")
		require.NoError(t, err)
		assert.Equal(t, "ACGTACGTACGTA", string(seq))
	})

	t.Run("single-line scaffold", func(t *testing.T) {
		seq, err := f.Fetch("scaffoldB")
		require.NoError(t, err)
		assert.Equal(t, "ACGT", string(seq))
	})

	t.Run("exact multiple of line width", func(t *testing.T) {
		seq, err := f.Fetch("scaffoldC")
		require.NoError(t, err)
		assert.Equal(t, "AAAAAAAAAACCCCCCCCCC", string(seq))
	})

	t.Run("empty scaffold", func(t *testing.T) {
		seq, err := f.Fetch("empty")
		require.NoError(t, err)
		assert.Empty(t, seq)
	})

	t.Run("unknown scaffold", func(t *testing.T) {
		_, err := f.Fetch("scaffoldZ")
		assert.ErrorIs(t, err, ErrSequenceNotFound)
	})
}

func TestFetchStaleIndex(t *testing.T) {
	t.Parallel()

	path := writeFasta(t)

	// Index claims more bases than the file holds.
	fai := "scaffoldA\t4000\t33\t10\t11\n"
	require.NoError(t, os.WriteFile(path+".fai", []byte(fai), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	_, err = f.Fetch("scaffoldA")
	assert.ErrorIs(t, err, ErrCorruptIndex)
}

func TestCloseIdempotentOnRemote(t *testing.T) {
	t.Parallel()

	f := &File{}
	assert.NoError(t, f.Close())
}

func TestOpenRemote(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "ref.fa")
	require.NoError(t, os.WriteFile(path, []byte(testFasta), 0o644))

	// Remote opens never build; stage the index up front.
	idx, err := Build(path)
	require.NoError(t, err)
	faiFile, err := os.Create(path + ".fai")
	require.NoError(t, err)
	require.NoError(t, WriteIndex(faiFile, idx))
	require.NoError(t, faiFile.Close())

	server := httptest.NewServer(http.FileServer(http.Dir(dir)))
	t.Cleanup(server.Close)

	f, err := Open(server.URL + "/ref.fa")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	seq, err := f.Fetch("scaffoldA")
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGTACGTA", string(seq))

	seq, err = f.Fetch("scaffoldC")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAAAACCCCCCCCCC", string(seq))
}

func TestOpenRemoteMissingIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ref.fa"), []byte(testFasta), 0o644))

	server := httptest.NewServer(http.FileServer(http.Dir(dir)))
	t.Cleanup(server.Close)

	_, err := Open(server.URL + "/ref.fa")
	assert.ErrorIs(t, err, ErrIndexLoad)
}

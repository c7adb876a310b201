package scaffold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/meigma/scaffold"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("wraps at width", func(t *testing.T) {
		t.Parallel()
		got := scaffold.Format("scaffoldA", []byte("ACGTACGTACGTA"), 10)
		assert.Equal(t, ">scaffoldA\nACGTACGTAC\nGTA\n", string(got))
	})

	t.Run("width zero emits single unterminated line", func(t *testing.T) {
		t.Parallel()
		got := scaffold.Format("s", []byte("ACGTACGT"), 0)
		assert.Equal(t, ">s\nACGTACGT", string(got))
	})

	t.Run("negative width behaves like zero", func(t *testing.T) {
		t.Parallel()
		got := scaffold.Format("s", []byte("ACGT"), -5)
		assert.Equal(t, ">s\nACGT", string(got))
	})

	t.Run("length an exact multiple of width", func(t *testing.T) {
		t.Parallel()
		got := scaffold.Format("s", []byte("ACGTACGT"), 4)
		assert.Equal(t, ">s\nACGT\nACGT\n", string(got))
	})

	t.Run("length below width", func(t *testing.T) {
		t.Parallel()
		got := scaffold.Format("s", []byte("ACG"), 10)
		assert.Equal(t, ">s\nACG\n", string(got))
	})

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, ">s\n", string(scaffold.Format("s", nil, 10)))
		assert.Equal(t, ">s\n", string(scaffold.Format("s", nil, 0)))
	})
}

// TestFormatRoundTrip checks the wrap invariants for arbitrary sequences:
// ceil(L/w) body lines, each newline-terminated and at most w long, whose
// concatenation reproduces the input exactly.
func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.SliceOfN(rapid.ByteRange('A', 'Z'), 0, 500).Draw(t, "seq")
		width := rapid.IntRange(1, 80).Draw(t, "width")

		out := string(scaffold.Format("hdr", seq, width))

		require.True(t, strings.HasPrefix(out, ">hdr\n"))
		body := out[len(">hdr\n"):]
		if len(seq) == 0 {
			require.Empty(t, body)
			return
		}
		require.True(t, strings.HasSuffix(body, "\n"), "wrapped body must end with newline")

		lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
		wantBlocks := (len(seq) + width - 1) / width
		require.Len(t, lines, wantBlocks)

		for i, line := range lines {
			if i < len(lines)-1 {
				require.Len(t, line, width)
			} else {
				require.LessOrEqual(t, len(line), width)
				require.NotEmpty(t, line)
			}
		}
		require.Equal(t, string(seq), strings.Join(lines, ""))
	})
}

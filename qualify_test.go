package scaffold_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/scaffold"
)

func TestSeparatorQualifier(t *testing.T) {
	t.Parallel()

	q := scaffold.SeparatorQualifier{Sep: "::"}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		qualified := q.Qualify("earlham", "chr1db")
		assert.Equal(t, "earlham::chr1db", qualified)

		provider, name, ok := q.Split(qualified)
		require.True(t, ok)
		assert.Equal(t, "earlham", provider)
		assert.Equal(t, "chr1db", name)
	})

	t.Run("empty provider yields bare name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "chr1db", q.Qualify("", "chr1db"))
	})

	t.Run("unqualified identifiers do not split", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{"chr1db", "::chr1db", "earlham::", ""} {
			_, _, ok := q.Split(id)
			assert.False(t, ok, "id %q", id)
		}
	})

	t.Run("splits at first separator", func(t *testing.T) {
		t.Parallel()
		provider, name, ok := q.Split("a::b::c")
		require.True(t, ok)
		assert.Equal(t, "a", provider)
		assert.Equal(t, "b::c", name)
	})
}

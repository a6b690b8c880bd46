package idx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
	require.True(t, idx.Valid(id.String()))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "   ", "not-a-ulid", "65f1c2a9e4b0a1b2c3d4e5f6"} {
		_, err := idx.Parse(s)
		require.ErrorIs(t, err, idx.ErrInvalid, s)
		require.False(t, idx.Valid(s))
	}
}

func TestOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	require.Equal(t, -1, idx.Compare(a, b))
	require.Equal(t, 1, idx.Compare(b, a))
	require.Equal(t, 0, idx.Compare(a, a))
}

func TestMonotonicWithinMillisecond(t *testing.T) {
	now := time.Now().UTC()
	prev := idx.NewAt(now)
	for range 100 {
		next := idx.NewAt(now)
		require.Equal(t, 1, idx.Compare(next, prev))
		prev = next
	}
}

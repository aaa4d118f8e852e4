package ring_test

import (
	"testing"

	"github.com/maloleroy/fhe-bpce/ring"
	"github.com/stretchr/testify/require"
)

func TestUniformRange(t *testing.T) {
	u := ring.Uniform{Start: -5, End: 5}
	vals, err := u.SampleN(1000)
	require.NoError(t, err)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, int64(-5))
		require.Less(t, v, int64(5))
	}
}

func TestTernaryRange(t *testing.T) {
	tern := ring.Ternary{}
	vals, err := tern.SampleN(500)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for _, v := range vals {
		require.GreaterOrEqual(t, v, int64(-1))
		require.LessOrEqual(t, v, int64(1))
		seen[v] = true
	}
	require.True(t, len(seen) >= 2, "expected to see at least two distinct ternary values across 500 draws")
}

func TestTruncatedGaussianBounds(t *testing.T) {
	tc := ring.TC128()
	vals, err := tc.SampleN(2000)
	require.NoError(t, err)
	for _, v := range vals {
		require.GreaterOrEqual(t, float64(v), tc.Lo)
		require.LessOrEqual(t, float64(v), tc.Hi)
	}
}

func TestRingRandomProducesLengthN(t *testing.T) {
	r, err := ring.NewRing(32, 1_000_003)
	require.NoError(t, err)

	p, err := r.Random(ring.Uniform{Start: 0, End: int64(r.P)})
	require.NoError(t, err)
	require.Len(t, p, r.N)
	for _, c := range p {
		require.Less(t, c, r.P)
	}
}

package ring_test

import (
	"testing"

	"github.com/maloleroy/fhe-bpce/ring"
	"github.com/stretchr/testify/require"
)

func TestNewRingInvalidDegree(t *testing.T) {
	_, err := ring.NewRing(7, 101)
	require.Error(t, err)
}

func TestNewRingInvalidModulus(t *testing.T) {
	_, err := ring.NewRing(4, 8)
	require.Error(t, err, "8 is not prime")
}

// TestNegacyclicFold reproduces spec.md §8 scenario 3: N=4, p=100000007,
// input [4,2,0,5,3] folds to [1,2,0,5] (index 4 -> floor(4/4)=1 -> sign
// negative -> 4-3=1 at position 0).
func TestNegacyclicFold(t *testing.T) {
	r, err := ring.NewRing(4, 100_000_007)
	require.NoError(t, err)

	p := r.New([]int64{4, 2, 0, 5, 3})
	want := r.New([]int64{1, 2, 0, 5})
	require.True(t, p.Equal(want), "got %v want %v", p, want)
}

// TestEqualIgnoresTrailingZeros reproduces spec.md §8 scenario 6.
func TestEqualIgnoresTrailingZeros(t *testing.T) {
	r, err := ring.NewRing(8, 1_000_003)
	require.NoError(t, err)

	a := r.New([]int64{1, 2, 3})
	b := r.New([]int64{1, 2, 3, 0, 0})
	require.True(t, a.Equal(b))
}

func TestAddSubClosure(t *testing.T) {
	r, err := ring.NewRing(16, 1_000_003)
	require.NoError(t, err)

	a := r.New([]int64{1, 2, 3, 4})
	b := r.New([]int64{5, 6, 7, 8})

	sum := r.Add(a, b)
	require.LessOrEqual(t, len(sum), r.N)
	for _, c := range sum {
		require.Less(t, c, r.P)
	}

	diff := r.Sub(sum, b)
	require.True(t, diff.Equal(a))
}

func TestMulEmptyYieldsEmpty(t *testing.T) {
	r, err := ring.NewRing(8, 1_000_003)
	require.NoError(t, err)

	got := r.Mul(ring.Poly{}, r.New([]int64{1, 2, 3}))
	require.Empty(t, got)
}

func TestMulClosure(t *testing.T) {
	r, err := ring.NewRing(16, 1_000_003)
	require.NoError(t, err)

	a := r.New([]int64{1, 2, 3, 4})
	b := r.New([]int64{5, 6, 7, 8})

	prod := r.Mul(a, b)
	require.LessOrEqual(t, len(prod), r.N)
	for _, c := range prod {
		require.Less(t, c, r.P)
	}
}

func TestDegree(t *testing.T) {
	r, err := ring.NewRing(8, 1_000_003)
	require.NoError(t, err)

	require.Equal(t, -1, ring.Poly{}.Degree())
	require.Equal(t, -1, r.New([]int64{0, 0, 0}).Degree())
	require.Equal(t, 2, r.New([]int64{1, 0, 3}).Degree())
}

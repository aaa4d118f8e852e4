package selectable_test

import (
	"testing"

	"github.com/maloleroy/fhe-bpce/ckks"
	"github.com/maloleroy/fhe-bpce/heint"
	"github.com/maloleroy/fhe-bpce/selectable"
	"github.com/stretchr/testify/require"
)

func newTestCkksCS(t *testing.T) (ckks.Parameters, *ckks.CS) {
	t.Helper()
	params, err := ckks.NewParametersFromLiteral(ckks.ParametersLiteral{
		LogN: 12,
		P:    10_000_000_019,
		Xe:   ckks.TC128Preset,
	})
	require.NoError(t, err)

	kgen := ckks.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)

	cs, err := ckks.NewCS(params, pk, sk)
	require.NoError(t, err)
	return params, cs
}

func newTestHeintCS(t *testing.T) (heint.Parameters, *heint.CS) {
	t.Helper()
	params, err := heint.NewParametersFromLiteral(heint.ParametersLiteral{
		LogN: 12,
		P:    10_000_000_019,
		T:    65536,
	})
	require.NoError(t, err)

	kgen := heint.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)
	relin, err := kgen.GenRelinKeyNew(sk)
	require.NoError(t, err)

	cs, err := heint.NewCS(params, pk, sk, relin)
	require.NoError(t, err)
	return params, cs
}

func decodeOne(t *testing.T, cs *heint.CS, ct heint.Ciphertext) int64 {
	t.Helper()
	return int64(cs.Decipher(ct).Poly[0])
}

// TestFoldWhereFlag covers spec.md §8 scenario 4: two items holding 1 and
// 2, flag 0 set "on" only on the first item. Folding on that flag should
// recover 1*1 + 2*0 = 1 without the caller ever learning which flag was
// set (only the aggregate is observable).
func TestFoldWhereFlag(t *testing.T) {
	params, cs := newTestHeintCS(t)

	col := selectable.NewCollection[heint.Plaintext, heint.Ciphertext, heint.UnaryOp, heint.BinaryOp](cs, 1)

	require.NoError(t, selectable.PushPlain(col, mustPlaintext(t, params, 1)))
	require.NoError(t, selectable.PushPlain(col, mustPlaintext(t, params, 2)))
	require.Equal(t, 2, col.Len())

	require.NoError(t, selectable.SetFlagPlain(col, 0, 0, true))
	require.NoError(t, selectable.SetFlagPlain(col, 1, 0, false))

	folded := selectable.FoldWhereFlag(col, 0)
	require.Equal(t, int64(1), decodeOne(t, cs, folded))
}

// TestFoldWhereFlagSecondItem swaps which item has the flag on, as a
// sanity check that FoldWhereFlag tracks the flag and not item order.
func TestFoldWhereFlagSecondItem(t *testing.T) {
	params, cs := newTestHeintCS(t)

	col := selectable.NewCollection[heint.Plaintext, heint.Ciphertext, heint.UnaryOp, heint.BinaryOp](cs, 1)

	require.NoError(t, selectable.PushPlain(col, mustPlaintext(t, params, 1)))
	require.NoError(t, selectable.PushPlain(col, mustPlaintext(t, params, 2)))

	require.NoError(t, selectable.SetFlagPlain(col, 0, 0, false))
	require.NoError(t, selectable.SetFlagPlain(col, 1, 0, true))

	folded := selectable.FoldWhereFlag(col, 0)
	require.Equal(t, int64(2), decodeOne(t, cs, folded))
}

// TestFoldAll covers the plain fold path, usable without SelectableCS
// capabilities: folding [1, 2, 3] with OpAdd must decode to 6.
func TestFoldAll(t *testing.T) {
	params, cs := newTestHeintCS(t)

	col := selectable.NewCollection[heint.Plaintext, heint.Ciphertext, heint.UnaryOp, heint.BinaryOp](cs, 0)
	for _, v := range []int64{1, 2, 3} {
		ct, err := cs.Cipher(mustPlaintext(t, params, v))
		require.NoError(t, err)
		col.Push(selectable.Item[heint.Ciphertext]{Ciphertext: ct})
	}

	folded := col.FoldAll(cs.AddAlphabet())
	require.Equal(t, int64(6), decodeOne(t, cs, folded))
}

// TestFoldAllCkks covers the same plain-fold path as TestFoldAll but with
// ckks.CS plugged into the collection instead of heint.CS: ckks.CS only
// implements cryptosystem.CryptoSystem (its native Mul is unsupported, so
// it never implements SelectableCS), which is exactly what
// selectable.Collection.Push/FoldAll are constrained on. Folding [1, 2, 3]
// with OpAdd must decode to ~6.
func TestFoldAllCkks(t *testing.T) {
	params, cs := newTestCkksCS(t)

	col := selectable.NewCollection[ckks.ScaledPoly, ckks.Ciphertext, ckks.UnaryOp, ckks.BinaryOp](cs, 0)
	for _, v := range []float64{1, 2, 3} {
		pt, err := ckks.Encode(params.Ring(), []float64{v}, 1e6)
		require.NoError(t, err)
		ct, err := cs.Cipher(pt)
		require.NoError(t, err)
		col.Push(selectable.Item[ckks.Ciphertext]{Ciphertext: ct})
	}

	folded := col.FoldAll(ckks.OpAdd)
	got := ckks.Decode(params.Ring(), cs.Decipher(folded), 1)
	require.InDelta(t, 6.0, got[0], 1e-1)
}

// TestFoldAllEmptyPanics covers the empty-collection edge case (spec.md
// §4.8): folding nothing is a programmer error, not a silent zero.
func TestFoldAllEmptyPanics(t *testing.T) {
	_, cs := newTestHeintCS(t)
	col := selectable.NewCollection[heint.Plaintext, heint.Ciphertext, heint.UnaryOp, heint.BinaryOp](cs, 0)
	require.Panics(t, func() { col.FoldAll(cs.AddAlphabet()) })
}

func mustPlaintext(t *testing.T, params heint.Parameters, v int64) heint.Plaintext {
	t.Helper()
	pt, err := heint.Encode(params.Ring(), []int64{v})
	require.NoError(t, err)
	return pt
}

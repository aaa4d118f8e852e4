package batch_test

import (
	"io"
	"testing"

	"github.com/maloleroy/fhe-bpce/batch"
	"github.com/maloleroy/fhe-bpce/heint"
	"github.com/stretchr/testify/require"
)

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

func writeHeintCT(w io.Writer, ct heint.Ciphertext) error {
	_, err := ct.WriteTo(w)
	return err
}

func readHeintCT(r io.Reader) (heint.Ciphertext, error) {
	var ct heint.Ciphertext
	_, err := ct.ReadFrom(r)
	return ct, err
}

// TestBatchWireRoundTrip covers spec.md §8 scenario 5: a batch of two
// items, (cipher(2), cipher(3), ADD) and (cipher(5), cipher(2), MUL), is
// serialised, deserialised, executed and decoded back to [5, 10].
func TestBatchWireRoundTrip(t *testing.T) {
	params, cs := newTestHeintCS(t)

	encode := func(v int64) heint.Plaintext {
		pt, err := heint.Encode(params.Ring(), []int64{v})
		require.NoError(t, err)
		return pt
	}
	cipher := func(v int64) heint.Ciphertext {
		ct, err := cs.Cipher(encode(v))
		require.NoError(t, err)
		return ct
	}

	two, three, five := cipher(2), cipher(3), cipher(5)

	c := batch.NewContainer[heint.Ciphertext, heint.BinaryOp]()
	c.Push(two, three, heint.OpAdd)
	c.Push(five, two, heint.OpMul)
	require.Equal(t, 2, c.Len())

	data, err := c.MarshalBinary(writeHeintCT)
	require.NoError(t, err)

	got, err := batch.UnmarshalContainer[heint.Ciphertext, heint.BinaryOp](data, readHeintCT)
	require.NoError(t, err)
	require.Equal(t, c.Len(), got.Len())

	results := batch.Execute[heint.Ciphertext, heint.BinaryOp](got, cs)
	require.Len(t, results, 2)

	decode := func(ct heint.Ciphertext) int64 {
		return int64(cs.Decipher(ct).Poly[0])
	}

	require.Equal(t, int64(5), decode(results[0]))
	require.Equal(t, int64(10), decode(results[1]))
}

// TestBatchWireRoundTripEmpty covers the empty-container edge case:
// zero items still round-trips through the wire format cleanly.
func TestBatchWireRoundTripEmpty(t *testing.T) {
	c := batch.NewContainer[heint.Ciphertext, heint.BinaryOp]()
	require.True(t, c.IsEmpty())

	data, err := c.MarshalBinary(writeHeintCT)
	require.NoError(t, err)

	got, err := batch.UnmarshalContainer[heint.Ciphertext, heint.BinaryOp](data, readHeintCT)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

// TestBatchMalformedWire covers spec.md §8 "Batch decoding malformed":
// truncated input surfaces ErrMalformedWire rather than panicking.
func TestBatchMalformedWire(t *testing.T) {
	_, err := batch.UnmarshalContainer[heint.Ciphertext, heint.BinaryOp]([]byte{1, 2, 3}, readHeintCT)
	require.Error(t, err)

	var malformed *batch.ErrMalformedWire
	require.ErrorAs(t, err, &malformed)
}

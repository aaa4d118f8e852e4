package heint_test

import (
	"testing"

	"github.com/maloleroy/fhe-bpce/heint"
	"github.com/stretchr/testify/require"
)

func newTestParameters(t *testing.T) heint.Parameters {
	t.Helper()
	params, err := heint.NewParametersFromLiteral(heint.ParametersLiteral{
		LogN: 12, // N = 4096
		P:    10_000_000_019,
		T:    65536,
	})
	require.NoError(t, err)
	return params
}

func TestRoundTrip(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)
	defer sk.Zero()

	enc := heint.NewEncryptor(params, pk)
	dec, err := heint.NewDecryptor(params, sk)
	require.NoError(t, err)

	values := []int64{1, 2, 3, 4, 5}
	ct, err := enc.EncryptValuesNew(values)
	require.NoError(t, err)

	got := dec.DecryptToValues(ct, len(values))
	require.Equal(t, values, got)
}

func TestHomomorphicAddSub(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)
	defer sk.Zero()

	enc := heint.NewEncryptor(params, pk)
	dec, err := heint.NewDecryptor(params, sk)
	require.NoError(t, err)
	ev := heint.NewEvaluator(params, nil)

	a, err := enc.EncryptValuesNew([]int64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := enc.EncryptValuesNew([]int64{5, 6, 7, 8})
	require.NoError(t, err)

	sum := ev.AddNew(a, b)
	require.Equal(t, []int64{6, 8, 10, 12}, dec.DecryptToValues(sum, 4))

	diff := ev.SubNew(b, a)
	require.Equal(t, []int64{4, 4, 4, 4}, dec.DecryptToValues(diff, 4))
}

func TestMulPlainIdentities(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)
	defer sk.Zero()

	enc := heint.NewEncryptor(params, pk)
	dec, err := heint.NewDecryptor(params, sk)
	require.NoError(t, err)
	ev := heint.NewEvaluator(params, nil)

	a, err := enc.EncryptValuesNew([]int64{7})
	require.NoError(t, err)

	one := ev.MulPlainNew(a, heint.OnePlaintext())
	require.Equal(t, []int64{7}, dec.DecryptToValues(one, 1))

	zero := ev.MulPlainNew(a, heint.ZeroPlaintext())
	require.Equal(t, []int64{0}, dec.DecryptToValues(zero, 1))
}

// TestMulNew covers real ciphertext-ciphertext multiplication through the
// gadget-decomposed relinearisation key: 5*2 should decrypt to 10.
func TestMulNew(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	sk, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)
	defer sk.Zero()
	relin, err := kgen.GenRelinKeyNew(sk)
	require.NoError(t, err)

	enc := heint.NewEncryptor(params, pk)
	dec, err := heint.NewDecryptor(params, sk)
	require.NoError(t, err)
	ev := heint.NewEvaluator(params, relin)

	a, err := enc.EncryptValuesNew([]int64{5})
	require.NoError(t, err)
	b, err := enc.EncryptValuesNew([]int64{2})
	require.NoError(t, err)

	prod, err := ev.MulNew(a, b)
	require.NoError(t, err)
	require.Equal(t, []int64{10}, dec.DecryptToValues(prod, 1))
}

func TestMulNewRejectsNilRelinKey(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	_, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)

	enc := heint.NewEncryptor(params, pk)
	ev := heint.NewEvaluator(params, nil)

	a, err := enc.EncryptValuesNew([]int64{1})
	require.NoError(t, err)

	_, err = ev.MulNew(a, a)
	require.ErrorIs(t, err, heint.ErrRelinearizationKeyNil)
}

func TestCiphertextWireRoundTrip(t *testing.T) {
	params := newTestParameters(t)
	kgen := heint.NewKeyGenerator(params)
	_, pk, err := kgen.GenKeyPairNew()
	require.NoError(t, err)

	enc := heint.NewEncryptor(params, pk)
	ct, err := enc.EncryptValuesNew([]int64{1, 2, 3})
	require.NoError(t, err)

	data, err := ct.MarshalBinary()
	require.NoError(t, err)

	var got heint.Ciphertext
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, []uint64(ct.C0), []uint64(got.C0))
	require.Equal(t, []uint64(ct.C1), []uint64(got.C1))
}

func TestNewParametersFromLiteralRejectsBadT(t *testing.T) {
	_, err := heint.NewParametersFromLiteral(heint.ParametersLiteral{LogN: 12, P: 97, T: 1})
	require.Error(t, err)
}

func TestDecryptorRejectsNilKey(t *testing.T) {
	params := newTestParameters(t)
	_, err := heint.NewDecryptor(params, nil)
	require.ErrorIs(t, err, heint.ErrDecryptionKeyNil)
}

package heint

import "github.com/maloleroy/fhe-bpce/ring"

// KeyGenerator produces key material for a fixed set of Parameters,
// mirroring ckks.KeyGenerator's GenSecretKeyNew/GenPublicKeyNew/
// GenKeyPairNew naming, plus GenRelinKeyNew for the gadget-decomposed
// relinearisation key heint.Evaluator.MulNew needs.
type KeyGenerator struct {
	params Parameters
}

// NewKeyGenerator builds a KeyGenerator for params.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{params: params}
}

// GenSecretKeyNew samples a new ternary SecretKey.
func (kgen KeyGenerator) GenSecretKeyNew() (*SecretKey, error) {
	s, err := kgen.params.ring.Random(ring.Ternary{})
	if err != nil {
		return nil, err
	}
	return &SecretKey{S: s}, nil
}

// GenPublicKeyNew derives a PublicKey from sk: samples p1 uniformly in
// [0,P), samples an error polynomial from the configured Gaussian preset,
// and sets p0 = (-p1)*s + e.
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (*PublicKey, error) {
	r := kgen.params.ring

	p1, err := r.Random(ring.Uniform{Start: 0, End: int64(r.P)})
	if err != nil {
		return nil, err
	}

	e, err := r.Random(kgen.params.xe)
	if err != nil {
		return nil, err
	}

	p0 := r.Add(r.Mul(r.Neg(p1), sk.S), e)

	return &PublicKey{P0: p0, P1: p1}, nil
}

// GenKeyPairNew generates a fresh SecretKey and its corresponding
// PublicKey.
func (kgen KeyGenerator) GenKeyPairNew() (*SecretKey, *PublicKey, error) {
	sk, err := kgen.GenSecretKeyNew()
	if err != nil {
		return nil, nil, err
	}
	pk, err := kgen.GenPublicKeyNew(sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}

// GenRelinKeyNew builds a RelinKey for sk: for each gadget digit i it
// produces a key-switching pair encrypting digitBase^i * s^2 under s,
// following the teacher's evaluation-key shape (rlwe/evaluationkey.go,
// rlwe/gadget.go) reduced to a single modulus.
func (kgen KeyGenerator) GenRelinKeyNew(sk *SecretKey) (*RelinKey, error) {
	r := kgen.params.ring
	s2 := r.Mul(sk.S, sk.S)

	digits := numDigits(r.P)
	shares := make([]relinDigit, digits)
	for i := 0; i < digits; i++ {
		a, err := r.Random(ring.Uniform{Start: 0, End: int64(r.P)})
		if err != nil {
			return nil, err
		}
		e, err := r.Random(kgen.params.xe)
		if err != nil {
			return nil, err
		}

		term := r.Mul(s2, scalarPoly(r, digitPower(i)))
		k0 := r.Add(r.Add(r.Mul(r.Neg(a), sk.S), e), term)

		shares[i] = relinDigit{K0: k0, K1: a}
	}

	return &RelinKey{digits: shares}, nil
}

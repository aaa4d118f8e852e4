package ckks

import "github.com/maloleroy/fhe-bpce/ring"

// KeyGenerator produces SecretKey/PublicKey pairs for a fixed set of
// Parameters, grounded on rlwe.KeyGenerator's GenSecretKeyNew /
// GenPublicKeyNew / GenKeyPairNew naming (rlwe/keygenerator.go).
type KeyGenerator struct {
	params Parameters
}

// NewKeyGenerator builds a KeyGenerator for params.
func NewKeyGenerator(params Parameters) *KeyGenerator {
	return &KeyGenerator{params: params}
}

// GenSecretKeyNew samples a new ternary SecretKey (spec.md §4.3 step 1).
func (kgen KeyGenerator) GenSecretKeyNew() (*SecretKey, error) {
	s, err := kgen.params.ring.Random(ring.Ternary{})
	if err != nil {
		return nil, err
	}
	return &SecretKey{S: s}, nil
}

// GenPublicKeyNew derives a PublicKey from sk (spec.md §4.3 steps 2-4):
// samples p1 uniformly in [0,P), samples an error polynomial from the
// configured Gaussian preset, and sets p0 = (-p1)*s + e.
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

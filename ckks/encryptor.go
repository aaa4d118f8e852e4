package ckks

import "github.com/maloleroy/fhe-bpce/ring"

// Encryptor encrypts plaintext vectors under a fixed PublicKey, grounded on
// the teacher's encryptor split between key material and stateless
// encode/encrypt steps (rlwe/encryptor.go).
type Encryptor struct {
	params Parameters
	pk     *PublicKey
}

// NewEncryptor builds an Encryptor for params, encrypting under pk.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {
	return &Encryptor{params: params, pk: pk}
}

// EncryptNew encodes values at scale and encrypts the result (spec.md
// §4.4 steps 1-5).
func (enc *Encryptor) EncryptNew(values []float64, scale float64) (*Ciphertext, error) {
	m, err := Encode(enc.params.ring, values, scale)
	if err != nil {
		return nil, err
	}
	return enc.EncryptPlaintextNew(m)
}

// EncryptPlaintextNew encrypts an already-encoded ScaledPoly m (spec.md
// §4.4 steps 2-5): samples an ephemeral ternary u and two independent
// error polynomials e1, e2, then
//
//	c0 = p0*u + e1 + m
//	c1 = p1*u + e2
//
// Both halves of the resulting Ciphertext carry m's scale.
func (enc *Encryptor) EncryptPlaintextNew(m ScaledPoly) (*Ciphertext, error) {
	r := enc.params.ring

	u, err := r.Random(ring.Ternary{})
	if err != nil {
		return nil, err
	}
	e1, err := r.Random(enc.params.xe)
	if err != nil {
		return nil, err
	}
	e2, err := r.Random(enc.params.xe)
	if err != nil {
		return nil, err
	}

	c0 := AddScaled(r, AddScaled(r,
		ScaledPoly{Poly: r.Mul(enc.pk.P0, u), Scale: m.Scale},
		ScaledPoly{Poly: e1, Scale: m.Scale}),
		m)
	c1 := AddScaled(r,
		ScaledPoly{Poly: r.Mul(enc.pk.P1, u), Scale: m.Scale},
		ScaledPoly{Poly: e2, Scale: m.Scale})

	return &Ciphertext{C0: c0, C1: c1}, nil
}

package heint

import "github.com/maloleroy/fhe-bpce/ring"

// Encryptor encrypts Plaintext vectors under a fixed PublicKey, mirroring
// ckks.Encryptor's structure.
type Encryptor struct {
	params Parameters
	pk     *PublicKey
}

// NewEncryptor builds an Encryptor for params, encrypting under pk.
func NewEncryptor(params Parameters, pk *PublicKey) *Encryptor {
	return &Encryptor{params: params, pk: pk}
}

// EncryptNew encrypts pt: embeds it at the scheme's fixed Delta=P/T
// resolution, samples an ephemeral ternary u and two independent error
// polynomials e1, e2, then
//
//	c0 = p0*u + e1 + delta*pt
//	c1 = p1*u + e2
func (enc *Encryptor) EncryptNew(pt Plaintext) (*Ciphertext, error) {
	r := enc.params.ring
	m := embed(r, pt, delta(enc.params))

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

	c0 := r.Add(r.Add(r.Mul(enc.pk.P0, u), e1), m)
	c1 := r.Add(r.Mul(enc.pk.P1, u), e2)

	return &Ciphertext{C0: c0, C1: c1}, nil
}

// EncryptValuesNew is a convenience wrapper encoding values before
// encrypting them.
func (enc *Encryptor) EncryptValuesNew(values []int64) (*Ciphertext, error) {
	pt, err := Encode(enc.params.ring, values)
	if err != nil {
		return nil, err
	}
	return enc.EncryptNew(pt)
}

package ckks

// Decryptor decrypts ciphertexts under a fixed SecretKey, grounded on the
// teacher's rlwe.Decryptor split from Encryptor (rlwe/decryptor.go).
type Decryptor struct {
	params Parameters
	sk     *SecretKey
}

// NewDecryptor builds a Decryptor for params, decrypting under sk.
func NewDecryptor(params Parameters, sk *SecretKey) (*Decryptor, error) {
	if sk == nil {
		return nil, ErrDecryptionKeyNil
	}
	return &Decryptor{params: params, sk: sk}, nil
}

// DecryptNew recovers the plaintext ScaledPoly d = c0 + c1*s (spec.md §4.4
// step 6).
func (dec *Decryptor) DecryptNew(ct *Ciphertext) ScaledPoly {
	r := dec.params.ring
	c1s := ScaledPoly{Poly: r.Mul(ct.C1.Poly, dec.sk.S), Scale: ct.C1.Scale}
	return AddScaled(r, ct.C0, c1s)
}

// DecryptToValues decrypts ct and decodes n real values in one step.
func (dec *Decryptor) DecryptToValues(ct *Ciphertext, n int) []float64 {
	return Decode(dec.params.ring, dec.DecryptNew(ct), n)
}

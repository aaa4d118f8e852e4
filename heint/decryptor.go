package heint

import "github.com/maloleroy/fhe-bpce/ring"

// Decryptor decrypts ciphertexts under a fixed SecretKey.
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

// decrypt computes d = c0 + c1*s in the ring.
func (dec *Decryptor) decrypt(ct *Ciphertext) ring.Poly {
	r := dec.params.ring
	return r.Add(ct.C0, r.Mul(ct.C1, dec.sk.S))
}

// DecryptToValues decrypts ct and decodes n signed integers in one step.
func (dec *Decryptor) DecryptToValues(ct *Ciphertext, n int) []int64 {
	return DecodeValues(dec.params.ring, dec.decrypt(ct), n, dec.params)
}

package heint

import "github.com/maloleroy/fhe-bpce/ring"

// SecretKey mirrors ckks.SecretKey: a single ring element with ternary
// coefficients, erased on drop by an explicit Zero call.
type SecretKey struct {
	S ring.Poly
}

// Zero overwrites the secret key's coefficients.
func (sk *SecretKey) Zero() {
	for i := range sk.S {
		sk.S[i] = 0
	}
}

// Clone returns a deep copy of sk.
func (sk SecretKey) Clone() *SecretKey {
	return &SecretKey{S: sk.S.Clone()}
}

// PublicKey mirrors ckks.PublicKey: the pair (P0, P1) with P0 = -P1*s + e.
type PublicKey struct {
	P0, P1 ring.Poly
}

// Clone returns a deep copy of pk.
func (pk PublicKey) Clone() *PublicKey {
	return &PublicKey{P0: pk.P0.Clone(), P1: pk.P1.Clone()}
}

// relinDigit is one share of a gadget-decomposed relinearisation key: a
// key-switching pair encrypting digitBase^i * s^2 under s.
type relinDigit struct {
	K0, K1 ring.Poly
}

// RelinKey lets Evaluator.MulNew fold a degree-2 tensor product back down
// to a two-element ciphertext. It holds one share per base-256 digit
// (digitBase), share i encrypting digitBase^i * s^2, so that MulNew can
// multiply each base-256 digit of the degree-2 term by its own share and
// the noise contributed is bounded by the digit size instead of the full
// modulus, following the teacher's
// gadget/evaluation-key shape (rlwe/gadget.go, rlwe/evaluationkey.go)
// without its RNS decomposition.
type RelinKey struct {
	digits []relinDigit
}

package ckks

import "github.com/maloleroy/fhe-bpce/ring"

// SecretKey is a single ring element s with ternary coefficients. It is
// owned by its generator and never transmitted (spec.md §3). Zero must be
// called by the owner once the key is no longer needed; spec.md §9 notes
// this is "the whole memory-safety story" for this codebase, not a
// constant-time or compiler-enforced guarantee.
type SecretKey struct {
	S ring.Poly
}

// Zero overwrites the secret key's coefficients, following the teacher's
// documented (not magic) zero-on-drop convention for secret-key storage
// (spec.md §3 "Ownership", §9 "Secret-key hygiene").
func (sk *SecretKey) Zero() {
	for i := range sk.S {
		sk.S[i] = 0
	}
}

// Clone returns a deep copy of sk. Per spec.md §9, clones also erase on
// drop: callers must call Zero on the clone too once it is discarded.
func (sk SecretKey) Clone() *SecretKey {
	return &SecretKey{S: sk.S.Clone()}
}

// PublicKey is the pair (P0, P1) with P0 = -P1*s + e (spec.md §3). Public
// keys are cheaply clonable and freely shareable.
type PublicKey struct {
	P0, P1 ring.Poly
}

// Clone returns a deep copy of pk.
func (pk PublicKey) Clone() *PublicKey {
	return &PublicKey{P0: pk.P0.Clone(), P1: pk.P1.Clone()}
}

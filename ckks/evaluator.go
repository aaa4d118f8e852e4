package ckks

// Evaluator performs homomorphic operations on ciphertexts, grounded on
// the teacher's split of key-independent evaluation logic into its own
// type (ckks/evaluator.go, rlwe/evaluator.go).
type Evaluator struct {
	params Parameters
}

// NewEvaluator builds an Evaluator for params.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// AddNew adds two ciphertexts coordinate-wise (spec.md §4.5): each half is
// combined with AddScaled, which aligns scales before summing.
func (ev *Evaluator) AddNew(a, b *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{
		C0: AddScaled(r, a.C0, b.C0),
		C1: AddScaled(r, a.C1, b.C1),
	}
}

// AddPlainNew adds a plaintext ScaledPoly to a ciphertext's C0 half only,
// following the standard RLWE convention that plaintext addition touches
// only the degree-0 component (spec.md §4.5).
func (ev *Evaluator) AddPlainNew(a *Ciphertext, m ScaledPoly) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{
		C0: AddScaled(r, a.C0, m),
		C1: a.C1,
	}
}

// MulPlainNew multiplies every half of a ciphertext by a plaintext
// ScaledPoly (spec.md §4.5) with MulScaled: each half ends up at the
// smaller of its own scale and m's scale, which is the ciphertext's own
// scale whenever m is encoded at an equal or larger scale.
func (ev *Evaluator) MulPlainNew(a *Ciphertext, m ScaledPoly) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{
		C0: MulScaled(r, a.C0, m),
		C1: MulScaled(r, a.C1, m),
	}
}

// NegNew negates a ciphertext coordinate-wise.
func (ev *Evaluator) NegNew(a *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{
		C0: ScaledPoly{Poly: r.Neg(a.C0.Poly), Scale: a.C0.Scale},
		C1: ScaledPoly{Poly: r.Neg(a.C1.Poly), Scale: a.C1.Scale},
	}
}

// SubNew subtracts b from a coordinate-wise.
func (ev *Evaluator) SubNew(a, b *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{
		C0: SubScaled(r, a.C0, b.C0),
		C1: SubScaled(r, a.C1, b.C1),
	}
}

// MulNew is the ciphertext-ciphertext product. spec.md §4.5/§9 scope this
// out of the native core: real CKKS multiplication needs a relinearization
// key to fold the resulting degree-2 ciphertext back to degree 1, which
// this package does not implement. Callers that need ciphertext-ciphertext
// multiplication use the heint adapter scheme instead.
func (ev *Evaluator) MulNew(a, b *Ciphertext) (*Ciphertext, error) {
	return nil, ErrMultiplicationUnsupported
}

// Relinearize is a no-op hook kept for interface parity with schemes that
// do support degree-2 ciphertexts (spec.md §9 Open Questions); the native
// CKKS core never produces a ciphertext that needs it.
func (ev *Evaluator) Relinearize(ct *Ciphertext) *Ciphertext {
	return ct
}

package heint

// Evaluator performs homomorphic operations on ciphertexts. Unlike ckks,
// heint's Mul is real ciphertext-ciphertext multiplication: the tensor
// product is folded back to a two-element ciphertext through a RelinKey
// before MulNew returns, so no degree-2 ciphertext ever escapes this
// package (spec.md §9 Open Question, resolved here rather than declared
// unsupported).
type Evaluator struct {
	params Parameters
	relin  *RelinKey
}

// NewEvaluator builds an Evaluator for params. relin may be nil if the
// caller never intends to call MulNew.
func NewEvaluator(params Parameters, relin *RelinKey) *Evaluator {
	return &Evaluator{params: params, relin: relin}
}

// AddNew adds two ciphertexts coordinate-wise.
func (ev *Evaluator) AddNew(a, b *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{C0: r.Add(a.C0, b.C0), C1: r.Add(a.C1, b.C1)}
}

// SubNew subtracts b from a coordinate-wise.
func (ev *Evaluator) SubNew(a, b *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{C0: r.Sub(a.C0, b.C0), C1: r.Sub(a.C1, b.C1)}
}

// NegNew negates a ciphertext coordinate-wise.
func (ev *Evaluator) NegNew(a *Ciphertext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{C0: r.Neg(a.C0), C1: r.Neg(a.C1)}
}

// AddPlainNew adds an embedded plaintext to a ciphertext's C0 half only,
// the standard RLWE convention for plaintext addition.
func (ev *Evaluator) AddPlainNew(a *Ciphertext, pt Plaintext) *Ciphertext {
	r := ev.params.ring
	m := embed(r, pt, delta(ev.params))
	return &Ciphertext{C0: r.Add(a.C0, m), C1: a.C1}
}

// MulPlainNew multiplies every half of a by the raw (un-embedded) pt:
// since pt carries no Delta factor, this needs no rescaling (spec.md
// §4.9). This is the only multiplication OnePlaintext/ZeroPlaintext need
// to act as multiplicative/additive identities.
func (ev *Evaluator) MulPlainNew(a *Ciphertext, pt Plaintext) *Ciphertext {
	r := ev.params.ring
	return &Ciphertext{C0: r.Mul(a.C0, pt.Poly), C1: r.Mul(a.C1, pt.Poly)}
}

// MulNew computes the ciphertext-ciphertext product of a and b. It tensors
// the two ciphertexts into a degree-2 intermediate (d0, d1, d2) sitting at
// the Delta^2 scale, gadget-decomposes d2 and folds it back into (c0, c1)
// through ev.relin (for each digit i, c0 += digit_i * relin.K0_i and
// c1 += digit_i * relin.K1_i, reconstructing d2*s^2 up to the relin key's
// own small noise), then scales the folded result back down from Delta^2
// to Delta with scaleDown, the BFV-style divide-and-round every
// ciphertext-ciphertext multiplication needs. Decrypting the result
// recovers Delta*(m_a*m_b) plus rounding and relin noise, comfortably
// below Delta/2 for the parameters this package targets.
func (ev *Evaluator) MulNew(a, b *Ciphertext) (*Ciphertext, error) {
	if ev.relin == nil {
		return nil, ErrRelinearizationKeyNil
	}
	r := ev.params.ring

	d0 := r.Mul(a.C0, b.C0)
	d1 := r.Add(r.Mul(a.C0, b.C1), r.Mul(a.C1, b.C0))
	d2 := r.Mul(a.C1, b.C1)

	digits := decomposePoly(d2, len(ev.relin.digits))
	c0, c1 := d0, d1
	for i, dg := range digits {
		share := ev.relin.digits[i]
		c0 = r.Add(c0, r.Mul(dg, share.K0))
		c1 = r.Add(c1, r.Mul(dg, share.K1))
	}

	t := ev.params.T()
	return &Ciphertext{C0: scaleDown(r, c0, t), C1: scaleDown(r, c1, t)}, nil
}

// Relinearize is a no-op: MulNew already folds the tensor product down to
// two ring elements before returning, so there is nothing left to do.
func (ev *Evaluator) Relinearize(ct *Ciphertext) *Ciphertext {
	return ct
}

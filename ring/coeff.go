package ring

import "math/bits"

// Coeff-level modular arithmetic. These are free functions taking the
// modulus explicitly, the same shape as the teacher's BRed/MRed/CRed helpers
// in ring/ring_ops.go, but implemented directly against math/bits widening
// instead of Barrett/Montgomery constants: at a single 62-bit modulus (no
// RNS chain to amortize precomputation over), a plain 128-bit widen-then-
// reduce is both simpler and exactly as fast.

// CoeffAdd returns (a+b) mod p.
func CoeffAdd(a, b, p uint64) uint64 {
	s := a + b
	if s >= p || s < a {
		s -= p
	}
	return s
}

// CoeffSub returns (a-b) mod p.
func CoeffSub(a, b, p uint64) uint64 {
	if a >= b {
		return a - b
	}
	return p - (b - a)
}

// CoeffNeg returns (-a) mod p.
func CoeffNeg(a, p uint64) uint64 {
	if a == 0 {
		return 0
	}
	return p - a
}

// CoeffMul returns (a*b) mod p, widening the product to 128 bits so that it
// is correct for any p up to MaxModulusBits (spec.md §3: "multiplication
// must widen to 128-bit intermediates when p² can overflow 64 bits").
func CoeffMul(a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, p)
	return rem
}

// CoeffReduce reduces x into [0, p) using the canonical (Euclidean) residue.
func CoeffReduce(x int64, p uint64) uint64 {
	m := int64(p)
	r := x % m
	if r < 0 {
		r += m
	}
	return uint64(r)
}

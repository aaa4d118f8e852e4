package heint

import (
	"math/bits"

	"github.com/maloleroy/fhe-bpce/ring"
)

// digitBase is the gadget decomposition base used by the relinearisation
// key: each ring coefficient is split into digits in [0, digitBase),
// keeping the noise a key share injects bounded by digitBase rather than
// by the full modulus P.
const digitBase = 1 << 8

// numDigits returns how many base-digitBase digits are needed to cover
// every value in [0, P).
func numDigits(p uint64) int {
	return (bits.Len64(p) + 7) / 8
}

// digitPower returns digitBase^i as a uint64; i stays small (numDigits(P)
// for a 62-bit P is at most 8), so this never overflows.
func digitPower(i int) uint64 {
	pow := uint64(1)
	for ; i > 0; i-- {
		pow *= digitBase
	}
	return pow
}

// decomposePoly splits p coefficient-wise into digits many polynomials,
// the i-th holding the base-digitBase digit at position i of every
// coefficient of p. Reconstructing p from the digits is exact:
// sum_i digits[i][j] * digitBase^i == p[j] for every coefficient j,
// since each coefficient's digits are its own base-digitBase expansion.
func decomposePoly(p ring.Poly, digits int) []ring.Poly {
	out := make([]ring.Poly, digits)
	for i := range out {
		out[i] = make(ring.Poly, len(p))
	}
	for j, c := range p {
		for i := 0; i < digits; i++ {
			out[i][j] = c % digitBase
			c /= digitBase
		}
	}
	return out
}

// scalarPoly returns the degree-0 polynomial representing the constant k;
// multiplying any polynomial by it via r.Mul is exactly scalar
// multiplication by k mod P (a single-term convolution).
func scalarPoly(r *ring.Ring, k uint64) ring.Poly {
	return r.New([]int64{int64(k)})
}

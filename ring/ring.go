// Package ring implements arithmetic in the cyclotomic ring Z_p[X]/(X^N+1),
// with N a power of two and p prime, following the "scaled integer
// coefficients" variant of CKKS: there is no NTT, no RNS decomposition and no
// modulus chain, only schoolbook convolution followed by negacyclic
// reduction.
package ring

import (
	"fmt"
	"math/big"
	"math/bits"
)

// MinDegree is the smallest ring degree this package will instantiate.
// Below this size the negacyclic-fold approximation underlying the noise
// bounds in spec.md stops being meaningful.
const MinDegree = 4

// MaxModulusBits bounds p so that p*p always fits in 128 bits, which is all
// the widening Mul needs.
const MaxModulusBits = 62

// Ring stores the precomputed parameters of Z_p[X]/(X^N+1): the degree N
// (forced to a power of two) and the prime modulus p. Unlike the teacher's
// RNS-chain Ring, there is a single modulus and no NTT tables: multiplication
// in this ring is always a schoolbook convolution followed by a negacyclic
// fold.
type Ring struct {
	N int
	P uint64
}

// NewRing allocates a new Ring for degree N and prime modulus P.
// Returns an error rather than panicking, since N and P are user-supplied
// configuration (see spec.md §7: parameter validation is a contract
// violation, which constructors surface as a returned error).
func NewRing(N int, P uint64) (*Ring, error) {
	if N < MinDegree || N&(N-1) != 0 {
		return nil, fmt.Errorf("ring: invalid degree: N=%d must be a power of two >= %d", N, MinDegree)
	}
	if P == 0 || bits.Len64(P) > MaxModulusBits {
		return nil, fmt.Errorf("ring: invalid modulus: P=%d must be in (0, 2^%d)", P, MaxModulusBits)
	}
	if !big.NewInt(0).SetUint64(P).ProbablyPrime(20) {
		return nil, fmt.Errorf("ring: invalid modulus: P=%d is not prime", P)
	}
	return &Ring{N: N, P: P}, nil
}

// LogN returns log2(N).
func (r *Ring) LogN() int {
	return bits.Len64(uint64(r.N) - 1)
}

// NewPoly returns a zero polynomial of length N in the receiver's ring.
func (r *Ring) NewPoly() Poly {
	return make(Poly, r.N)
}

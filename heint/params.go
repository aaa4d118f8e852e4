// Package heint implements a second, from-scratch CryptoSystem back-end:
// an exact (non-approximate) integer scheme over the same ring package
// ckks uses, built so that cryptosystem.CryptoSystem and
// selectable.Collection are demonstrably generic over more than one
// concrete scheme (SPEC_FULL.md §4.9).
package heint

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/maloleroy/fhe-bpce/ring"
)

// ParametersLiteral is the unchecked configuration for the heint scheme:
// polynomial degree N, prime ciphertext modulus P, and plaintext base T
// (analogous to BFV/BGV's plaintext modulus t).
type ParametersLiteral struct {
	LogN int
	P    uint64
	T    uint64
}

// Parameters is the validated, immutable configuration for heint.
type Parameters struct {
	ring *ring.Ring
	xe   ring.Truncated
	t    uint64
}

// NewParametersFromLiteral validates lit and builds Parameters, mirroring
// ckks.NewParametersFromLiteral.
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.LogN < 8 || lit.LogN > 15 {
		return Parameters{}, fmt.Errorf("heint: invalid LogN=%d: must be in [8,15]", lit.LogN)
	}
	if lit.T < 2 {
		return Parameters{}, fmt.Errorf("heint: invalid plaintext base T=%d: must be >= 2", lit.T)
	}
	if lit.T >= lit.P {
		return Parameters{}, fmt.Errorf("heint: plaintext base T=%d must be smaller than modulus P=%d", lit.T, lit.P)
	}

	r, err := ring.NewRing(1<<lit.LogN, lit.P)
	if err != nil {
		return Parameters{}, fmt.Errorf("heint: %w", err)
	}

	return Parameters{ring: r, xe: ring.TC128(), t: lit.T}, nil
}

// N returns the ring degree.
func (p Parameters) N() int { return p.ring.N }

// P returns the ciphertext modulus.
func (p Parameters) P() uint64 { return p.ring.P }

// T returns the plaintext base.
func (p Parameters) T() uint64 { return p.t }

// Ring returns the underlying polynomial ring.
func (p Parameters) Ring() *ring.Ring { return p.ring }

// Xe returns the error distribution used for fresh encryptions.
func (p Parameters) Xe() ring.Truncated { return p.xe }

// Equal performs a deep comparison of two Parameters.
func (p Parameters) Equal(other Parameters) bool {
	return p.ring.N == other.ring.N &&
		p.ring.P == other.ring.P &&
		p.t == other.t &&
		cmp.Equal(p.xe, other.xe)
}

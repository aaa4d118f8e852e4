// Package ckks implements the from-scratch, single-modulus CKKS core
// described in spec.md: key generation, encryption/decryption of scaled
// real vectors, and homomorphic addition, built directly on package ring.
package ckks

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/maloleroy/fhe-bpce/ring"
)

// GaussianPresetName names a noise-distribution preset. Only TC128 is
// instantiated; spec.md §9 notes security parameters come from a named
// table, not a derivation, so an unknown preset name is a configuration
// error rather than silently substituted. An empty name selects TC128.
type GaussianPresetName string

// TC128Preset is the only currently-defined noise preset.
const TC128Preset GaussianPresetName = "TC128"

// SecurityLevel tags the targeted security strength (spec.md §6). Only
// TC128 has concrete parameters wired up in this package; TC192/TC256 are
// accepted as values, but SecurityParameters rejects them with
// ErrUnsupportedSecurityLevel.
type SecurityLevel uint8

const (
	TC128 SecurityLevel = iota
	TC192
	TC256
)

// ErrUnsupportedSecurityLevel is returned when a SecurityLevel has no
// concrete Gaussian preset wired up.
var ErrUnsupportedSecurityLevel = fmt.Errorf("ckks: unsupported security level")

// ParametersLiteral is the unchecked, user-facing configuration for the
// CKKS core (spec.md §6): polynomial degree N, prime modulus P, and a
// Gaussian preset name.
type ParametersLiteral struct {
	LogN int // N = 1 << LogN, LogN in [8, 15]
	P    uint64
	Xe   GaussianPresetName
}

// Parameters is the validated, immutable configuration produced from a
// ParametersLiteral, carrying the precomputed *ring.Ring.
type Parameters struct {
	ring *ring.Ring
	xe   ring.Truncated
	xeID GaussianPresetName
}

// NewParametersFromLiteral validates lit and builds Parameters, following
// the teacher's literal-then-validated pattern (rlwe/parameters_literal.go,
// rlwe/params.go).
func NewParametersFromLiteral(lit ParametersLiteral) (Parameters, error) {
	if lit.LogN < 8 || lit.LogN > 15 {
		return Parameters{}, fmt.Errorf("%w: invalid LogN=%d: must be in [8,15]", ErrInvalidParameters, lit.LogN)
	}

	r, err := ring.NewRing(1<<lit.LogN, lit.P)
	if err != nil {
		return Parameters{}, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}

	var xe ring.Truncated
	switch lit.Xe {
	case TC128Preset, "":
		xe = ring.TC128()
	default:
		return Parameters{}, fmt.Errorf("%w: unknown Gaussian preset %q", ErrInvalidParameters, lit.Xe)
	}

	return Parameters{ring: r, xe: xe, xeID: TC128Preset}, nil
}

// N returns the ring degree.
func (p Parameters) N() int { return p.ring.N }

// P returns the prime modulus.
func (p Parameters) P() uint64 { return p.ring.P }

// Ring returns the underlying polynomial ring.
func (p Parameters) Ring() *ring.Ring { return p.ring }

// Xe returns the error (noise) distribution.
func (p Parameters) Xe() ring.Truncated { return p.xe }

// Equal performs a deep comparison of two Parameters, grounded on the
// teacher's use of go-cmp for Parameters.Equal (rlwe/params.go).
func (p Parameters) Equal(other Parameters) bool {
	return p.ring.N == other.ring.N &&
		p.ring.P == other.ring.P &&
		cmp.Equal(p.xe, other.xe)
}

// SecurityParameters returns the Gaussian preset associated with lvl.
func SecurityParameters(lvl SecurityLevel) (ring.Truncated, error) {
	switch lvl {
	case TC128:
		return ring.TC128(), nil
	default:
		return ring.Truncated{}, ErrUnsupportedSecurityLevel
	}
}

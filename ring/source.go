package ring

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// ErrRandomnessUnavailable is returned when the OS CSPRNG cannot service a
// read. spec.md §7.1: "unrecoverable at the call site; propagated to the
// caller" as a single opaque kind.
var ErrRandomnessUnavailable = fmt.Errorf("ring: OS randomness unavailable")

// Source is a crypto/rand-backed implementation of the math/rand/v2.Source
// interface (a single Uint64() method), so that it can be handed to
// math/rand/v2.New to drive higher-level sampling (NormFloat64-style
// routines) when convenient, the same role the teacher's unretrieved
// *sampling.Source plays when passed to rand.New in
// ring/rns_sampler_gaussian.go.
type Source struct{}

// NewSource returns a Source reading from the OS CSPRNG.
func NewSource() *Source {
	return &Source{}
}

// Uint64 implements math/rand/v2.Source.
func (s *Source) Uint64() uint64 {
	v, err := s.TryUint64()
	if err != nil {
		// math/rand/v2.Source has no error return; a CSPRNG failure here
		// is unrecoverable regardless, so this mirrors the teacher's own
		// "sanity check, should not happen" panics (e.g. rlwe/keygenerator.go).
		panic(err)
	}
	return v
}

// TryUint64 reads a uniformly random uint64 from the OS CSPRNG, returning
// ErrRandomnessUnavailable on failure instead of panicking.
func (s *Source) TryUint64() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomnessUnavailable, err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Float64 returns a uniform value in [0,1) derived from 53 random bits, the
// same precision as math/rand/v2's Float64.
func (s *Source) Float64() (float64, error) {
	v, err := s.TryUint64()
	if err != nil {
		return 0, err
	}
	return float64(v>>11) / (1 << 53), nil
}

package heint

import (
	"math"

	"github.com/maloleroy/fhe-bpce/ring"
)

// Plaintext is a vector of exact integers represented directly as ring
// coefficients (no scale factor): coefficient i holds value_i reduced mod
// the ring's prime, not yet embedded at the ciphertext's fixed-point
// resolution. Embedding by Delta = P/T happens in Encryptor.EncryptNew;
// the same unscaled representation doubles as the small multiplier
// Evaluator.MulPlainNew expects, and as the shape of the scheme's additive
// and multiplicative identities (spec.md §4.6 "zero"/"one" plaintexts).
type Plaintext struct {
	Poly ring.Poly
}

// centered returns c's canonical representative centered in (-p/2, p/2].
func centered(c, p uint64) int64 {
	if c > p/2 {
		return int64(c) - int64(p)
	}
	return int64(c)
}

// Encode maps up to N signed integers into a Plaintext.
func Encode(r *ring.Ring, values []int64) (Plaintext, error) {
	if len(values) > r.N {
		return Plaintext{}, ErrPlaintextTooLong
	}
	return Plaintext{Poly: r.New(values)}, nil
}

// delta returns the plaintext-to-ciphertext scaling factor P/T (integer
// division, analogous to BFV's Delta), which EncryptNew multiplies into
// the plaintext before adding encryption noise.
func delta(params Parameters) uint64 {
	return params.P() / params.T()
}

// embed scales pt by delta for encryption: coefficient i becomes
// delta * centered(pt.Poly[i], P), reduced back into the ring.
func embed(r *ring.Ring, pt Plaintext, d uint64) ring.Poly {
	raw := make([]int64, len(pt.Poly))
	for i, c := range pt.Poly {
		raw[i] = int64(d) * centered(c, r.P)
	}
	return r.New(raw)
}

// scaleDown maps a ring element from the Delta^2 scale a tensored
// ciphertext product sits at back down to the single Delta scale, by
// multiplying every coefficient by T/P and rounding to the nearest
// integer (the BFV-style "divide-and-round" step every ciphertext-
// ciphertext multiplication needs, since Delta^2 * T/P == Delta exactly
// when Delta == P/T). Evaluator.MulNew applies this once, after gadget-
// decomposition and relinearisation have already folded the degree-2
// term back into a 2-element ciphertext, since scaling is linear and
// commutes with that fold.
func scaleDown(r *ring.Ring, p ring.Poly, t uint64) ring.Poly {
	raw := make([]int64, len(p))
	for i, c := range p {
		cc := centered(c, r.P)
		raw[i] = int64(math.Round(float64(cc) * float64(t) / float64(r.P)))
	}
	return r.New(raw)
}

// DecodeValues recovers n signed integers from a decrypted ring element:
// each coefficient is centered, divided by delta and rounded to the
// nearest integer, then reduced into the centered representative of Z/TZ
// (spec.md §4.9: "round to nearest representative, no clamping needed").
func DecodeValues(r *ring.Ring, decrypted ring.Poly, n int, params Parameters) []int64 {
	if n > r.N {
		n = r.N
	}
	d := delta(params)
	t := int64(params.T())
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var c uint64
		if i < len(decrypted) {
			c = decrypted[i]
		}
		raw := centered(c, r.P)
		v := int64(math.Round(float64(raw) / float64(d)))
		v %= t
		if v < 0 {
			v += t
		}
		if v > t/2 {
			v -= t
		}
		out[i] = v
	}
	return out
}

// ZeroPlaintext returns the additive identity plaintext: encrypting it
// (or adding it to a ciphertext) changes nothing (spec.md §4.6).
func ZeroPlaintext() Plaintext {
	return Plaintext{Poly: ring.Poly{0}}
}

// OnePlaintext returns the multiplicative identity plaintext: multiplying
// a ciphertext by it (MulPlainNew) leaves the ciphertext's decrypted
// values unchanged (spec.md §4.6).
func OnePlaintext() Plaintext {
	return Plaintext{Poly: ring.Poly{1}}
}

package ckks

import (
	"math"

	"github.com/maloleroy/fhe-bpce/ring"
)

// ScaledPoly pairs a ring.Poly with the positive scale factor it was
// encoded at: the real vector it represents is coeff_i/scale for each i
// (spec.md §3).
type ScaledPoly struct {
	Poly  ring.Poly
	Scale float64
}

// centered returns c's canonical representative centered in
// (-p/2, p/2], the signed interpretation needed to rescale or decode a
// coefficient stored mod p.
func centered(c, p uint64) int64 {
	if c > p/2 {
		return int64(c) - int64(p)
	}
	return int64(c)
}

// Encode maps a vector of reals (length <= r.N) to a ScaledPoly by rounding
// each value to the nearest integer at the given scale (spec.md §4.4 step
// 1, §3). scale must be strictly positive.
func Encode(r *ring.Ring, values []float64, scale float64) (ScaledPoly, error) {
	if scale <= 0 {
		return ScaledPoly{}, ErrInvalidScale
	}
	if len(values) > r.N {
		return ScaledPoly{}, ErrPlaintextTooLong
	}
	raw := make([]int64, len(values))
	for i, v := range values {
		raw[i] = int64(math.Round(v * scale))
	}
	return ScaledPoly{Poly: r.New(raw), Scale: scale}, nil
}

// Decode recovers n real values from a ScaledPoly (spec.md §4.4): each
// coefficient is centered, divided by the scale, rounded to 3 decimal
// places, and clamped to exactly zero below a 1e-10 magnitude threshold.
func Decode(r *ring.Ring, sp ScaledPoly, n int) []float64 {
	if n > r.N {
		n = r.N
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var c uint64
		if i < len(sp.Poly) {
			c = sp.Poly[i]
		}
		v := float64(centered(c, r.P)) / sp.Scale
		v = math.Round(v*1000) / 1000
		if ring.Abs(v) < 1e-10 {
			v = 0
		}
		out[i] = v
	}
	return out
}

// rescale divides sp's coefficients down to targetScale, rounding each
// centered coefficient, and re-encodes at targetScale (spec.md §3:
// "Addition of two scaled polynomials first rescales the higher-scaled
// operand down to the lower scale ... by dividing its coefficients and
// rounding").
func rescale(r *ring.Ring, sp ScaledPoly, targetScale float64) ScaledPoly {
	if sp.Scale == targetScale {
		return sp
	}
	raw := make([]int64, len(sp.Poly))
	factor := targetScale / sp.Scale
	for i, c := range sp.Poly {
		raw[i] = int64(math.Round(float64(centered(c, r.P)) * factor))
	}
	return ScaledPoly{Poly: r.New(raw), Scale: targetScale}
}

// AddScaled adds two ScaledPoly values, rescaling the higher-scaled operand
// down to the lower scale first; the result carries the lower scale
// (spec.md §3).
func AddScaled(r *ring.Ring, a, b ScaledPoly) ScaledPoly {
	target := math.Min(a.Scale, b.Scale)
	a = rescale(r, a, target)
	b = rescale(r, b, target)
	return ScaledPoly{Poly: r.Add(a.Poly, b.Poly), Scale: target}
}

// SubScaled subtracts two ScaledPoly values under the same scale-alignment
// rule as AddScaled.
func SubScaled(r *ring.Ring, a, b ScaledPoly) ScaledPoly {
	target := math.Min(a.Scale, b.Scale)
	a = rescale(r, a, target)
	b = rescale(r, b, target)
	return ScaledPoly{Poly: r.Sub(a.Poly, b.Poly), Scale: target}
}

// MulScaled multiplies two ScaledPoly values: the raw product carries
// scale_lhs*scale_rhs and is immediately rescaled back down by
// max(scale_lhs, scale_rhs) to prevent unbounded scale growth (spec.md §3),
// so the result carries the smaller of the two operand scales.
func MulScaled(r *ring.Ring, a, b ScaledPoly) ScaledPoly {
	raw := ScaledPoly{Poly: r.Mul(a.Poly, b.Poly), Scale: a.Scale * b.Scale}
	return rescale(r, raw, raw.Scale/math.Max(a.Scale, b.Scale))
}

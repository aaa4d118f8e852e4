package ring

import "math"

// Distribution is sample()-capable over a Source, producing a signed raw
// coefficient or a randomness error (spec.md §4.2). It deliberately returns
// int64 rather than a ring-reduced Coeff: reduction mod p happens once, in
// Ring.New, after every coefficient of a Poly has been sampled.
type Distribution interface {
	// Sample draws one raw value from src.
	Sample(src *Source) (int64, error)
	// SampleN draws n raw values from a fresh Source.
	SampleN(n int) ([]int64, error)
}

// sampleN draws n values from d using a single fresh Source, the shared
// implementation behind every concrete Distribution's SampleN.
func sampleN(d Distribution, n int) ([]int64, error) {
	src := NewSource()
	out := make([]int64, n)
	for i := range out {
		v, err := d.Sample(src)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Uniform samples integers uniformly in [Start, End) (spec.md §4.2): a raw
// machine word is drawn from the CSPRNG, reduced by least-nonnegative
// remainder modulo (End-Start), then shifted by Start. This reduction is
// biased whenever (End-Start) is not a power of two; spec.md §9 "Randomness
// bias" accepts this for non-security-critical masks and for TC128-scale
// noise, but not for applications requiring unbiased sampling.
type Uniform struct {
	Start, End int64
}

// Ternary is the ternary distribution over {-1, 0, 1} with equal
// probabilities, used to sample secret keys and the ephemeral encryption
// polynomial u (spec.md §3, §4.3, §4.4). It is exactly Uniform{-1, 2} given
// its own named type for readability at call sites, mirroring the teacher's
// dedicated ring.Ternary distribution parameter.
type Ternary struct{}

// Gaussian implements the Box-Muller transform described in spec.md §4.2:
// draw u1, u2 uniformly in (0,1), return mu + sigma*sqrt(-2 ln u1)*cos(2 pi
// u2). Only one of the two values Box-Muller produces is used per call, as
// the spec specifies.
type Gaussian struct {
	Mu, Sigma float64
}

// Truncated rejection-samples Inner until the result lies in [Lo, Hi].
// spec.md §4.2: for TC128 the acceptance probability exceeds 0.999, so this
// loop is not explicitly bounded.
type Truncated struct {
	Inner  Distribution
	Lo, Hi float64
}

func (u Uniform) Sample(src *Source) (int64, error) {
	span := u.End - u.Start
	if span <= 0 {
		return u.Start, nil
	}
	raw, err := src.TryUint64()
	if err != nil {
		return 0, err
	}
	return u.Start + int64(raw%uint64(span)), nil
}

func (u Uniform) SampleN(n int) ([]int64, error) { return sampleN(u, n) }

func (Ternary) Sample(src *Source) (int64, error) {
	return Uniform{Start: -1, End: 2}.Sample(src)
}

func (t Ternary) SampleN(n int) ([]int64, error) { return sampleN(t, n) }

func (g Gaussian) Sample(src *Source) (int64, error) {
	u1, err := nonZeroUniformFloat(src)
	if err != nil {
		return 0, err
	}
	u2, err := src.Float64()
	if err != nil {
		return 0, err
	}
	v := g.Mu + g.Sigma*math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2)
	return int64(math.Round(v)), nil
}

func (g Gaussian) SampleN(n int) ([]int64, error) { return sampleN(g, n) }

// nonZeroUniformFloat draws a uniform value in (0,1), resampling the
// vanishingly unlikely case of an exact 0 so that math.Log never diverges.
func nonZeroUniformFloat(src *Source) (float64, error) {
	for {
		f, err := src.Float64()
		if err != nil {
			return 0, err
		}
		if f > 0 {
			return f, nil
		}
	}
}

func (t Truncated) Sample(src *Source) (int64, error) {
	for {
		v, err := t.Inner.Sample(src)
		if err != nil {
			return 0, err
		}
		f := float64(v)
		if f >= t.Lo && f <= t.Hi {
			return v, nil
		}
	}
}

func (t Truncated) SampleN(n int) ([]int64, error) { return sampleN(t, n) }

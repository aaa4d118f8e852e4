package ring

// Poly is an ordered sequence of coefficients in Z_p, interpreted as a
// polynomial in Z_p[X]/(X^N+1). The stored length may be shorter than N
// (trailing zeros implicit) or longer (not yet negacyclically folded); see
// spec.md §3. Two Polys compare Equal iff they agree pointwise after
// trailing-zero trimming.
type Poly []uint64

// New builds a Poly in the receiver's ring from raw coefficients: each
// coefficient is reduced mod P, then the result is negacyclically folded to
// length N (spec.md §4.1 "new(raw_coeffs)").
func (r *Ring) New(raw []int64) Poly {
	tmp := make(Poly, len(raw))
	for i, c := range raw {
		tmp[i] = CoeffReduce(c, r.P)
	}
	return r.fold(tmp)
}

// Degree returns the highest index with a non-zero coefficient, or -1 for
// the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Equal reports whether p and q agree pointwise once both are trimmed of
// trailing zero coefficients (spec.md §3, §8 scenario 6).
func (p Poly) Equal(q Poly) bool {
	n := max(len(p), len(q))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	q := make(Poly, len(p))
	copy(q, p)
	return q
}

// Add returns a+b, zero-padded to the longer operand's length (spec.md
// §4.1).
func (r *Ring) Add(a, b Poly) Poly {
	n := max(len(a), len(b))
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = CoeffAdd(x, y, r.P)
	}
	return out
}

// Sub returns a-b, zero-padded to the longer operand's length.
func (r *Ring) Sub(a, b Poly) Poly {
	n := max(len(a), len(b))
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		out[i] = CoeffSub(x, y, r.P)
	}
	return out
}

// Neg returns -a.
func (r *Ring) Neg(a Poly) Poly {
	out := make(Poly, len(a))
	for i := range a {
		out[i] = CoeffNeg(a[i], r.P)
	}
	return out
}

// Mul returns the schoolbook convolution of a and b folded negacyclically
// into the receiver's ring (spec.md §4.1). Either operand empty yields the
// empty polynomial, matching the edge case called out in spec.md §4.1.
func (r *Ring) Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{}
	}
	conv := make(Poly, len(a)+len(b)-1)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			conv[i+j] = CoeffAdd(conv[i+j], CoeffMul(ai, bj, r.P), r.P)
		}
	}
	return r.fold(conv)
}

// fold negacyclically reduces conv (of arbitrary length) into a polynomial
// of length exactly N, returned as a fresh slice (spec.md §4.1 rem_cyclo):
// the coefficient at raw index i accumulates with sign (-1)^floor(i/N) into
// position i mod N.
func (r *Ring) fold(conv Poly) Poly {
	if len(conv) <= r.N {
		out := make(Poly, r.N)
		copy(out, conv)
		return out
	}
	return r.foldNew(conv)
}

func (r *Ring) foldNew(conv Poly) Poly {
	N := r.N
	out := make(Poly, N)
	for i, c := range conv {
		if c == 0 {
			continue
		}
		pos := i % N
		if (i/N)%2 == 0 {
			out[pos] = CoeffAdd(out[pos], c, r.P)
		} else {
			out[pos] = CoeffSub(out[pos], c, r.P)
		}
	}
	return out
}

// Random samples a Poly of length N from the given Distribution.
func (r *Ring) Random(dist Distribution) (Poly, error) {
	raw, err := dist.SampleN(r.N)
	if err != nil {
		return nil, err
	}
	return r.New(raw), nil
}

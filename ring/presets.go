package ring

import "math"

// TC128Sigma and TC128Bound are the truncated-Gaussian parameters advised at
// 128-bit security (spec.md §3 "Gaussian-parameter preset TC128"):
// sigma = 8/sqrt(2*pi), bound = round(6*sigma) = 19.
var (
	TC128Sigma = 8 / math.Sqrt(2*math.Pi)
	TC128Bound = math.Round(6 * TC128Sigma)
)

// TC128 returns the truncated Gaussian noise distribution used for all
// sampling at 128-bit security.
func TC128() Truncated {
	return Truncated{
		Inner: Gaussian{Mu: 0, Sigma: TC128Sigma},
		Lo:    -TC128Bound,
		Hi:    TC128Bound,
	}
}

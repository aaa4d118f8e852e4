package ring

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of v, generic over any signed integer or
// floating-point type.
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

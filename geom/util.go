package geom

import "math"

// The two tolerance regimes, and why they differ: containment and convexity
// tests compare cross products of polygon-scale vectors, where 1e-9 absorbs
// accumulated rounding without misclassifying thin-but-real ears. Clip
// intersections divide by near-zero determinants at grazing angles, so the
// parallel cutoff must sit well below the containment tolerance or edges
// that should intersect get treated as parallel.
const (
	// Epsilon is the slack for convexity and containment tests.
	Epsilon = 1e-9

	// IntersectEpsilon is the cutoff below which an intersection
	// denominator counts as parallel.
	IntersectEpsilon = 1e-12
)

// Equal compares two coordinates with Epsilon slack.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// CircularIndex treats an array of length n as a ring. Unlike the raw modulo
// operator it only gives non-negative values, so negative offsets wrap the
// way you'd expect.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

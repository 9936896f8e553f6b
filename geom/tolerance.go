package geom

import "math"

// Epsilon is the absolute tolerance used by every comparison in this
// package and by callers (sweepevent, fortune, lloyd) that need
// a consistent numeric policy. Fixed double-precision arithmetic with
// a single tolerance parameter is deliberate here; certified or
// interval arithmetic is out of scope.
const Epsilon = 1e-10

// FCloseEnough reports whether a and b are equal within Epsilon.
func FCloseEnough(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// FNearZero reports whether a is within Epsilon of zero.
func FNearZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

// PointsCloseEnough reports whether p and q coincide within Epsilon on
// both axes.
func PointsCloseEnough(p, q Point) bool {
	return FCloseEnough(p.X, q.X) && FCloseEnough(p.Y, q.Y)
}

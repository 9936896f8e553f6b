package geom

import "math"

// Point is a 2-D point in double precision.
type Point struct {
	X float64
	Y float64
}

// Pt constructs a Point. Convenience constructor, mirrors the rest of
// the pack's Pt/Ed-style literals.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of p × q (treating both as 3-vectors
// with z=0).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Len returns the Euclidean length of p as a vector from the origin.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Normalize returns p scaled to unit length. If p is near the zero
// vector (within Epsilon), it is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Len()
	if FNearZero(l) {
		return p
	}
	return p.Scale(1 / l)
}

// Rotate90 returns p rotated 90 degrees counter-clockwise about the
// origin.
func (p Point) Rotate90() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Midpoint returns the midpoint of p and q.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// SignedArea computes twice the signed area of triangle (a, b, c):
// (b−a) × (c−a). Positive iff a, b, c are in counter-clockwise order.
func SignedArea(a, b, c Point) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac)
}

// FLeft reports whether p lies strictly to the left of the directed
// line a→b, i.e. whether a, b, p are counter-clockwise.
func FLeft(a, b, p Point) bool {
	return SignedArea(a, b, p) > 0
}

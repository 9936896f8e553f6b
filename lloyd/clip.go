package lloyd

import "github.com/arnsson/vorolath/geom"

// ClipConvex clips subject against the convex polygon window using the
// Sutherland-Hodgman algorithm: window is walked as a sequence of
// half-planes, one per edge, and subject is cut down to the
// intersection with each in turn. window may be wound either
// clockwise or counter-clockwise; ClipConvex determines its
// orientation from its signed area. A degenerate or empty result
// (subject entirely outside window, or window itself degenerate) is
// returned as a nil slice, not an error — colinear edges and
// zero-overlap are expected outcomes of clipping, not failures.
func ClipConvex(subject, window []geom.Point) ([]geom.Point, error) {
	if len(window) < 3 {
		return nil, ErrEmptyWindow
	}
	if len(subject) == 0 {
		return nil, nil
	}

	ccw := signedArea(window) > 0
	out := subject
	n := len(window)
	for i := 0; i < n && len(out) > 0; i++ {
		a := window[i]
		b := window[(i+1)%n]
		out = clipEdge(out, a, b, ccw)
	}
	return out, nil
}

// clipEdge clips poly against the half-plane to the left (if ccw) or
// right (if !ccw) of the directed edge a->b.
func clipEdge(poly []geom.Point, a, b geom.Point, ccw bool) []geom.Point {
	var out []geom.Point
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]

		curIn := inside(a, b, cur, ccw)
		prevIn := inside(a, b, prev, ccw)

		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur, a, b))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur, a, b))
		}
	}
	return out
}

func inside(a, b, p geom.Point, ccw bool) bool {
	side := b.Sub(a).Cross(p.Sub(a))
	if ccw {
		return side >= 0
	}
	return side <= 0
}

// intersect returns the point where segment p1-p2 crosses line a-b.
// Callers only invoke it when the two endpoints straddle the line, so
// the denominator is never zero in practice.
func intersect(p1, p2, a, b geom.Point) geom.Point {
	d1 := p2.Sub(p1)
	d2 := b.Sub(a)
	denom := d1.Cross(d2)
	t := a.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Scale(t))
}

// signedArea returns twice the polygon's signed area (shoelace
// formula); positive for a counter-clockwise winding.
func signedArea(poly []geom.Point) float64 {
	var sum float64
	n := len(poly)
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// centroid returns poly's area-weighted centroid via the shoelace
// formula. ok is false if the area is too close to zero for the
// centroid to be numerically meaningful.
func centroid(poly []geom.Point) (g geom.Point, ok bool) {
	n := len(poly)
	if n < 3 {
		return geom.Point{}, false
	}
	var areaSum, cx, cy float64
	for i := 0; i < n; i++ {
		p := poly[i]
		q := poly[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		areaSum += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if geom.FNearZero(areaSum) {
		return geom.Point{}, false
	}
	area := areaSum / 2
	cx /= 6 * area
	cy /= 6 * area
	return geom.Point{X: cx, Y: cy}, true
}

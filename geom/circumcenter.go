package geom

// FindCircumcenter returns the center of the circle through a, b, c
// and whether one exists. ok is false when a, b, c are collinear (or
// so close to it that the determinant is within Epsilon of zero); a
// caller that was hoping for a circle event treats that as "no event
// here", not as an error.
func FindCircumcenter(a, b, c Point) (center Point, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if FNearZero(d) {
		return Point{}, false
	}

	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	ux := (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d
	uy := (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d
	center = Point{X: ux, Y: uy}

	if !FCloseEnough(center.Dist(a), center.Dist(b)) {
		return Point{}, false
	}
	if !FCloseEnough(center.Dist(b), center.Dist(c)) {
		return Point{}, false
	}
	return center, true
}

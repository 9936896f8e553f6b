package geom

// quadrantCW classifies a direction vector into one of four quadrants
// ordered clockwise starting from the +y axis: NE=0, SE=1, SW=2, NW=3.
// The +y axis opens quadrant 0; each of the other three half-axes
// (+x, -y, -x) belongs to the quadrant that ends at it, so every
// direction falls in exactly one quadrant and the full clockwise sweep
// visits 0,1,2,3 in turn.
func quadrantCW(d Point) int {
	switch {
	case d.X >= 0 && d.Y >= 0:
		return 0
	case d.X >= 0 && d.Y < 0:
		return 1
	case d.X < 0 && d.Y <= 0:
		return 2
	default: // d.X < 0 && d.Y > 0
		return 3
	}
}

// CompareCW orders p and q by their angle from center, measured
// clockwise starting at +y. It returns a negative number if p comes
// before q in clockwise order, positive if q comes first, and zero if
// p and q lie on the same ray from center.
//
// Quadrants are compared first (cheap, four-way branch), and only
// vectors in the same quadrant fall through to the cross-product
// orientation test, avoiding a trigonometric atan2 call on the common
// case.
func CompareCW(center, p, q Point) int {
	dp := p.Sub(center)
	dq := q.Sub(center)

	qp := quadrantCW(dp)
	qq := quadrantCW(dq)
	if qp != qq {
		return qp - qq
	}

	cross := dp.Cross(dq)
	switch {
	case FNearZero(cross):
		return 0
	case cross < 0:
		return -1
	default:
		return 1
	}
}

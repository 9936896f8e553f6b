package geom

import "math"

// parabolaCoeffs returns (a, b, c) such that y = a*x^2 + b*x + c is the
// parabola with the given focus and directrix y = directrixY. Factored
// out as its own helper so ParabolicCut and ParabolaY share a single
// implementation.
func parabolaCoeffs(focus Point, directrixY float64) (a, b, c float64) {
	dp := 2 * (focus.Y - directrixY)
	a = 1 / dp
	b = -2 * focus.X / dp
	c = directrixY + dp/4 + focus.X*focus.X/dp
	return a, b, c
}

// ParabolaY evaluates the parabola with the given focus and directrix
// at x. The focus must not lie on the directrix.
func ParabolaY(focus Point, directrixY, x float64) float64 {
	a, b, c := parabolaCoeffs(focus, directrixY)
	return a*x*x + b*x + c
}

// ParabolicCut returns the x-coordinate of the rightward intersection
// of the two parabolas with foci f1, f2 and common directrix
// y = directrixY: when f1.Y >= f2.Y it returns the larger root,
// otherwise the smaller.
//
// Degenerate cases:
//   - f1 and f2 coincide (within Epsilon): ErrIdenticalSites.
//   - f1.Y == f2.Y (both off the directrix): the midpoint x.
//   - either focus lies on the directrix: that focus's x (its parabola
//     degenerates to the vertical line x = focus.X).
func ParabolicCut(f1, f2 Point, directrixY float64) (float64, error) {
	if PointsCloseEnough(f1, f2) {
		return 0, &IdenticalSitesError{A: f1, B: f2}
	}
	if FCloseEnough(f1.Y, directrixY) {
		return f1.X, nil
	}
	if FCloseEnough(f2.Y, directrixY) {
		return f2.X, nil
	}
	if FCloseEnough(f1.Y, f2.Y) {
		return (f1.X + f2.X) / 2, nil
	}

	a1, b1, c1 := parabolaCoeffs(f1, directrixY)
	a2, b2, c2 := parabolaCoeffs(f2, directrixY)

	a := a1 - a2
	b := b1 - b2
	c := c1 - c2
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0 // guard against tiny negative values from rounding
	}
	sq := math.Sqrt(disc)
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)

	if f1.Y >= f2.Y {
		if x1 > x2 {
			return x1, nil
		}
		return x2, nil
	}
	if x1 < x2 {
		return x1, nil
	}
	return x2, nil
}

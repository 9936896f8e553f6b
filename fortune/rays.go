package fortune

import (
	"fmt"

	"github.com/arl/assertgo"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// finalizeRays resolves every edge left with a brep.PendingInfinite
// endpoint once the sweep has dispatched its last event: these are
// the bisectors of neighbouring beach-line arcs that never converged
// to a Voronoi vertex, either because their two sites' cells are
// simply unbounded (a ray, one end already a real vertex) or because
// nothing ever bounded them at all (a full line, e.g. with only two
// input sites, or several exactly collinear ones).
func finalizeRays(b *brep.Builder, cfg *config) error {
	for _, eid := range b.PendingEdges() {
		e := b.Edge(eid)
		left := b.Polygon(e.PolyLeft).Site.Point
		right := b.Polygon(e.PolyRight).Site.Point

		dir := right.Sub(left)
		if geom.FNearZero(dir.Len()) {
			return fmt.Errorf("fortune: edge %d has coincident generating sites", eid)
		}
		perp := dir.Rotate90().Normalize()
		mid := geom.Midpoint(left, right)

		switch {
		case e.Start == brep.PendingInfinite && e.End == brep.PendingInfinite:
			// A full line: two distinct infinite vertices, one in each
			// direction along the bisector.
			v1 := b.AddInfiniteVertex(perp)
			v2 := b.AddInfiniteVertex(perp.Scale(-1))
			b.SetEdgeStart(eid, v1)
			b.SetEdgeEnd(eid, v2)

		case e.Start == brep.PendingInfinite:
			v := b.AddInfiniteVertex(outwardDirection(perp, mid, b.Vertex(e.End).Point))
			b.SetEdgeStart(eid, v)

		case e.End == brep.PendingInfinite:
			v := b.AddInfiniteVertex(outwardDirection(perp, mid, b.Vertex(e.Start).Point))
			b.SetEdgeEnd(eid, v)
		}

		if cfg.assertions {
			resolved := b.Edge(eid)
			assert.True(resolved.Start != brep.PendingInfinite && resolved.End != brep.PendingInfinite,
				"fortune: edge %d left unresolved after finalizeRays", eid)
		}
	}
	return nil
}

// outwardDirection picks the sign of perp that points away from the
// already-resolved finite endpoint, so the ray extends outward from
// the diagram's interior rather than folding back on itself.
func outwardDirection(perp, mid, finite geom.Point) geom.Point {
	if perp.Dot(finite.Sub(mid)) > 0 {
		return perp.Scale(-1)
	}
	return perp
}


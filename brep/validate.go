package brep

import "fmt"

// Validate checks every structural invariant a finalized WingedEdge
// must satisfy and returns every violation found, rather than
// stopping at the first. An empty result means the structure is
// consistent.
func (we *WingedEdge) Validate() []error {
	var errs []error

	if len(we.vertices) > 2*len(we.edges) {
		errs = append(errs, fmt.Errorf("%w: %d vertices, %d edges", ErrVertexEdgeBound, len(we.vertices), len(we.edges)))
	}

	for eid, e := range we.edges {
		if e.Start == PendingInfinite || e.End == PendingInfinite {
			errs = append(errs, fmt.Errorf("%w: edge %d has an unresolved endpoint", ErrPendingEdges, eid))
			continue
		}
		if int(e.Start) < 0 || int(e.Start) >= len(we.vertices) {
			errs = append(errs, fmt.Errorf("brep: edge %d has out-of-range start vertex %d", eid, e.Start))
		}
		if int(e.End) < 0 || int(e.End) >= len(we.vertices) {
			errs = append(errs, fmt.Errorf("brep: edge %d has out-of-range end vertex %d", eid, e.End))
		}
		if int(e.PolyLeft) < 0 || int(e.PolyLeft) >= len(we.polygons) {
			errs = append(errs, fmt.Errorf("brep: edge %d has out-of-range left polygon %d", eid, e.PolyLeft))
		}
		if int(e.PolyRight) < 0 || int(e.PolyRight) >= len(we.polygons) {
			errs = append(errs, fmt.Errorf("brep: edge %d has out-of-range right polygon %d", eid, e.PolyRight))
		}
	}

	for pid, poly := range we.polygons {
		n := len(poly.Edges)
		if n < 1 && !poly.AtInfinity {
			errs = append(errs, fmt.Errorf("brep: polygon %d has no boundary edges", pid))
			continue
		}
		for i := 0; i < n; i++ {
			a := poly.Edges[i]
			b := poly.Edges[(i+1)%n]
			if _, ok := we.sharedVertex(a, b); !ok {
				errs = append(errs, fmt.Errorf("%w: polygon %d, edges %d and %d", ErrDisjointRing, pid, a, b))
			}
		}
	}

	for eid, e := range we.edges {
		errs = append(errs, we.checkWing(EdgeID(eid), e.CWSucc, e.End, e.PolyLeft)...)
		errs = append(errs, we.checkWing(EdgeID(eid), e.CWPred, e.Start, e.PolyLeft)...)
		errs = append(errs, we.checkWing(EdgeID(eid), e.CCWPred, e.End, e.PolyRight)...)
		errs = append(errs, we.checkWing(EdgeID(eid), e.CCWSucc, e.Start, e.PolyRight)...)
	}

	return errs
}

// checkWing verifies that, if set, neighbor shares vertex v and also
// borders polygon p (as either its left or right side).
func (we *WingedEdge) checkWing(e, neighbor EdgeID, v VertexID, p PolygonID) []error {
	if neighbor == NoID {
		return nil
	}
	n := we.edges[neighbor]
	if n.Start != v && n.End != v {
		return []error{fmt.Errorf("%w: edge %d's neighbour %d does not share the expected vertex", ErrBrokenWing, e, neighbor)}
	}
	if n.PolyLeft != p && n.PolyRight != p {
		return []error{fmt.Errorf("%w: edge %d's neighbour %d does not border the expected polygon", ErrBrokenWing, e, neighbor)}
	}
	return nil
}

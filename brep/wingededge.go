package brep

import (
	"sort"

	"github.com/arnsson/vorolath/geom"
)

// WingedEdge is an immutable planar subdivision: a set of polygons,
// edges and vertices cross-referenced by arena handles, with every
// edge's four winged neighbour pointers filled in. Build one with
// Builder and Builder.Finalize.
type WingedEdge struct {
	polygons []Polygon
	edges    []Edge
	vertices []Vertex
}

// NewEmpty returns a WingedEdge with no polygons, edges or vertices —
// the result of relaxing, or computing a diagram for, zero sites.
func NewEmpty() *WingedEdge {
	return &WingedEdge{}
}

// Polygon, Edge and Vertex return a copy of the entity with the given
// ID. Callers holding an ID from one WingedEdge must not use it
// against another.
func (we *WingedEdge) Polygon(id PolygonID) Polygon { return we.polygons[id] }
func (we *WingedEdge) Edge(id EdgeID) Edge          { return we.edges[id] }
func (we *WingedEdge) Vertex(id VertexID) Vertex    { return we.vertices[id] }

// NumPolygons, NumEdges and NumVertices report the subdivision's size.
func (we *WingedEdge) NumPolygons() int { return len(we.polygons) }
func (we *WingedEdge) NumEdges() int    { return len(we.edges) }
func (we *WingedEdge) NumVertices() int { return len(we.vertices) }

// Polygons, Edges and Vertices return every ID in arena order. The
// returned slices are owned by the caller.
func (we *WingedEdge) Polygons() []PolygonID {
	ids := make([]PolygonID, len(we.polygons))
	for i := range ids {
		ids[i] = PolygonID(i)
	}
	return ids
}

func (we *WingedEdge) Edges() []EdgeID {
	ids := make([]EdgeID, len(we.edges))
	for i := range ids {
		ids[i] = EdgeID(i)
	}
	return ids
}

func (we *WingedEdge) Vertices() []VertexID {
	ids := make([]VertexID, len(we.vertices))
	for i := range ids {
		ids[i] = VertexID(i)
	}
	return ids
}

// FAtInfinity reports whether v is an infinite (direction-only)
// vertex.
func (we *WingedEdge) FAtInfinity(v VertexID) bool {
	return we.vertices[v].Infinite
}

// FRay reports whether edge e has exactly one infinite endpoint, i.e.
// it is a ray rather than a bounded segment or a full line.
func (we *WingedEdge) FRay(e EdgeID) bool {
	ed := we.edges[e]
	return we.FAtInfinity(ed.Start) != we.FAtInfinity(ed.End)
}

// FLine reports whether edge e has two infinite endpoints — the
// bisector of two sites whose cells touch no other cell, as happens
// with exactly two input sites, or with several collinear sites.
func (we *WingedEdge) FLine(e EdgeID) bool {
	ed := we.edges[e]
	return we.FAtInfinity(ed.Start) && we.FAtInfinity(ed.End)
}

// RealVertices returns polygon p's finite vertices, in boundary order,
// skipping any infinite endpoints. Useful for callers that only want
// to work with bounded cells.
func (we *WingedEdge) RealVertices(p PolygonID) []geom.Point {
	poly := we.polygons[p]
	pts := make([]geom.Point, 0, len(poly.Edges))
	seen := make(map[VertexID]bool, len(poly.Edges))
	for _, eid := range poly.Edges {
		e := we.edges[eid]
		for _, v := range [2]VertexID{e.Start, e.End} {
			if we.FAtInfinity(v) || seen[v] {
				continue
			}
			seen[v] = true
			pts = append(pts, we.vertices[v].Point)
		}
	}
	return pts
}

// BoxVertices returns polygon p's boundary as a closed ring of
// geom.Points, materializing each infinite vertex as a point rayLength
// units out from the polygon's site along its stored direction. Every
// distinct endpoint of the polygon's edges appears once, and the points
// are ordered clockwise around the site. The result is suitable for
// Sutherland-Hodgman clipping against a bounding window.
func (we *WingedEdge) BoxVertices(p PolygonID, rayLength float64) []geom.Point {
	poly := we.polygons[p]
	origin := poly.Site.Point
	pts := make([]geom.Point, 0, len(poly.Edges)+1)
	seen := make(map[VertexID]bool, len(poly.Edges)+1)
	for _, eid := range poly.Edges {
		e := we.edges[eid]
		for _, vid := range [2]VertexID{e.Start, e.End} {
			if v := we.vertices[vid]; !seen[vid] && v.Infinite {
				pts = append(pts, origin.Add(v.Point.Scale(rayLength)))
			} else if !seen[vid] {
				pts = append(pts, v.Point)
			}
			seen[vid] = true
		}
	}
	sort.Slice(pts, func(i, j int) bool { return geom.CompareCW(origin, pts[i], pts[j]) < 0 })
	return pts
}

// effectivePoint returns a point usable for angular sorting: the
// vertex's own location if finite, or a point far out along its
// direction from center if infinite.
func (we *WingedEdge) effectivePoint(v VertexID, center geom.Point) geom.Point {
	vtx := we.vertices[v]
	if vtx.Infinite {
		return center.Add(vtx.Point.Scale(1e6))
	}
	return vtx.Point
}

func (we *WingedEdge) buildPolygonRings() {
	for pid := range we.polygons {
		p := PolygonID(pid)
		poly := &we.polygons[pid]
		var incident []EdgeID
		for eid, e := range we.edges {
			if e.PolyLeft == p || e.PolyRight == p {
				incident = append(incident, EdgeID(eid))
			}
		}

		center := poly.Site.Point
		if poly.AtInfinity {
			center = geom.Point{}
		}
		mid := make(map[EdgeID]geom.Point, len(incident))
		for _, eid := range incident {
			e := we.edges[eid]
			mid[eid] = geom.Midpoint(we.effectivePoint(e.Start, center), we.effectivePoint(e.End, center))
		}
		sortEdgesCW(incident, center, mid)
		poly.Edges = incident
	}
}

func (we *WingedEdge) buildVertexRings() {
	for vid := range we.vertices {
		v := VertexID(vid)
		vtx := &we.vertices[vid]
		var incident []EdgeID
		for eid, e := range we.edges {
			if e.Start == v || e.End == v {
				incident = append(incident, EdgeID(eid))
			}
		}

		center := vtx.Point
		mid := make(map[EdgeID]geom.Point, len(incident))
		for _, eid := range incident {
			e := we.edges[eid]
			other := e.Start
			if other == v {
				other = e.End
			}
			mid[eid] = we.effectivePoint(other, center)
		}
		sortEdgesCW(incident, center, mid)
		vtx.Edges = incident
	}
}

// sortEdgesCW sorts ids in place by the clockwise angle, from center,
// of each edge's representative point in reps.
func sortEdgesCW(ids []EdgeID, center geom.Point, reps map[EdgeID]geom.Point) {
	for i := 1; i < len(ids); i++ {
		j := i
		for j > 0 && geom.CompareCW(center, reps[ids[j-1]], reps[ids[j]]) > 0 {
			ids[j-1], ids[j] = ids[j], ids[j-1]
			j--
		}
	}
}

// attachWingedPointers fills the four neighbour pointers of every edge
// by walking each polygon's clockwise ring and, for each pair of
// consecutive ring edges, assigning each one the appropriate slot
// based on which side of it the polygon sits on and which of its own
// endpoints the pair's shared vertex is.
func (we *WingedEdge) attachWingedPointers() {
	for pid := range we.polygons {
		p := PolygonID(pid)
		ring := we.polygons[pid].Edges
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			v, ok := we.sharedVertex(a, b)
			if !ok {
				continue // left for Validate to report
			}
			we.assignSlot(a, p, v, b)
			we.assignSlot(b, p, v, a)
		}
	}
}

func (we *WingedEdge) sharedVertex(a, b EdgeID) (VertexID, bool) {
	ea, eb := we.edges[a], we.edges[b]
	switch {
	case ea.Start == eb.Start || ea.Start == eb.End:
		return ea.Start, true
	case ea.End == eb.Start || ea.End == eb.End:
		return ea.End, true
	default:
		return 0, false
	}
}

// assignSlot sets the one neighbour field of edge e, as seen from
// polygon p, that corresponds to e touching vertex v — left+end ->
// CWSucc, left+start -> CWPred, right+end -> CCWPred, right+start ->
// CCWSucc — and points it at neighbor.
func (we *WingedEdge) assignSlot(e EdgeID, p PolygonID, v VertexID, neighbor EdgeID) {
	ed := &we.edges[e]
	isLeft := ed.PolyLeft == p
	touchesEnd := ed.End == v
	switch {
	case isLeft && touchesEnd:
		ed.CWSucc = neighbor
	case isLeft && !touchesEnd:
		ed.CWPred = neighbor
	case !isLeft && touchesEnd:
		ed.CCWPred = neighbor
	default:
		ed.CCWSucc = neighbor
	}
}

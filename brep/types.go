package brep

import "github.com/arnsson/vorolath/geom"

// PolygonID, EdgeID and VertexID are arena indices into a WingedEdge.
// A value of -1 (NoID) means "no such entity" — the zero value of the
// type is a valid index (0), so the sentinel cannot be the zero value.
type (
	PolygonID int
	EdgeID    int
	VertexID  int
)

// NoID is the sentinel stored in place of a missing neighbour
// reference, e.g. an edge's CWSucc before winged pointers are
// attached.
const NoID = -1

// Vertex is a node of the subdivision: either a finite point (a
// circumcenter discovered by a circle event or a box corner added
// during clipping) or a direction vector for an infinite ray or line.
type Vertex struct {
	// Point is a location when Infinite is false, or a unit direction
	// vector away from the diagram's interior when Infinite is true.
	Point    geom.Point
	Infinite bool

	// Edges lists the vertex's incident edges in clockwise order
	// around Point (or, for an infinite vertex, around the direction
	// it represents). Populated by Builder.Finalize.
	Edges []EdgeID
}

// Edge is a bisector segment, ray, or full line separating two
// polygons. Start and End are always set on a finalized WingedEdge;
// during construction they may hold PendingInfinite until ray
// finalization resolves them to an actual infinite Vertex.
type Edge struct {
	Start, End          VertexID
	PolyLeft, PolyRight PolygonID

	// The four winged neighbour pointers, filled by Builder.Finalize.
	// CWSucc/CWPred walk the ring in which this edge and its neighbour
	// touch sharing PolyLeft; CCWSucc/CCWPred mirror that for
	// PolyRight. See WingedEdge.attachWingedPointers.
	CWSucc, CWPred   EdgeID
	CCWSucc, CCWPred EdgeID
}

// Polygon is a single Voronoi cell, or — exactly one per diagram —
// the unbounded polygon at infinity that closes the subdivision.
type Polygon struct {
	Site       Site
	AtInfinity bool

	// Edges lists the polygon's boundary edges in clockwise order.
	// Populated by Builder.Finalize.
	Edges []EdgeID
}

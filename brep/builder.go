package brep

import (
	"errors"
	"fmt"

	"github.com/arnsson/vorolath/geom"
)

// Builder accumulates polygons, vertices and edges incrementally while
// the sweep runs, then produces an immutable WingedEdge once every
// edge endpoint has been resolved. A Builder's zero value is not
// usable; construct one with NewBuilder.
type Builder struct {
	polygons []Polygon
	edges    []Edge
	vertices []Vertex
}

// NewBuilder returns an empty Builder with room for roughly n sites.
func NewBuilder(n int) *Builder {
	return &Builder{
		polygons: make([]Polygon, 0, n+1),
		edges:    make([]Edge, 0, 3*n),
		vertices: make([]Vertex, 0, 2*n),
	}
}

// AddPolygon registers a new Voronoi cell for site and returns its ID.
func (b *Builder) AddPolygon(site Site) PolygonID {
	id := PolygonID(len(b.polygons))
	b.polygons = append(b.polygons, Polygon{Site: site})
	return id
}

// AddInfinityPolygon registers the single unbounded polygon that
// closes the subdivision and returns its ID. Callers add it at most
// once per diagram.
func (b *Builder) AddInfinityPolygon() PolygonID {
	id := PolygonID(len(b.polygons))
	b.polygons = append(b.polygons, Polygon{AtInfinity: true})
	return id
}

// AddVertex registers a finite vertex at p and returns its ID.
func (b *Builder) AddVertex(p geom.Point) VertexID {
	id := VertexID(len(b.vertices))
	b.vertices = append(b.vertices, Vertex{Point: p})
	return id
}

// AddInfiniteVertex registers an infinite vertex whose Point is the
// unit direction away from the diagram's interior, and returns its ID.
func (b *Builder) AddInfiniteVertex(direction geom.Point) VertexID {
	id := VertexID(len(b.vertices))
	b.vertices = append(b.vertices, Vertex{Point: direction, Infinite: true})
	return id
}

// AddEdge registers a new edge between start and end, bounded on the
// left by left and on the right by right, and returns its ID. start
// and/or end may be PendingInfinite; the caller must later resolve
// them with SetEdgeStart/SetEdgeEnd before calling Finalize.
func (b *Builder) AddEdge(start, end VertexID, left, right PolygonID) EdgeID {
	id := EdgeID(len(b.edges))
	b.edges = append(b.edges, Edge{
		Start: start, End: end,
		PolyLeft: left, PolyRight: right,
		CWSucc: NoID, CWPred: NoID, CCWSucc: NoID, CCWPred: NoID,
	})
	return id
}

// SetEdgeStart resolves edge e's start endpoint.
func (b *Builder) SetEdgeStart(e EdgeID, start VertexID) {
	b.edges[e].Start = start
}

// SetEdgeEnd resolves edge e's end endpoint.
func (b *Builder) SetEdgeEnd(e EdgeID, end VertexID) {
	b.edges[e].End = end
}

// Edge returns a copy of edge e's current state.
func (b *Builder) Edge(e EdgeID) Edge { return b.edges[e] }

// Polygon returns a copy of polygon p's current state.
func (b *Builder) Polygon(p PolygonID) Polygon { return b.polygons[p] }

// Vertex returns a copy of vertex v's current state.
func (b *Builder) Vertex(v VertexID) Vertex { return b.vertices[v] }

// NumPolygons, NumEdges and NumVertices report the arena's current
// size.
func (b *Builder) NumPolygons() int { return len(b.polygons) }
func (b *Builder) NumEdges() int    { return len(b.edges) }
func (b *Builder) NumVertices() int { return len(b.vertices) }

// PendingEdges returns the IDs of every edge that still has a
// PendingInfinite endpoint, for ray finalization to resolve.
func (b *Builder) PendingEdges() []EdgeID {
	var pending []EdgeID
	for i, e := range b.edges {
		if e.Start == PendingInfinite || e.End == PendingInfinite {
			pending = append(pending, EdgeID(i))
		}
	}
	return pending
}

// Finalize sorts each polygon's and vertex's incident edges into
// clockwise order, fills in the four winged neighbour pointers per
// edge, and returns the resulting immutable WingedEdge. It fails if
// any edge still has a pending endpoint, or if the result does not
// satisfy Validate.
func (b *Builder) Finalize() (*WingedEdge, error) {
	if pending := b.PendingEdges(); len(pending) > 0 {
		return nil, fmt.Errorf("%w: %d edge(s)", ErrPendingEdges, len(pending))
	}

	we := &WingedEdge{
		polygons: append([]Polygon(nil), b.polygons...),
		edges:    append([]Edge(nil), b.edges...),
		vertices: append([]Vertex(nil), b.vertices...),
	}

	we.buildPolygonRings()
	we.buildVertexRings()
	we.attachWingedPointers()

	if errs := we.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return we, nil
}

package fortune

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// attachPolygonAtInfinity closes the subdivision: it collects every
// infinite vertex created by finalizeRays, orders them clockwise
// around the diagram, and connects consecutive pairs with virtual
// edges bounding a single polygon-at-infinity on both sides. A
// diagram of a single site has no rays at all, so it gets a minimal
// one-edge ring instead: a line through two infinite vertices in
// opposite, arbitrary directions, bounding the sole real polygon on
// one side and the polygon at infinity on the other.
func attachPolygonAtInfinity(b *brep.Builder) {
	var rays []brep.VertexID
	for i := 0; i < b.NumVertices(); i++ {
		v := brep.VertexID(i)
		if b.Vertex(v).Infinite {
			rays = append(rays, v)
		}
	}

	if len(rays) == 0 {
		attachSingleSiteRing(b)
		return
	}
	if len(rays) < 2 {
		return
	}

	sortRaysCW(b, rays)
	infinityPoly := b.AddInfinityPolygon()
	for i := range rays {
		a := rays[i]
		c := rays[(i+1)%len(rays)]
		b.AddEdge(a, c, infinityPoly, infinityPoly)
	}
}

// attachSingleSiteRing handles the single-site diagram: there is
// exactly one real polygon and no bisector to derive a boundary
// direction from, so it is closed with a line along an arbitrary
// axis.
func attachSingleSiteRing(b *brep.Builder) {
	if b.NumPolygons() != 1 {
		return
	}
	realPoly := brep.PolygonID(0)
	infinityPoly := b.AddInfinityPolygon()

	axis := geom.Pt(1, 0)
	v1 := b.AddInfiniteVertex(axis)
	v2 := b.AddInfiniteVertex(axis.Scale(-1))
	b.AddEdge(v1, v2, realPoly, infinityPoly)
}

func sortRaysCW(b *brep.Builder, ids []brep.VertexID) {
	origin := geom.Point{}
	for i := 1; i < len(ids); i++ {
		j := i
		for j > 0 && geom.CompareCW(origin, b.Vertex(ids[j-1]).Point, b.Vertex(ids[j]).Point) > 0 {
			ids[j-1], ids[j] = ids[j], ids[j-1]
			j--
		}
	}
}

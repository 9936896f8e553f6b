package lloyd

import (
	"github.com/tidwall/rtree"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// CellIndex is a spatial index over a diagram's clipped cell
// boundaries, so a repeated-relaxation caller can answer "which cell
// contains point p" without scanning every polygon. Building one is
// optional: Relax never constructs or consults a CellIndex itself.
type CellIndex struct {
	tree  rtree.RTreeG[brep.PolygonID]
	cells map[brep.PolygonID][]geom.Point
}

// NewCellIndex clips every polygon of we except the polygon at
// infinity to window (infinite vertices extended to rayLength) and
// indexes the results by bounding box.
func NewCellIndex(we *brep.WingedEdge, window []geom.Point, rayLength float64) *CellIndex {
	idx := &CellIndex{cells: make(map[brep.PolygonID][]geom.Point)}

	for _, pid := range we.Polygons() {
		poly := we.Polygon(pid)
		if poly.AtInfinity {
			continue
		}
		box := we.BoxVertices(pid, rayLength)
		clipped, err := ClipConvex(box, window)
		if err != nil || len(clipped) == 0 {
			continue
		}

		idx.cells[pid] = clipped
		min, max := bounds(clipped)
		idx.tree.Insert(min, max, pid)
	}
	return idx
}

// Query returns every indexed cell whose bounding box contains p.
// Since the index only tracks bounding boxes, not exact polygon
// outlines, callers needing a precise point-in-cell test should
// follow up with their own containment check against the returned
// cells' vertices (available via Cell).
func (idx *CellIndex) Query(p geom.Point) []brep.PolygonID {
	var hits []brep.PolygonID
	pt := [2]float64{p.X, p.Y}
	idx.tree.Search(pt, pt, func(min, max [2]float64, pid brep.PolygonID) bool {
		hits = append(hits, pid)
		return true
	})
	return hits
}

// Cell returns the clipped boundary previously indexed for pid, and
// whether one was stored (false for the polygon at infinity or a
// fully-clipped-away polygon).
func (idx *CellIndex) Cell(pid brep.PolygonID) ([]geom.Point, bool) {
	pts, ok := idx.cells[pid]
	return pts, ok
}

// Len reports how many cells are indexed.
func (idx *CellIndex) Len() int {
	return idx.tree.Len()
}

func bounds(pts []geom.Point) (min, max [2]float64) {
	min = [2]float64{pts[0].X, pts[0].Y}
	max = min
	for _, p := range pts[1:] {
		if p.X < min[0] {
			min[0] = p.X
		}
		if p.Y < min[1] {
			min[1] = p.Y
		}
		if p.X > max[0] {
			max[0] = p.X
		}
		if p.Y > max[1] {
			max[1] = p.Y
		}
	}
	return min, max
}

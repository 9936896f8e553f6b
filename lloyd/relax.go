package lloyd

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/geom"
)

// Relax performs one step of Lloyd relaxation on we: each cell other
// than the polygon at infinity is materialized (infinite vertices extended to rayLength),
// clipped to window, and its site moved alpha of the way toward the
// clipped cell's centroid. The diagram is then rebuilt from scratch
// from the moved sites, since WingedEdge has no notion of an
// in-place site move.
//
// A cell that clips away entirely keeps its original site for this
// iteration rather than failing the whole relaxation.
func Relax(we *brep.WingedEdge, window []geom.Point, rayLength, alpha float64) (*brep.WingedEdge, error) {
	if len(window) < 3 {
		return nil, ErrEmptyWindow
	}

	sites := make([]brep.Site, 0, we.NumPolygons())
	for _, pid := range we.Polygons() {
		poly := we.Polygon(pid)
		if poly.AtInfinity {
			continue
		}

		site := poly.Site
		box := we.BoxVertices(pid, rayLength)
		clipped, err := ClipConvex(box, window)
		if err == nil {
			if g, ok := centroid(clipped); ok {
				site.Point = site.Point.Add(g.Sub(site.Point).Scale(alpha))
			}
		}
		sites = append(sites, site)
	}

	return fortune.ComputeVoronoi(sites)
}

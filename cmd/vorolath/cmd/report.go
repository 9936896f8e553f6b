package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arnsson/vorolath/brep"
)

// diagramReport is the JSON shape written by build and relax: entity
// counts, the site points, and each polygon's edge count. It holds no
// vertex or edge geometry.
type diagramReport struct {
	NumSites    int            `json:"numSites"`
	NumPolygons int            `json:"numPolygons"`
	NumEdges    int            `json:"numEdges"`
	NumVertices int            `json:"numVertices"`
	Sites       []geomPoint    `json:"sites"`
	Polygons    []polygonEntry `json:"polygons"`
}

type geomPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type polygonEntry struct {
	Site       geomPoint `json:"site"`
	AtInfinity bool      `json:"atInfinity"`
	NumEdges   int       `json:"numEdges"`
}

func buildReport(we *brep.WingedEdge) diagramReport {
	r := diagramReport{
		NumPolygons: we.NumPolygons(),
		NumEdges:    we.NumEdges(),
		NumVertices: we.NumVertices(),
	}
	for _, pid := range we.Polygons() {
		poly := we.Polygon(pid)
		if !poly.AtInfinity {
			r.NumSites++
			r.Sites = append(r.Sites, geomPoint{X: poly.Site.Point.X, Y: poly.Site.Point.Y})
		}
		r.Polygons = append(r.Polygons, polygonEntry{
			Site:       geomPoint{X: poly.Site.Point.X, Y: poly.Site.Point.Y},
			AtInfinity: poly.AtInfinity,
			NumEdges:   len(poly.Edges),
		})
	}
	return r
}

func printSummary(w io.Writer, we *brep.WingedEdge) {
	fmt.Fprintf(w, "polygons: %d  edges: %d  vertices: %d\n",
		we.NumPolygons(), we.NumEdges(), we.NumVertices())
}

func writeReport(path string, we *brep.WingedEdge) error {
	buf, err := json.MarshalIndent(buildReport(we), "", "  ")
	if err != nil {
		return fmt.Errorf("vorolath: %w", err)
	}
	return writeFile(path, buf)
}

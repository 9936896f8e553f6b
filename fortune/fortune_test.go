package fortune

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

func sitesAt(points ...geom.Point) []brep.Site {
	sites := make([]brep.Site, len(points))
	for i, p := range points {
		sites[i] = brep.Site{Point: p}
	}
	return sites
}

func TestComputeVoronoi_NoSites(t *testing.T) {
	we, err := ComputeVoronoi(nil)
	require.NoError(t, err)
	assert.Zero(t, we.NumPolygons())
	assert.Zero(t, we.NumEdges())
	assert.Zero(t, we.NumVertices())
}

func TestComputeVoronoi_DuplicateSites(t *testing.T) {
	sites := sitesAt(geom.Pt(0, 0), geom.Pt(0, 1e-12))
	_, err := ComputeVoronoi(sites)

	var dup *DuplicateSiteError
	require.True(t, errors.As(err, &dup), "err = %v; want *DuplicateSiteError", err)
	assert.Equal(t, 0, dup.I)
	assert.Equal(t, 1, dup.J)
}

func TestComputeVoronoi_SingleSite(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(geom.Pt(5, 5)))
	require.NoError(t, err)
	assert.Equal(t, 2, we.NumPolygons(), "want 1 cell + 1 at infinity")

	for _, v := range we.Vertices() {
		assert.True(t, we.Vertex(v).Infinite, "single-site diagram should have no finite vertices")
	}

	var realEdges int
	for _, p := range we.Polygons() {
		if we.Polygon(p).AtInfinity {
			continue
		}
		realEdges += len(we.Polygon(p).Edges)
	}
	assert.Equal(t, 1, realEdges, "the sole cell's minimal ring should carry exactly one edge at infinity")
}

func TestComputeVoronoi_TwoSites(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(geom.Pt(0, 0), geom.Pt(2, 0)))
	require.NoError(t, err)
	assert.Equal(t, 3, we.NumPolygons(), "want 2 cells + 1 at infinity")
	assert.Equal(t, 2, we.NumVertices(), "want the bisector's two infinite endpoints")
	assert.Equal(t, 3, we.NumEdges(), "want the bisector plus two arcs at infinity")

	for _, p := range we.Polygons() {
		if we.Polygon(p).AtInfinity {
			continue
		}
		assert.Len(t, we.Polygon(p).Edges, 1, "real polygon %d", p)
	}
}

func TestComputeVoronoi_TriangleProducesOneVertex(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(geom.Pt(2, 5), geom.Pt(4, 1), geom.Pt(0, 0)))
	require.NoError(t, err)
	require.Equal(t, 4, we.NumVertices(), "a 3-site diagram should have 1 finite Voronoi vertex plus 3 infinite ray endpoints")
	assert.Equal(t, 4, we.NumPolygons(), "want 3 cells + 1 at infinity")

	for _, p := range we.Polygons() {
		if we.Polygon(p).AtInfinity {
			continue
		}
		assert.GreaterOrEqual(t, len(we.Polygon(p).Edges), 2, "real polygon %d", p)
	}
}

func TestComputeVoronoi_SquareProducesOneVertex(t *testing.T) {
	// Four co-circular sites: the classic degenerate case where two
	// circle events would predict the same vertex at the same instant.
	we, err := ComputeVoronoi(sitesAt(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)))
	require.NoError(t, err)
	assert.Equal(t, 5, we.NumPolygons(), "want 4 cells + 1 at infinity")
}

// TestComputeVoronoi_EquilateralTriangle exercises the literal
// three-site case: sites (0,0), (2,0), (1,√3) meet at their common
// circumcenter, the centroid (1, √3/3).
func TestComputeVoronoi_EquilateralTriangle(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(1, math.Sqrt(3))))
	require.NoError(t, err)
	assert.Equal(t, 4, we.NumPolygons(), "want 3 cells + 1 at infinity")

	var centers int
	for _, vid := range we.Vertices() {
		v := we.Vertex(vid)
		if v.Infinite {
			continue
		}
		centers++
		assert.InDelta(t, 1, v.Point.X, 1e-9)
		assert.InDelta(t, math.Sqrt(3)/3, v.Point.Y, 1e-9)
		assert.Len(t, v.Edges, 3, "three bisectors should meet at the centroid")
	}
	assert.Equal(t, 1, centers, "want exactly one finite vertex")
}

// TestComputeVoronoi_UnitSquare exercises the literal four-site case:
// sites (0,0),(1,0),(0,1),(1,1) meet at their common circumcenter
// (0.5, 0.5).
func TestComputeVoronoi_UnitSquare(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(1, 1)))
	require.NoError(t, err)
	assert.Equal(t, 5, we.NumPolygons(), "want 4 cells + 1 at infinity")

	var centers int
	for _, vid := range we.Vertices() {
		v := we.Vertex(vid)
		if v.Infinite {
			continue
		}
		centers++
		assert.InDelta(t, 0.5, v.Point.X, 1e-9)
		assert.InDelta(t, 0.5, v.Point.Y, 1e-9)
		assert.Len(t, v.Edges, 4, "four bisectors should meet at the square's center")
	}
	assert.Equal(t, 1, centers, "want exactly one finite vertex")
}

// TestComputeVoronoi_FiveCollinear exercises five sites on the x-axis:
// every bisector is a vertical line, and no circle event ever fires
// since no three sites are non-collinear.
func TestComputeVoronoi_FiveCollinear(t *testing.T) {
	we, err := ComputeVoronoi(sitesAt(
		geom.Pt(-2, 0), geom.Pt(-1, 0), geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0),
	))
	require.NoError(t, err)
	assert.Equal(t, 6, we.NumPolygons(), "want 5 cells + 1 at infinity")

	for _, v := range we.Vertices() {
		assert.True(t, we.Vertex(v).Infinite, "collinear sites produce no finite vertices")
	}

	var xs []float64
	for _, eid := range we.Edges() {
		e := we.Edge(eid)
		left, right := we.Polygon(e.PolyLeft), we.Polygon(e.PolyRight)
		if left.AtInfinity || right.AtInfinity {
			continue
		}
		require.True(t, we.FLine(eid), "every real bisector among collinear sites is a full line")
		xs = append(xs, geom.Midpoint(left.Site.Point, right.Site.Point).X)
	}

	assert.ElementsMatch(t, []float64{-1.5, -0.5, 0.5, 1.5}, roundAll(xs))
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = math.Round(x*1e9) / 1e9
	}
	return out
}

// TestComputeVoronoi_Hexagon12 exercises a regular 12-point ring
// (radius 50, spaced 30° apart): the diagram must validate, every
// input site gets its own cell, and no interior cell can have more
// than 6 edges (each cell borders at most 2 neighbours per adjacent
// pair of rays around the ring).
func TestComputeVoronoi_Hexagon12(t *testing.T) {
	sites := sitesAt(
		geom.Pt(50, 0), geom.Pt(-50, 0),
		geom.Pt(40, 30), geom.Pt(40, -30), geom.Pt(-40, 30), geom.Pt(-40, -30),
		geom.Pt(30, 40), geom.Pt(30, -40), geom.Pt(-30, 40), geom.Pt(-30, -40),
		geom.Pt(0, 50), geom.Pt(0, -50),
	)
	we, err := ComputeVoronoi(sites)
	require.NoError(t, err)
	assert.Equal(t, 13, we.NumPolygons(), "want 12 cells + 1 at infinity")

	for _, p := range we.Polygons() {
		if we.Polygon(p).AtInfinity {
			continue
		}
		assert.LessOrEqual(t, len(we.Polygon(p).Edges), 6, "real polygon %d", p)
	}
}

func TestComputeVoronoi_WithVerbose(t *testing.T) {
	_, err := ComputeVoronoi(sitesAt(geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0)), WithVerbose(true))
	assert.NoError(t, err)
}

func TestComputeVoronoi_WithAssertions(t *testing.T) {
	sites := sitesAt(geom.Pt(0, 0), geom.Pt(3, 2), geom.Pt(6, 0), geom.Pt(3, 5))
	_, err := ComputeVoronoi(sites, WithAssertions(true))
	assert.NoError(t, err)
}

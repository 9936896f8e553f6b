package brep

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/geom"
)

func twoSiteLine(t *testing.T) (*WingedEdge, PolygonID, PolygonID, EdgeID) {
	t.Helper()
	b := NewBuilder(2)
	p1 := b.AddPolygon(Site{Point: geom.Pt(0, 0)})
	p2 := b.AddPolygon(Site{Point: geom.Pt(2, 0)})
	vDown := b.AddInfiniteVertex(geom.Pt(0, -1))
	vUp := b.AddInfiniteVertex(geom.Pt(0, 1))
	e := b.AddEdge(vDown, vUp, p1, p2)

	we, err := b.Finalize()
	require.NoError(t, err)
	return we, p1, p2, e
}

func TestBuilder_TwoSiteLine(t *testing.T) {
	we, p1, p2, e := twoSiteLine(t)

	assert.True(t, we.FLine(e), "FLine should be true for a both-ends-infinite edge")
	assert.False(t, we.FRay(e), "FRay should be false for a full line")

	assert.Equal(t, []EdgeID{e}, we.Polygon(p1).Edges)
	assert.Equal(t, []EdgeID{e}, we.Polygon(p2).Edges)
}

func TestBuilder_PendingEdgeBlocksFinalize(t *testing.T) {
	b := NewBuilder(2)
	p1 := b.AddPolygon(Site{Point: geom.Pt(0, 0)})
	p2 := b.AddPolygon(Site{Point: geom.Pt(2, 0)})
	b.AddEdge(PendingInfinite, PendingInfinite, p1, p2)

	_, err := b.Finalize()
	assert.ErrorIs(t, err, ErrPendingEdges)
}

func TestEdgeEnumerator_WalksIncidentEdges(t *testing.T) {
	we, _, _, e := twoSiteLine(t)

	vUp := we.Edge(e).End
	ee := we.NewEdgeEnumerator(vUp)
	require.True(t, ee.MoveNext(), "MoveNext() should be true on the first call")
	assert.Equal(t, e, ee.Current())
	assert.False(t, ee.MoveNext(), "vertex has only one incident edge")

	ee.Reset()
	assert.True(t, ee.MoveNext(), "MoveNext() after Reset() should be true")
}

func TestPolyEnumerator_ResetGoesBeforeFirst(t *testing.T) {
	we, p1, _, e := twoSiteLine(t)
	vUp := we.Edge(e).End

	pe := we.NewPolyEnumerator(vUp)
	pe.Reset()
	require.True(t, pe.MoveNext(), "MoveNext() after Reset() should be true")
	assert.Equal(t, p1, pe.Current())
}

func TestValidate_DetectsDisjointRing(t *testing.T) {
	we := &WingedEdge{
		polygons: []Polygon{{Edges: []EdgeID{0, 1}}},
		vertices: []Vertex{{Point: geom.Pt(0, 0)}, {Point: geom.Pt(1, 0)}, {Point: geom.Pt(5, 5)}, {Point: geom.Pt(6, 6)}},
		edges: []Edge{
			{Start: 0, End: 1, PolyLeft: 0, PolyRight: 0, CWSucc: NoID, CWPred: NoID, CCWSucc: NoID, CCWPred: NoID},
			{Start: 2, End: 3, PolyLeft: 0, PolyRight: 0, CWSucc: NoID, CWPred: NoID, CCWSucc: NoID, CCWPred: NoID},
		},
	}

	errs := we.Validate()
	require.NotEmpty(t, errs, "want ErrDisjointRing for a ring whose edges share no vertex")

	found := false
	for _, err := range errs {
		if errors.Is(err, ErrDisjointRing) {
			found = true
		}
	}
	assert.True(t, found, "Validate() errors = %v; want one wrapping ErrDisjointRing", errs)
}

func TestValidate_DetectsVertexEdgeBoundViolation(t *testing.T) {
	we := &WingedEdge{
		polygons: []Polygon{{Edges: []EdgeID{0}}},
		vertices: []Vertex{{Point: geom.Pt(0, 0)}, {Point: geom.Pt(1, 0)}, {Point: geom.Pt(2, 0)}},
		edges: []Edge{
			{Start: 0, End: 1, PolyLeft: 0, PolyRight: 0, CWSucc: NoID, CWPred: NoID, CCWSucc: NoID, CCWPred: NoID},
		},
	}

	errs := we.Validate()
	require.NotEmpty(t, errs, "want ErrVertexEdgeBound for 3 vertices and 1 edge")

	found := false
	for _, err := range errs {
		if errors.Is(err, ErrVertexEdgeBound) {
			found = true
		}
	}
	assert.True(t, found, "Validate() errors = %v; want one wrapping ErrVertexEdgeBound", errs)
}

func TestNewEmpty(t *testing.T) {
	we := NewEmpty()
	assert.Zero(t, we.NumPolygons())
	assert.Zero(t, we.NumEdges())
	assert.Zero(t, we.NumVertices())
}

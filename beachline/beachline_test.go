package beachline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

func TestBeachline_SingleArc(t *testing.T) {
	b := brep.NewBuilder(1)
	p := b.AddPolygon(brep.Site{Point: geom.Pt(0, 0)})

	bl := New()
	assert.True(t, bl.Empty(), "Empty() before any insert")
	bl.InsertFirst(p)
	assert.False(t, bl.Empty(), "Empty() after InsertFirst")

	arc, err := bl.FindArcAbove(b, 5, 100)
	require.NoError(t, err)
	assert.Equal(t, p, arc.Poly)
}

func TestBeachline_InsertSplitsArc(t *testing.T) {
	b := brep.NewBuilder(2)
	p1 := b.AddPolygon(brep.Site{Point: geom.Pt(0, 10)})
	p2 := b.AddPolygon(brep.Site{Point: geom.Pt(0, 5)})

	bl := New()
	first := bl.InsertFirst(p1)

	above, err := bl.FindArcAbove(b, 0, 5)
	require.NoError(t, err)
	assert.Same(t, first, above, "FindArcAbove() with one arc should always return it")

	newArc, edge := bl.InsertArc(b, above, p2)
	assert.Equal(t, p2, newArc.Poly)
	assert.NotEqual(t, brep.NoID, edge)
	require.NotNil(t, newArc.Prev)
	require.NotNil(t, newArc.Next)
	assert.Equal(t, p1, newArc.Prev.Poly)
	assert.Equal(t, p1, newArc.Next.Poly)

	left, err := bl.FindArcAbove(b, -100, 4)
	require.NoError(t, err)
	assert.Equal(t, p1, left.Poly, "far left at y=4 should still resolve to p1's arc")
}

func TestBeachline_RemoveArcMergesBreakpoint(t *testing.T) {
	b := brep.NewBuilder(3)
	p1 := b.AddPolygon(brep.Site{Point: geom.Pt(-10, 10)})
	p2 := b.AddPolygon(brep.Site{Point: geom.Pt(0, 8)})
	p3 := b.AddPolygon(brep.Site{Point: geom.Pt(10, 10)})

	bl := New()
	first := bl.InsertFirst(p1)

	mid, _ := bl.InsertArc(b, first, p2)
	_, rightEdge := bl.InsertArc(b, mid.Next, p3)
	_ = rightEdge

	prevOfMid := mid.Prev
	nextOfMid := mid.Next

	leftEdge, removedRightEdge, survivor := bl.RemoveArc(mid)
	assert.NotEqual(t, brep.NoID, leftEdge)
	assert.NotEqual(t, brep.NoID, removedRightEdge)

	mergedEdge := b.AddEdge(brep.PendingInfinite, brep.PendingInfinite, prevOfMid.Poly, nextOfMid.Poly)
	survivor.Retarget(prevOfMid.Poly, nextOfMid.Poly, mergedEdge)

	assert.Same(t, nextOfMid, prevOfMid.Next, "removing the middle arc should relink its former neighbours directly")
	assert.Same(t, prevOfMid, nextOfMid.Prev, "removing the middle arc should relink its former neighbours directly")
}

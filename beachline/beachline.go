package beachline

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// Beachline is the sweep's current beach line, as a binary tree of
// arcs and breakpoints. The zero value is not usable; construct one
// with New.
type Beachline struct {
	root *node
}

// New returns an empty Beachline.
func New() *Beachline {
	return &Beachline{}
}

// Empty reports whether the beach line has no arcs yet.
func (bl *Beachline) Empty() bool {
	return bl.root == nil
}

// InsertFirst seeds the beach line with its first arc, for the
// highest-y site (the first one popped, at a tie). It must only be called
// once, before any other site event, and never interleaved with
// circle events.
func (bl *Beachline) InsertFirst(poly brep.PolygonID) *Arc {
	arc := &Arc{Poly: poly}
	bl.root = newLeaf(arc)
	return arc
}

// FindArcAbove returns the arc whose parabola lies above x at the
// current sweep position sweepY. b supplies the generating sites the
// tree's breakpoints were built from.
func (bl *Beachline) FindArcAbove(b *brep.Builder, x, sweepY float64) (*Arc, error) {
	if bl.root == nil {
		return nil, ErrEmpty
	}
	n := bl.root
	for !n.isLeaf {
		leftSite := b.Polygon(n.leftPoly).Site.Point
		rightSite := b.Polygon(n.rightPoly).Site.Point
		bx, err := geom.ParabolicCut(leftSite, rightSite, sweepY)
		if err != nil {
			// Identical sites at a live breakpoint should not happen;
			// treat it as "no preference" and keep searching right,
			// matching the tie-break FindArcAbove otherwise applies.
			n = n.right
			continue
		}
		if x < bx {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.arc, nil
}

// InsertArc splits the arc above (found via FindArcAbove) into
// above, newArc, above again, inserting a new site event's arc into
// the beach line. It creates one new brep edge — the bisector between
// poly and above.Poly — with both endpoints still brep.PendingInfinite,
// and returns the new arc plus that edge's ID.
func (bl *Beachline) InsertArc(b *brep.Builder, above *Arc, poly brep.PolygonID) (newArc *Arc, edge brep.EdgeID) {
	edge = b.AddEdge(brep.PendingInfinite, brep.PendingInfinite, poly, above.Poly)

	newArc = &Arc{Poly: poly}
	aboveLeftCopy := &Arc{Poly: above.Poly, Prev: above.Prev, CircleEvent: nil}
	aboveRightCopy := &Arc{Poly: above.Poly, Next: above.Next, CircleEvent: nil}

	aboveLeftCopy.Next = newArc
	newArc.Prev = aboveLeftCopy
	newArc.Next = aboveRightCopy
	aboveRightCopy.Prev = newArc

	if above.Prev != nil {
		above.Prev.Next = aboveLeftCopy
	}
	if above.Next != nil {
		above.Next.Prev = aboveRightCopy
	}

	leftLeaf := newLeaf(aboveLeftCopy)
	midLeaf := newLeaf(newArc)
	rightLeaf := newLeaf(aboveRightCopy)

	innerLeft := newInternal(above.Poly, poly, edge, leftLeaf, midLeaf)
	innerRight := newInternal(poly, above.Poly, edge, innerLeft, rightLeaf)

	replace(above.leaf, innerRight, bl)
	return newArc, edge
}

// RemoveArc removes arc from the beach line when a circle event
// fires: it splices arc's leaf out of the tree, relinks its
// neighbours, and returns the two edges that were converging on arc
// (for the caller to close off at the new Voronoi vertex) along with
// a handle on the node that now represents the merged breakpoint
// between arc.Prev and arc.Next — the caller must still call Retarget
// on it once it has created the new bisector edge between them.
//
// arc must have both a Prev and a Next arc; a genuine circle event
// never disappears an arc at either end of the whole beach line, since
// that would require fewer than three converging sites.
func (bl *Beachline) RemoveArc(arc *Arc) (leftEdge, rightEdge brep.EdgeID, survivor *BreakpointHandle) {
	n := arc.leaf
	left := leftBreakpoint(n)
	right := rightBreakpoint(n)

	if left != nil {
		leftEdge = left.edge
	} else {
		leftEdge = brep.NoID
	}
	if right != nil {
		rightEdge = right.edge
	} else {
		rightEdge = brep.NoID
	}

	parent := n.parent
	var survivorNode *node
	if left == parent {
		survivorNode = right
	} else {
		survivorNode = left
	}

	sibling := parent.left
	if sibling == n {
		sibling = parent.right
	}
	grandparent := parent.parent
	if grandparent == nil {
		bl.root = sibling
		sibling.parent = nil
	} else if grandparent.left == parent {
		grandparent.left = sibling
		sibling.parent = grandparent
	} else {
		grandparent.right = sibling
		sibling.parent = grandparent
	}

	if arc.Prev != nil {
		arc.Prev.Next = arc.Next
	}
	if arc.Next != nil {
		arc.Next.Prev = arc.Prev
	}

	return leftEdge, rightEdge, &BreakpointHandle{node: survivorNode}
}

// BreakpointHandle identifies the breakpoint node left behind after a
// RemoveArc, so the caller can retarget it at the new pair of
// neighbouring sites and the new edge between them.
type BreakpointHandle struct {
	node *node
}

// Retarget points h at the bisector between left and right, tracing
// edge.
func (h *BreakpointHandle) Retarget(left, right brep.PolygonID, edge brep.EdgeID) {
	h.node.leftPoly = left
	h.node.rightPoly = right
	h.node.edge = edge
}

// replace substitutes newNode for old in the tree (old must be a
// leaf), fixing up the parent link.
func replace(old *node, newNode *node, bl *Beachline) {
	parent := old.parent
	newNode.parent = parent
	if parent == nil {
		bl.root = newNode
		return
	}
	if parent.left == old {
		parent.left = newNode
	} else {
		parent.right = newNode
	}
}

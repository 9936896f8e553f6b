package beachline

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/sweepevent"
)

// Arc is one parabolic arc of the beach line, associated with the
// polygon (cell) of the site that generates it.
type Arc struct {
	Poly brep.PolygonID

	// Prev and Next link arcs in left-to-right beach-line order.
	Prev, Next *Arc

	// CircleEvent is the currently scheduled circle event predicting
	// this arc's disappearance, or nil if none is pending.
	CircleEvent *sweepevent.Event

	leaf *node
}

// node is a binary tree node: either a leaf holding an arc, or an
// internal node representing the breakpoint between the rightmost arc
// of its left subtree and the leftmost arc of its right subtree.
type node struct {
	parent, left, right *node

	isLeaf bool
	arc    *Arc // valid when isLeaf

	// Valid when !isLeaf: the two polygons whose sites' parabolas form
	// this breakpoint, and the bisector edge currently being traced
	// between them.
	leftPoly, rightPoly brep.PolygonID
	edge                brep.EdgeID
}

func newLeaf(arc *Arc) *node {
	n := &node{isLeaf: true, arc: arc}
	arc.leaf = n
	return n
}

func newInternal(leftPoly, rightPoly brep.PolygonID, edge brep.EdgeID, left, right *node) *node {
	n := &node{leftPoly: leftPoly, rightPoly: rightPoly, edge: edge, left: left, right: right}
	left.parent = n
	right.parent = n
	return n
}

// leftBreakpoint returns the nearest ancestor of n reached by
// climbing up through a right-child link: the breakpoint between n's
// arc and its left neighbour. Returns nil if n is the leftmost arc.
func leftBreakpoint(n *node) *node {
	cur := n
	for cur.parent != nil {
		if cur.parent.right == cur {
			return cur.parent
		}
		cur = cur.parent
	}
	return nil
}

// rightBreakpoint returns the nearest ancestor of n reached by
// climbing up through a left-child link: the breakpoint between n's
// arc and its right neighbour. Returns nil if n is the rightmost arc.
func rightBreakpoint(n *node) *node {
	cur := n
	for cur.parent != nil {
		if cur.parent.left == cur {
			return cur.parent
		}
		cur = cur.parent
	}
	return nil
}

package sweepevent

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
	"github.com/arnsson/vorolath/pqueue"
)

// Kind distinguishes the two event flavors the sweep dispatches.
type Kind int

const (
	// KindSite marks the moment the sweep line reaches a new site.
	KindSite Kind = iota
	// KindCircle marks the moment three consecutive beach-line arcs
	// are predicted to converge to a single Voronoi vertex.
	KindCircle
)

func (k Kind) String() string {
	if k == KindSite {
		return "site"
	}
	return "circle"
}

// Event is one entry in the sweep's event queue. Site events carry
// Site; circle events carry Center (the predicted circumcenter) and
// Arc (the middle arc that will vanish, opaque here to avoid an
// import cycle with package beachline — package fortune type-asserts
// it back to *beachline.Arc).
type Event struct {
	pqueue.Handle

	Kind Kind
	Y    float64 // sweep-line y at which this event fires
	X    float64 // tie-break coordinate

	Site brep.Site // valid when Kind == KindSite

	Center geom.Point // valid when Kind == KindCircle: the future vertex
	Arc    any        // valid when Kind == KindCircle: the vanishing arc

	// Invalid marks a circle event that was deleted from the queue
	// before it fired because the arc triple that predicted it no
	// longer holds. Invalidated events stay listed in
	// Queue.AllCircleEvents.
	Invalid bool
}

// Less implements pqueue.Item: a.Less(b) holds when a has strictly
// lower priority than b under the sweep's total order (greater y
// first, then lesser x, then site-before-circle at an exact tie).
func (e *Event) Less(other pqueue.Item) bool {
	o := other.(*Event)
	if !geom.FCloseEnough(e.Y, o.Y) {
		return e.Y < o.Y
	}
	if !geom.FCloseEnough(e.X, o.X) {
		return e.X > o.X
	}
	if e.Kind != o.Kind {
		return e.Kind == KindCircle // circle ranks below site at a tie
	}
	return false
}

package sweepevent

import (
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
	"github.com/arnsson/vorolath/pqueue"
)

// Queue is the sweep's event queue: a pqueue.Queue[*Event] plus a
// ledger of every circle event ever scheduled, exposed through
// AllCircleEvents.
type Queue struct {
	pq         *pqueue.Queue[*Event]
	allCircles []*Event
}

// New returns an empty Queue sized for roughly n sites (each site can
// produce at most a handful of live events at once).
func New(n int) *Queue {
	return &Queue{pq: pqueue.New[*Event](n + 1)}
}

// PushSite schedules a site event for site (and its cookie) and
// returns it.
func (q *Queue) PushSite(site brep.Site) *Event {
	e := &Event{Kind: KindSite, Y: site.Point.Y, X: site.Point.X, Site: site}
	q.pq.Add(e)
	return e
}

// PushCircle schedules a circle event for the arc that is about to be
// squeezed out. bottomY is the lowest point of the circle through the
// arc triple (the event's firing priority); center is the predicted
// Voronoi vertex.
func (q *Queue) PushCircle(arc any, bottomY, x float64, center geom.Point) *Event {
	e := &Event{Kind: KindCircle, Y: bottomY, X: x, Center: center, Arc: arc}
	q.pq.Add(e)
	q.allCircles = append(q.allCircles, e)
	return e
}

// Pop removes and returns the next event in priority order.
func (q *Queue) Pop() (*Event, error) {
	e, err := q.pq.Pop()
	if err != nil {
		return nil, ErrEmpty
	}
	return e, nil
}

// Delete invalidates a pending circle event: it is removed from the
// live heap and flagged Invalid, but stays in AllCircleEvents for
// finalization. Deleting a site event, or an already-deleted event, is
// a safe no-op (pqueue.Delete is idempotent).
func (q *Queue) Delete(e *Event) {
	if e == nil || e.Kind != KindCircle {
		return
	}
	e.Invalid = true
	q.pq.Delete(e)
}

// Len returns the number of events still pending in the live heap.
func (q *Queue) Len() int { return q.pq.Len() }

// AllCircleEvents returns every circle event ever scheduled, including
// those later invalidated, showing which beach-line triples were ever
// predicted to converge. Package fortune's ray finalization does not
// read it; it works from the builder's pending edges.
func (q *Queue) AllCircleEvents() []*Event {
	return q.allCircles
}

package fortune

import (
	"fmt"

	"github.com/arl/assertgo"

	"github.com/arnsson/vorolath/beachline"
	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
	"github.com/arnsson/vorolath/sweepevent"
)

// ComputeVoronoi builds the Voronoi diagram of sites and returns it as
// a winged-edge subdivision. Sites must be pairwise distinct within
// the configured tolerance; ComputeVoronoi returns a *DuplicateSiteError
// otherwise. An empty sites slice trivially succeeds with brep.NewEmpty().
func ComputeVoronoi(sites []brep.Site, opts ...Option) (*brep.WingedEdge, error) {
	if len(sites) == 0 {
		return brep.NewEmpty(), nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := checkDistinct(sites, cfg.tolerance); err != nil {
		return nil, err
	}

	b := brep.NewBuilder(len(sites))
	polys := make([]brep.PolygonID, len(sites))
	for i, s := range sites {
		polys[i] = b.AddPolygon(s)
	}

	queue := sweepevent.New(len(sites))
	for i, s := range sites {
		e := queue.PushSite(s)
		e.Site.Cookie = polys[i] // smuggle the polygon ID through the event
	}

	bl := beachline.New()

	for queue.Len() > 0 {
		event, err := queue.Pop()
		if err != nil {
			return nil, fmt.Errorf("fortune: %w", err)
		}
		cfg.logf("dispatch %s event at y=%.6g x=%.6g", event.Kind, event.Y, event.X)

		switch event.Kind {
		case sweepevent.KindSite:
			handleSite(b, bl, queue, event, cfg)
		case sweepevent.KindCircle:
			handleCircle(b, bl, queue, event, cfg)
		}
	}

	if err := finalizeRays(b, cfg); err != nil {
		return nil, err
	}
	attachPolygonAtInfinity(b)

	we, err := b.Finalize()
	if err != nil {
		return nil, fmt.Errorf("fortune: %w", err)
	}
	return we, nil
}

func checkDistinct(sites []brep.Site, tol float64) error {
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].Point.Dist(sites[j].Point) < tol {
				return &DuplicateSiteError{I: i, J: j}
			}
		}
	}
	return nil
}

func handleSite(b *brep.Builder, bl *beachline.Beachline, queue *sweepevent.Queue, event *sweepevent.Event, cfg *config) {
	poly := event.Site.Cookie.(brep.PolygonID)

	if bl.Empty() {
		bl.InsertFirst(poly)
		return
	}

	above, err := bl.FindArcAbove(b, event.X, event.Y)
	if err != nil {
		// Can only happen if the beach line emptied out from under us,
		// which InsertFirst above rules out.
		return
	}
	if cfg.assertions {
		assert.True(above != nil, "fortune: FindArcAbove returned a nil arc")
	}

	if above.CircleEvent != nil {
		queue.Delete(above.CircleEvent)
		above.CircleEvent = nil
	}

	newArc, _ := bl.InsertArc(b, above, poly)

	checkCircleEvent(b, queue, newArc.Prev, newArc, newArc.Next, event.Y, cfg)
	checkCircleEvent(b, queue, newArc, newArc.Next, safeNext(newArc.Next), event.Y, cfg)
	checkCircleEvent(b, queue, safePrev(newArc.Prev), newArc.Prev, newArc, event.Y, cfg)
}

func handleCircle(b *brep.Builder, bl *beachline.Beachline, queue *sweepevent.Queue, event *sweepevent.Event, cfg *config) {
	arc := event.Arc.(*beachline.Arc)

	prev, next := arc.Prev, arc.Next
	if cfg.assertions {
		assert.True(prev != nil && next != nil, "fortune: circle event arc missing a neighbour")
	}

	vertex := b.AddVertex(event.Center)

	if prev.CircleEvent != nil && prev.CircleEvent != event {
		queue.Delete(prev.CircleEvent)
		prev.CircleEvent = nil
	}
	if next.CircleEvent != nil && next.CircleEvent != event {
		queue.Delete(next.CircleEvent)
		next.CircleEvent = nil
	}

	leftEdge, rightEdge, survivor := bl.RemoveArc(arc)
	resolveEdgeEnd(b, leftEdge, vertex)
	resolveEdgeEnd(b, rightEdge, vertex)

	newEdge := b.AddEdge(vertex, brep.PendingInfinite, prev.Poly, next.Poly)
	survivor.Retarget(prev.Poly, next.Poly, newEdge)

	checkCircleEvent(b, queue, safePrev(prev.Prev), prev, next, event.Y, cfg)
	checkCircleEvent(b, queue, prev, next, safeNext(next.Next), event.Y, cfg)
}

// resolveEdgeEnd sets whichever of e's two endpoints is still
// PendingInfinite to v. A no-op for NoID (the edge did not exist, as
// happens at the very first circle event involving a beach-line edge
// opened with only one finalized end).
func resolveEdgeEnd(b *brep.Builder, e brep.EdgeID, v brep.VertexID) {
	if e == brep.NoID {
		return
	}
	ed := b.Edge(e)
	switch brep.PendingInfinite {
	case ed.Start:
		b.SetEdgeStart(e, v)
	case ed.End:
		b.SetEdgeEnd(e, v)
	}
}

func safeNext(a *beachline.Arc) *beachline.Arc {
	if a == nil {
		return nil
	}
	return a.Next
}

func safePrev(a *beachline.Arc) *beachline.Arc {
	if a == nil {
		return nil
	}
	return a.Prev
}

// checkCircleEvent schedules a circle event for b's disappearance if
// a, b and c are three distinct, correctly-curving arcs whose sites'
// circumcircle's lowest point has not yet been passed by the sweep.
func checkCircleEvent(brp *brep.Builder, queue *sweepevent.Queue, a, b, c *beachline.Arc, sweepY float64, cfg *config) {
	if a == nil || b == nil || c == nil {
		return
	}
	if a == c || a.Poly == b.Poly || b.Poly == c.Poly {
		return
	}

	siteA := brp.Polygon(a.Poly).Site.Point
	siteB := brp.Polygon(b.Poly).Site.Point
	siteC := brp.Polygon(c.Poly).Site.Point

	// Only a clockwise-curving triple can converge to a point as the
	// sweep advances; the other winding means the breakpoints are
	// diverging and will never meet.
	va := siteA.Sub(siteB)
	vc := siteC.Sub(siteB)
	if va.Cross(vc) <= 0 {
		return
	}

	center, ok := geom.FindCircumcenter(siteA, siteB, siteC)
	if !ok {
		return
	}
	radius := center.Dist(siteB)
	bottomY := center.Y - radius
	if bottomY > sweepY+cfg.tolerance {
		return
	}

	e := queue.PushCircle(b, bottomY, center.X, center)
	b.CircleEvent = e
}

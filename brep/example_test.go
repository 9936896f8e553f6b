package brep_test

import (
	"fmt"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/geom"
)

// A two-site diagram has a single bisector: a full line with both
// endpoints at infinity.
func ExampleBuilder_twoSites() {
	b := brep.NewBuilder(2)
	left := b.AddPolygon(brep.Site{Point: geom.Pt(0, 0)})
	right := b.AddPolygon(brep.Site{Point: geom.Pt(2, 0)})
	down := b.AddInfiniteVertex(geom.Pt(0, -1))
	up := b.AddInfiniteVertex(geom.Pt(0, 1))
	edge := b.AddEdge(down, up, left, right)

	we, err := b.Finalize()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(we.FLine(edge))
	// Output: true
}

package fortune_test

import (
	"fmt"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/geom"
)

func ExampleComputeVoronoi() {
	sites := []brep.Site{
		{Point: geom.Pt(0, 0)},
		{Point: geom.Pt(4, 0)},
		{Point: geom.Pt(2, 4)},
	}

	we, err := fortune.ComputeVoronoi(sites)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(we.NumPolygons(), we.NumVertices())
	// Output:
	// 4 4
}

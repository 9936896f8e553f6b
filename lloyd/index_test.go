package lloyd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/geom"
)

func TestCellIndex_QueryFindsOwningCell(t *testing.T) {
	sites := []brep.Site{
		{Point: geom.Pt(2, 2)},
		{Point: geom.Pt(8, 2)},
		{Point: geom.Pt(5, 8)},
	}
	we, err := fortune.ComputeVoronoi(sites)
	require.NoError(t, err)

	window := square(0, 0, 10, 10)
	idx := NewCellIndex(we, window, 1000)
	require.NotZero(t, idx.Len(), "NewCellIndex() indexed no cells")

	hits := idx.Query(geom.Pt(2, 2))
	assert.NotEmpty(t, hits, "Query(2,2) should find the cell containing its own site's bounding box")

	_, ok := idx.Cell(brep.PolygonID(0))
	assert.True(t, ok, "Cell(0) should return the first site's clipped boundary")
}

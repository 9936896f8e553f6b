package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/brep"
	"github.com/arnsson/vorolath/fortune"
	"github.com/arnsson/vorolath/geom"
)

func TestBuildReport(t *testing.T) {
	we, err := fortune.ComputeVoronoi([]brep.Site{
		{Point: geom.Pt(0, 0)},
		{Point: geom.Pt(4, 0)},
		{Point: geom.Pt(2, 4)},
	})
	require.NoError(t, err)

	r := buildReport(we)
	assert.Equal(t, 3, r.NumSites)
	assert.Equal(t, we.NumPolygons(), r.NumPolygons)
	assert.Len(t, r.Polygons, we.NumPolygons())
}

func TestPrintSummary(t *testing.T) {
	we, err := fortune.ComputeVoronoi([]brep.Site{{Point: geom.Pt(0, 0)}})
	require.NoError(t, err)

	var buf bytes.Buffer
	printSummary(&buf, we)
	assert.NotZero(t, buf.Len(), "printSummary() should write something")
}

func TestWriteReport(t *testing.T) {
	we, err := fortune.ComputeVoronoi([]brep.Site{
		{Point: geom.Pt(0, 0)},
		{Point: geom.Pt(1, 1)},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeReport(path, we))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)

	var r diagramReport
	require.NoError(t, json.Unmarshal(buf, &r))
	assert.Equal(t, 2, r.NumSites)
}

package sitefile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnsson/vorolath/sitefile"
)

func TestRead_ParsesSites(t *testing.T) {
	input := `
// a comment line
0,0   // origin
2, 4
  // blank above, then a site below
-1.5,3.25
`
	sites, err := sitefile.Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sites, 3)

	want := [][2]float64{{0, 0}, {2, 4}, {-1.5, 3.25}}
	for i, w := range want {
		assert.Equal(t, w[0], sites[i].Point.X, "sites[%d].X", i)
		assert.Equal(t, w[1], sites[i].Point.Y, "sites[%d].Y", i)
	}
}

func TestRead_NoSites(t *testing.T) {
	_, err := sitefile.Read(strings.NewReader("// nothing but comments\n\n"))
	assert.ErrorIs(t, err, sitefile.ErrNoSites)
}

func TestRead_BadLine(t *testing.T) {
	_, err := sitefile.Read(strings.NewReader("not-a-point\n"))
	assert.Error(t, err)
}

func TestRead_BadCoordinate(t *testing.T) {
	_, err := sitefile.Read(strings.NewReader("abc,1\n"))
	assert.Error(t, err)
}

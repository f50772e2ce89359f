package geometry

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

func TestCheckerValidTriangle(t *testing.T) {
	f := &models.Figure{Name: "F1", Vertices: []orb.Point{{0, 0}, {1, 0}, {1, 1}}}

	warnings := Checker{}.Check(f)
	assert.Empty(t, warnings)
	assert.True(t, f.IsClosed())
	assert.Len(t, f.Vertices, 4)
}

func TestCheckerFewVertices(t *testing.T) {
	f := &models.Figure{Name: "F2", Vertices: []orb.Point{{5, 5}, {6, 6}}}

	warnings := Checker{}.Check(f)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fewer than 3 vertices")
	assert.Len(t, f.Vertices, 2)
}

func TestCheckerCollinearArea(t *testing.T) {
	for _, minArea := range []float64{0, 0.5, 10} {
		f := &models.Figure{Name: "flat", Vertices: []orb.Point{{0, 0}, {1, 1}, {2, 2}}}
		warnings := Checker{MinArea: minArea}.Check(f)
		require.NotEmpty(t, warnings)
		assert.Contains(t, warnings[0], "zero or negligible area")
	}
}

func TestCheckerMinArea(t *testing.T) {
	square := []orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	f := &models.Figure{Name: "sq", Vertices: append([]orb.Point(nil), square...)}
	assert.Empty(t, Checker{MinArea: 3.9}.Check(f))

	f = &models.Figure{Name: "sq", Vertices: append([]orb.Point(nil), square...)}
	warnings := Checker{MinArea: 4}.Check(f)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "area=4")
}

func TestCheckerInvalidRing(t *testing.T) {
	f := &models.Figure{Name: "bowtie", Vertices: []orb.Point{{0, 0}, {2, 2}, {2, 0}, {0, 2}}}

	// The two lobes of the bow-tie cancel out in the signed area.
	warnings := Checker{}.Check(f)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "area=0")
	assert.Contains(t, warnings[1], "invalid geometry")
	assert.Contains(t, warnings[1], "not simple")
}

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseIdempotent(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}}

	once := Close(pts)
	require.Len(t, once, 4)
	assert.Equal(t, once[0], once[3])

	twice := Close(once)
	assert.Equal(t, once, twice)
	assert.Len(t, pts, 3, "input must not be modified")
}

func TestBuildQuadrilateral(t *testing.T) {
	res, err := Build("Q", []orb.Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}})
	require.NoError(t, err)
	assert.False(t, res.Repaired)

	poly, ok := res.Geometry.(orb.Polygon)
	require.True(t, ok)
	require.Len(t, poly, 1)
	assert.Len(t, poly[0], 5)

	reclosed := Close(poly[0])
	assert.Len(t, reclosed, 5)
	assert.NoError(t, Validate(reclosed))
	assert.InDelta(t, 12.0, Area(reclosed), 1e-9)
}

func TestBuildLine(t *testing.T) {
	res, err := Build("L", []orb.Point{{5, 5}, {6, 6}})
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{5, 5}, {6, 6}}, res.Geometry)
}

func TestBuildNotBuildable(t *testing.T) {
	_, err := Build("P", []orb.Point{{1, 1}})
	assert.ErrorIs(t, err, ErrNotBuildable)

	_, err = Build("P", nil)
	assert.ErrorIs(t, err, ErrNotBuildable)
}

func TestBuildRepairsBowtie(t *testing.T) {
	res, err := Build("bowtie", []orb.Point{{0, 0}, {2, 2}, {2, 0}, {0, 2}})
	require.NoError(t, err)
	assert.True(t, res.Repaired)
	assert.Contains(t, res.Reason, "not simple")

	poly := res.Geometry.(orb.Polygon)
	assert.NoError(t, ValidatePolygon(poly))
	assert.InDelta(t, 1.0, Area(poly[0]), 1e-9)
	assert.True(t, poly[0].Closed())
}

func TestBuildNonFiniteRejected(t *testing.T) {
	_, err := Build("nan", []orb.Point{{0, 0}, {math.NaN(), 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestBuildCollinearRejected(t *testing.T) {
	_, err := Build("flat", []orb.Point{{0, 0}, {1, 1}, {2, 2}})
	require.ErrorIs(t, err, ErrInvalidGeometry)

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, "flat", gerr.Figure)
}

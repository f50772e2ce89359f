package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindXY(t *testing.T) {
	tests := []struct {
		columns []string
		x, y    string
	}{
		{[]string{"VERTICE", "ESTE", "NORTE"}, "ESTE", "NORTE"},
		{[]string{"id", "x", "y"}, "x", "y"},
		{[]string{"Coord_X", "Coord_Y", "Nombre"}, "Coord_X", "Coord_Y"},
		{[]string{" East ", "North"}, " East ", "North"},
	}

	for _, tt := range tests {
		x, y, err := FindXY(tt.columns)
		require.NoError(t, err, "%v", tt.columns)
		assert.Equal(t, tt.x, x)
		assert.Equal(t, tt.y, y)
	}
}

func TestFindXYMissing(t *testing.T) {
	_, _, err := FindXY([]string{"ESTE", "ALTURA"})
	require.ErrorIs(t, err, ErrColumnNotFound)

	var colErr *ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, RoleY, colErr.Role)
	assert.Contains(t, err.Error(), "Y (Northing)")
}

func TestFindXYAmbiguous(t *testing.T) {
	_, _, err := FindXY([]string{"X", "ESTE", "NORTE"})
	require.ErrorIs(t, err, ErrAmbiguousColumn)
	assert.NotErrorIs(t, err, ErrColumnNotFound)

	var colErr *ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, RoleX, colErr.Role)
	assert.Equal(t, []string{"X", "ESTE"}, colErr.Candidates)
}

func TestRoleOf(t *testing.T) {
	assert.Equal(t, RoleVertex, RoleOf("Vértice"))
	assert.Equal(t, RoleX, RoleOf("este"))
	assert.Equal(t, Role(0), RoleOf("COMPONENTE"))
}

package table

import (
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		input interface{}
		value float64
		ok    bool
	}{
		{int64(5), 5, true},
		{12.5, 12.5, true},
		{" 277000.25 ", 277000.25, true},
		{"abc", 0, false},
		{"", 0, false},
		{nil, 0, false},
		{"NaN", 0, false},
		{"+Inf", 0, false},
		{true, 0, false},
	}

	for _, tt := range tests {
		v, ok := ToFloat(tt.input)
		assert.Equal(t, tt.ok, ok, "ToFloat(%v)", tt.input)
		assert.Equal(t, tt.value, v, "ToFloat(%v)", tt.input)
	}
}

func TestVertexKeyOrder(t *testing.T) {
	keys := []VertexKey{
		NewVertexKey("b"),
		NewVertexKey(int64(10)),
		NewVertexKey("a"),
		NewVertexKey("2"),
		NewVertexKey(3.0),
		NewVertexKey(1.5),
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	assert.Equal(t, []VertexKey{
		{Numeric: true, N: 2},
		{Numeric: true, N: 3},
		{Numeric: true, N: 10},
		{S: "1.5"},
		{S: "a"},
		{S: "b"},
	}, keys)
}

func TestExtractVerticesOrdersAndDrops(t *testing.T) {
	tbl := newTable([]string{"V", "X", "Y"},
		[]interface{}{int64(3), 2.0, 2.0},
		[]interface{}{int64(1), 0.0, 0.0},
		[]interface{}{int64(2), "n/a", 1.0},
		[]interface{}{"10", "4", "4"},
		[]interface{}{int64(2), 1.0, nil},
		[]interface{}{int64(4), 3.0, 3.0},
	)

	pts := ExtractVertices(tbl.Rows, "X", "Y", "V")
	assert.Equal(t, []orb.Point{{0, 0}, {2, 2}, {3, 3}, {4, 4}}, pts)
}

func TestExtractVerticesRowOrder(t *testing.T) {
	tbl := newTable([]string{"X", "Y"},
		[]interface{}{5.0, 5.0},
		[]interface{}{1.0, 1.0},
	)

	pts := ExtractVertices(tbl.Rows, "X", "Y", "")
	assert.Equal(t, []orb.Point{{5, 5}, {1, 1}}, pts)
}

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

func newTable(columns []string, values ...[]interface{}) models.Table {
	t := models.Table{Name: "Sheet1", Columns: columns}
	for i, vals := range values {
		row := models.Row{R: i + 2, C: make(map[string]interface{})}
		for j, v := range vals {
			row.C[columns[j]] = v
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func blockSizes(blocks []models.Block) []int {
	sizes := make([]int, len(blocks))
	for i, b := range blocks {
		sizes[i] = len(b.Rows)
	}
	return sizes
}

func TestDetectByComponentForwardFill(t *testing.T) {
	tbl := newTable([]string{"COMPONENTE", "X", "Y"},
		[]interface{}{"A", 0.0, 0.0},
		[]interface{}{"", 1.0, 0.0},
		[]interface{}{"", 1.0, 1.0},
		[]interface{}{"B", 5.0, 5.0},
		[]interface{}{"", 6.0, 5.0},
		[]interface{}{"", 6.0, 6.0},
	)

	blocks, err := DetectBlocks(tbl, DetectParams{ComponentColumn: "COMPONENTE"})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, []int{3, 3}, blockSizes(blocks))
	assert.Equal(t, "A", blocks[0].Name)
	assert.Equal(t, "T1", blocks[0].ID)
	assert.Equal(t, "B", blocks[1].Name)
	assert.Equal(t, "T2", blocks[1].ID)
	assert.Equal(t, 2, blocks[0].Rows[0].R)
	assert.Equal(t, 7, blocks[1].Rows[2].R)
}

func TestDetectByComponentSkipsLeadingAndEmptyRows(t *testing.T) {
	tbl := newTable([]string{"COMPONENTE", "X", "Y"},
		[]interface{}{nil, 9.0, 9.0},
		[]interface{}{" A ", 0.0, 0.0},
		[]interface{}{nil, nil, nil},
		[]interface{}{"", 1.0, 0.0},
		[]interface{}{"A", 2.0, 2.0},
	)

	blocks, err := DetectBlocks(tbl, DetectParams{ComponentColumn: "COMPONENTE"})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, []int{2, 1}, blockSizes(blocks))
	assert.Equal(t, "A", blocks[0].Name)
	assert.Equal(t, "A", blocks[1].Name)
	assert.Equal(t, "T2", blocks[1].ID)
}

func TestDetectByVertexReset(t *testing.T) {
	tbl := newTable([]string{"VERTICE", "X", "Y"},
		[]interface{}{int64(1), 0.0, 0.0},
		[]interface{}{int64(2), 1.0, 0.0},
		[]interface{}{int64(3), 1.0, 1.0},
		[]interface{}{int64(1), 5.0, 5.0},
		[]interface{}{int64(2), 6.0, 5.0},
	)

	blocks, err := DetectBlocks(tbl, DetectParams{VertexColumn: "VERTICE"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, blockSizes(blocks))
	assert.Equal(t, "figure_1", blocks[0].Name)
	assert.Equal(t, "figure_2", blocks[1].Name)
}

func TestDetectByVertexResetRepeatStartsBlock(t *testing.T) {
	tbl := newTable([]string{"Vértice", "X", "Y"},
		[]interface{}{"1", 0.0, 0.0},
		[]interface{}{"2", 1.0, 0.0},
		[]interface{}{"2", 1.0, 1.0},
	)

	// Configured default is absent; the column is found by synonym.
	blocks, err := DetectBlocks(tbl, DetectParams{ComponentColumn: "COMPONENTE", VertexColumn: "VERTICE"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, blockSizes(blocks))
}

func TestDetectByVertexResetNonNumeric(t *testing.T) {
	tbl := newTable([]string{"VERTICE", "X", "Y"},
		[]interface{}{int64(1), 0.0, 0.0},
		[]interface{}{"A", 1.0, 0.0},
	)

	_, err := DetectBlocks(tbl, DetectParams{VertexColumn: "VERTICE"})
	require.ErrorIs(t, err, ErrStructureNotDetected)
}

func TestDetectStructureNotDetected(t *testing.T) {
	tbl := newTable([]string{"X", "Y"}, []interface{}{0.0, 0.0})

	_, err := DetectBlocks(tbl, DetectParams{VertexColumn: "VERTICE"})
	require.ErrorIs(t, err, ErrStructureNotDetected)
}

func TestBlocksReconstructRows(t *testing.T) {
	tbl := newTable([]string{"COMPONENTE", "X", "Y"},
		[]interface{}{"A", 0.0, 0.0},
		[]interface{}{nil, nil, nil},
		[]interface{}{"", 1.0, 0.0},
		[]interface{}{"B", 1.0, 1.0},
		[]interface{}{"C", 2.0, 2.0},
		[]interface{}{"", 3.0, 2.0},
	)

	blocks, err := DetectBlocks(tbl, DetectParams{ComponentColumn: "COMPONENTE"})
	require.NoError(t, err)

	var got []int
	for _, b := range blocks {
		for _, r := range b.Rows {
			got = append(got, r.R)
		}
	}
	assert.Equal(t, []int{2, 4, 5, 6, 7}, got)
}

package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// DetectParams configures block detection.
type DetectParams struct {
	// ComponentColumn names the grouping column. Empty or absent from the
	// table selects vertex-reset mode.
	ComponentColumn string
	// VertexColumn names the vertex-index column. When absent from the
	// table the column is looked up through the vertex synonyms.
	VertexColumn string
}

// DetectBlocks splits a table into contiguous per-figure blocks.
//
// With a grouping column, a non-blank cell starts a new block named after
// it and blank cells inherit the current name. Without one, a new block
// starts whenever the vertex index does not increase.
func DetectBlocks(t models.Table, params DetectParams) ([]models.Block, error) {
	if params.ComponentColumn != "" && t.HasColumn(params.ComponentColumn) {
		return detectByComponent(t, params.ComponentColumn), nil
	}

	vertexCol, err := ResolveVertexColumn(t.Columns, params.VertexColumn)
	if err != nil {
		return nil, err
	}
	if vertexCol == "" {
		return nil, fmt.Errorf("%w: no component column and no vertex column", ErrStructureNotDetected)
	}
	return detectByVertexReset(t, vertexCol)
}

// ResolveVertexColumn returns the configured vertex column when present,
// otherwise the single column matching the vertex synonyms. It returns ""
// without error when no candidate exists.
func ResolveVertexColumn(columns []string, configured string) (string, error) {
	for _, c := range columns {
		if configured != "" && c == configured {
			return c, nil
		}
	}

	col, err := FindColumn(columns, RoleVertex)
	if errors.Is(err, ErrColumnNotFound) {
		return "", nil
	}
	return col, err
}

type blockCollector struct {
	columns []string
	blocks  []models.Block
	current *models.Block
}

// start opens a new block. An empty name generates "figure_N".
func (c *blockCollector) start(name string) {
	c.flush()
	if name == "" {
		name = fmt.Sprintf("figure_%d", len(c.blocks)+1)
	}
	c.current = &models.Block{
		ID:      fmt.Sprintf("T%d", len(c.blocks)+1),
		Name:    name,
		Columns: c.columns,
	}
}

func (c *blockCollector) add(row models.Row) {
	c.current.Rows = append(c.current.Rows, row)
}

func (c *blockCollector) flush() {
	if c.current != nil && len(c.current.Rows) > 0 {
		c.blocks = append(c.blocks, *c.current)
	}
	c.current = nil
}

func detectByComponent(t models.Table, column string) []models.Block {
	c := &blockCollector{columns: t.Columns}

	for _, row := range t.Rows {
		if name := cellText(row.Get(column)); name != "" {
			c.start(name)
		}
		// Rows before the first name have no figure to belong to.
		if c.current == nil || row.IsEmpty() {
			continue
		}
		c.add(row)
	}
	c.flush()

	return c.blocks
}

func detectByVertexReset(t models.Table, column string) ([]models.Block, error) {
	c := &blockCollector{columns: t.Columns}
	var prev float64

	for _, row := range t.Rows {
		if row.IsEmpty() {
			continue
		}

		v, ok := ToFloat(row.Get(column))
		if !ok {
			return nil, fmt.Errorf("%w: vertex column %q contains non-numeric value %v (row %d)",
				ErrStructureNotDetected, column, row.Get(column), row.R)
		}

		if c.current == nil || v <= prev {
			c.start("")
		}
		c.add(row)
		prev = v
	}
	c.flush()

	return c.blocks, nil
}

// cellText renders a grouping cell as a trimmed name, "" when blank.
func cellText(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if key, ok := integral(t); ok {
			return fmt.Sprint(key)
		}
		return fmt.Sprint(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

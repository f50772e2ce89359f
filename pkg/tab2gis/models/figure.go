package models

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/crs"
)

// Figure is the named, ordered vertex representation of one block.
type Figure struct {
	// Name is the figure name taken from the grouping column or generated.
	Name string `json:"name"`
	// Vertices holds the ordered (x, y) pairs.
	Vertices []orb.Point `json:"vertices"`
	// CRS is the run's coordinate system. It is shared and read-only.
	CRS *crs.Descriptor `json:"-"`
	// Source is the input file the figure came from.
	Source string `json:"source,omitempty"`
	// Table is the display name of the table (sheet) holding the figure.
	Table string `json:"table,omitempty"`
	// TableID is the identifier of the first block merged into the figure.
	TableID string `json:"table_id,omitempty"`
}

// IsClosed reports whether the first and last vertices coincide.
func (f *Figure) IsClosed() bool {
	if len(f.Vertices) < 2 {
		return false
	}
	return f.Vertices[0] == f.Vertices[len(f.Vertices)-1]
}

// Close appends the first vertex when the figure is not already closed.
func (f *Figure) Close() {
	if len(f.Vertices) > 0 && !f.IsClosed() {
		f.Vertices = append(f.Vertices, f.Vertices[0])
	}
}

// Validate runs the structural checks that make a figure unusable: an
// empty name, no vertices or a non-finite coordinate. A low vertex count
// is not an error here; two-vertex figures export as lines.
func (f *Figure) Validate() error {
	var problems []error

	if strings.TrimSpace(f.Name) == "" {
		problems = append(problems, errors.New("figure name is missing or empty"))
	}
	if len(f.Vertices) == 0 {
		problems = append(problems, errors.New("figure has no vertices"))
	}
	for i, v := range f.Vertices {
		if !finite(v[0]) || !finite(v[1]) {
			problems = append(problems, fmt.Errorf("non-finite coordinate at index %d: %v", i, v))
		}
	}

	return errors.Join(problems...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

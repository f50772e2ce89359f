// Package tab2gis converts semi-structured coordinate tables into named
// polygon rings ready for GIS export.
package tab2gis

import (
	"fmt"
	"math"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/crs"
)

// DefaultVertexColumn is the conventional vertex-index header.
const DefaultVertexColumn = "VERTICE"

// Options configures the interpretation of tables.
type Options struct {
	// ComponentColumn names the grouping column. Empty selects
	// vertex-reset detection.
	ComponentColumn string
	// XColumn overrides semantic detection of the X column.
	XColumn string
	// YColumn overrides semantic detection of the Y column.
	YColumn string
	// VertexColumn names the vertex-index column.
	VertexColumn string
	// EPSG is the EPSG code of the input coordinates. Mutually exclusive
	// with CRSDefinition.
	EPSG int
	// CRSDefinition is an "EPSG:n", PROJ or WKT definition. Mutually
	// exclusive with EPSG.
	CRSDefinition string
	// MinArea is the area at or below which a figure is reported.
	MinArea float64
	// KeepRepeatedNames keeps blocks that share a name as separate
	// figures instead of merging them.
	KeepRepeatedNames bool
	// Parallel builds the figures of a table concurrently.
	Parallel bool
}

// DefaultOptions returns default options. A CRS must still be supplied.
func DefaultOptions() Options {
	return Options{
		VertexColumn: DefaultVertexColumn,
	}
}

// Validate checks the options and resolves the CRS descriptor.
func (o Options) Validate() (*crs.Descriptor, error) {
	if math.IsNaN(o.MinArea) || math.IsInf(o.MinArea, 0) {
		return nil, fmt.Errorf("%w: min area must be a finite number", ErrConfiguration)
	}
	if o.MinArea < 0 {
		return nil, fmt.Errorf("%w: min area must not be negative", ErrConfiguration)
	}
	if (o.XColumn == "") != (o.YColumn == "") {
		return nil, fmt.Errorf("%w: X and Y column overrides must be given together", ErrConfiguration)
	}

	d, err := crs.New(o.EPSG, o.CRSDefinition)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return d, nil
}

func (o Options) vertexColumn() string {
	if o.VertexColumn == "" {
		return DefaultVertexColumn
	}
	return o.VertexColumn
}

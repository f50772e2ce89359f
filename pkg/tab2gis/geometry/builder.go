// Package geometry turns ordered vertices into rings or lines, checks ring
// validity and performs the one-shot repair of self-intersecting rings.
// Validity and repair are delegated to simplefeatures; results are kept as
// orb geometries for export.
package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Result is a constructed figure geometry.
type Result struct {
	// Geometry is an orb.Polygon whose first ring is the closed exterior
	// (a repair may add holes), or an orb.LineString for two-vertex
	// figures.
	Geometry orb.Geometry
	// Repaired is set when the ring was invalid and Repair fixed it.
	Repaired bool
	// Reason is the validity failure that triggered the repair.
	Reason string
}

// Close returns a copy of pts with the first vertex appended when the
// sequence is not already closed.
func Close(pts []orb.Point) orb.Ring {
	ring := make(orb.Ring, len(pts), len(pts)+1)
	copy(ring, pts)
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// Build constructs the geometry of one figure. Two vertices give an open
// line; three or more give a closed ring, repaired once when invalid.
// Vertex order is kept as given.
func Build(name string, vertices []orb.Point) (*Result, error) {
	switch {
	case len(vertices) < 2:
		return nil, ErrNotBuildable
	case len(vertices) == 2:
		line := make(orb.LineString, 2)
		copy(line, vertices)
		return &Result{Geometry: line}, nil
	}

	ring := Close(vertices)
	err := Validate(ring)
	if err == nil {
		return &Result{Geometry: orb.Polygon{ring}}, nil
	}

	reason := err.Error()
	if !finite(ring) {
		return nil, &Error{Figure: name, Reason: reason, Err: ErrInvalidGeometry}
	}
	repaired, err := Repair(ring)
	switch {
	case err != nil:
		return nil, &Error{Figure: name, Reason: reason + " (repair failed: " + err.Error() + ")", Err: ErrInvalidGeometry}
	case len(repaired) == 0:
		return nil, &Error{Figure: name, Reason: reason + " (repair produced an empty geometry)", Err: ErrInvalidGeometry}
	}
	if err := ValidatePolygon(repaired); err != nil {
		return nil, &Error{Figure: name, Reason: err.Error(), Err: ErrInvalidGeometry}
	}

	return &Result{Geometry: repaired, Repaired: true, Reason: reason}, nil
}

func finite(pts []orb.Point) bool {
	for _, p := range pts {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return false
		}
	}
	return true
}

package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/peterstace/simplefeatures/geom"
)

// Repair regularizes an invalid ring in a single pass with a unary union,
// the zero-distance buffer of the ring. When the union has several parts,
// the polygon enclosing the largest area is kept. The result is nil when
// nothing with a positive area remains.
func Repair(ring orb.Ring) (orb.Polygon, error) {
	g, err := geom.UnaryUnion(toPolygon(orb.Polygon{ring}).AsGeometry())
	if err != nil {
		return nil, fmt.Errorf("union: %w", err)
	}

	p, ok := largestPolygon(g)
	if !ok {
		return nil, nil
	}
	return fromPolygon(p), nil
}

package geometry

import (
	"github.com/paulmach/orb"
	"github.com/peterstace/simplefeatures/geom"
)

// toPolygon converts an orb polygon into a simplefeatures polygon without
// validating it.
func toPolygon(p orb.Polygon) geom.Polygon {
	rings := make([]geom.LineString, len(p))
	for i, r := range p {
		coords := make([]float64, 0, 2*len(r))
		for _, pt := range r {
			coords = append(coords, pt[0], pt[1])
		}
		rings[i] = geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	}
	return geom.NewPolygon(rings)
}

func fromPolygon(p geom.Polygon) orb.Polygon {
	out := orb.Polygon{fromRing(p.ExteriorRing())}
	for i := 0; i < p.NumInteriorRings(); i++ {
		out = append(out, fromRing(p.InteriorRingN(i)))
	}
	return out
}

func fromRing(ls geom.LineString) orb.Ring {
	seq := ls.Coordinates()
	ring := make(orb.Ring, seq.Length())
	for i := range ring {
		xy := seq.GetXY(i)
		ring[i] = orb.Point{xy.X, xy.Y}
	}
	return ring
}

// largestPolygon returns the polygon part of g enclosing the largest area.
func largestPolygon(g geom.Geometry) (geom.Polygon, bool) {
	var best geom.Polygon
	bestArea := 0.0
	for _, part := range g.Dump() {
		p, ok := part.AsPolygon()
		if !ok {
			continue
		}
		if a := p.Area(); a > bestArea {
			best, bestArea = p, a
		}
	}
	return best, bestArea > 0
}

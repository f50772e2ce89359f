package output

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/yofu/dxf"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// ToDXF writes an ASCII DXF drawing holding one LWPOLYLINE entity per
// figure on a layer named after the figure. Rings are written without
// their closing vertex and flagged closed.
func ToDXF(w io.Writer, figures []tab2gis.FigureResult) error {
	d := dxf.NewDrawing()

	for _, r := range figures {
		pts, closed := polylinePoints(r.Geometry)
		if len(pts) == 0 {
			continue
		}

		layer := Sanitize(r.Figure.Name)
		if _, ok := d.Layers[layer]; ok {
			if err := d.ChangeLayer(layer); err != nil {
				return err
			}
		} else if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("adding layer %q: %w", layer, err)
		}

		vertices := make([][]float64, len(pts))
		for i, p := range pts {
			vertices[i] = []float64{p[0], p[1]}
		}
		if _, err := d.LwPolyline(closed, vertices...); err != nil {
			return fmt.Errorf("figure %q: %w", r.Figure.Name, err)
		}
	}

	_, err := d.WriteTo(w)
	return err
}

func polylinePoints(g orb.Geometry) ([]orb.Point, bool) {
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return nil, false
		}
		ring := g[0]
		if ring.Closed() {
			ring = ring[:len(ring)-1]
		}
		return ring, true
	case orb.LineString:
		return g, false
	default:
		return nil, false
	}
}

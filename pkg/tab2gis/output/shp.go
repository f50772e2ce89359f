package output

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/crs"
)

// ErrMixedGeometry indicates figures that cannot share one shapefile
// because polygons and lines are mixed.
var ErrMixedGeometry = errors.New("shapefile needs figures of a single geometry type")

// dbfTextSize is the widest DBF character field.
const dbfTextSize = 254

// WriteShapefile writes the figures of report as base.shp, base.shx and
// base.dbf, with "name" and "table_id" attributes. A base.cpg declares the
// attributes UTF-8 and a base.prj is added when the CRS has a known ESRI
// WKT. It returns the paths written, .shp first.
func WriteShapefile(base string, report *tab2gis.Report) ([]string, error) {
	shapeType, err := shapeTypeOf(report.Figures)
	if err != nil {
		return nil, err
	}

	w, err := shp.Create(base+".shp", shapeType)
	if err != nil {
		return nil, err
	}
	paths := []string{base + ".shp", base + ".shx", base + ".dbf"}

	fields := []shp.Field{
		shp.StringField("name", dbfTextSize),
		shp.StringField("table_id", dbfTextSize),
	}
	if err := w.SetFields(fields); err != nil {
		w.Close()
		return nil, err
	}

	for _, r := range report.Figures {
		shape := toShape(r.Geometry)
		if shape == nil {
			continue
		}
		row := int(w.Write(shape))
		if err := w.WriteAttribute(row, 0, dbfText(r.Figure.Name)); err != nil {
			w.Close()
			return nil, fmt.Errorf("figure %q: %w", r.Figure.Name, err)
		}
		if err := w.WriteAttribute(row, 1, dbfText(r.Figure.TableID)); err != nil {
			w.Close()
			return nil, fmt.Errorf("figure %q: %w", r.Figure.Name, err)
		}
	}
	w.Close()

	if err := os.WriteFile(base+".cpg", []byte("UTF-8"), 0644); err != nil {
		return nil, err
	}
	paths = append(paths, base+".cpg")

	if wkt, ok := esriWKT(report.CRS); ok {
		if err := os.WriteFile(base+".prj", []byte(wkt), 0644); err != nil {
			return nil, err
		}
		paths = append(paths, base+".prj")
	}

	return paths, nil
}

func shapeTypeOf(figures []tab2gis.FigureResult) (shp.ShapeType, error) {
	var t shp.ShapeType
	for _, r := range figures {
		var ft shp.ShapeType
		switch r.Geometry.(type) {
		case orb.Polygon:
			ft = shp.POLYGON
		case orb.LineString:
			ft = shp.POLYLINE
		default:
			continue
		}
		if t != 0 && t != ft {
			return 0, ErrMixedGeometry
		}
		t = ft
	}
	if t == 0 {
		t = shp.POLYGON
	}
	return t, nil
}

// toShape converts a figure geometry. Shapefile polygons keep the outer
// ring clockwise and holes counter-clockwise.
func toShape(g orb.Geometry) shp.Shape {
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return nil
		}
		parts := make([][]shp.Point, len(g))
		for i, ring := range g {
			want := orb.CCW
			if i == 0 {
				want = orb.CW
			}
			parts[i] = ringPoints(ring, want)
		}
		return (*shp.Polygon)(shp.NewPolyLine(parts))
	case orb.LineString:
		if len(g) == 0 {
			return nil
		}
		pts := make([]shp.Point, len(g))
		for i, p := range g {
			pts[i] = shp.Point{X: p[0], Y: p[1]}
		}
		return shp.NewPolyLine([][]shp.Point{pts})
	default:
		return nil
	}
}

func ringPoints(ring orb.Ring, want orb.Orientation) []shp.Point {
	pts := make([]shp.Point, len(ring))
	reverse := len(ring) > 0 && ring.Orientation() == -want
	for i, p := range ring {
		j := i
		if reverse {
			j = len(ring) - 1 - i
		}
		pts[j] = shp.Point{X: p[0], Y: p[1]}
	}
	return pts
}

// dbfText fits s to a character field: cut on a rune boundary and padded
// with blanks.
func dbfText(s string) string {
	if len(s) > dbfTextSize {
		s = s[:dbfTextSize]
		for len(s) > 0 && !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
	}
	return s + strings.Repeat(" ", dbfTextSize-len(s))
}

const wgs84GeogCS = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
	`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

// esriWKT returns the .prj text for the CRS: a WKT definition as given,
// WGS 84 or one of its UTM zones by EPSG code.
func esriWKT(d *crs.Descriptor) (string, bool) {
	if d == nil {
		return "", false
	}
	if def := d.Definition(); def != "" {
		upper := strings.ToUpper(def)
		if strings.HasPrefix(upper, "PROJCS[") || strings.HasPrefix(upper, "GEOGCS[") {
			return def, true
		}
		return "", false
	}

	code := d.EPSG()
	switch {
	case code == 4326:
		return wgs84GeogCS, true
	case code >= 32601 && code <= 32660:
		return utmWKT(code-32600, false), true
	case code >= 32701 && code <= 32760:
		return utmWKT(code-32700, true), true
	default:
		return "", false
	}
}

func utmWKT(zone int, south bool) string {
	hemisphere, northing := "N", 0.0
	if south {
		hemisphere, northing = "S", 10000000.0
	}
	return fmt.Sprintf(`PROJCS["WGS_1984_UTM_Zone_%d%s",%s,PROJECTION["Transverse_Mercator"],`+
		`PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",%.1f],`+
		`PARAMETER["Central_Meridian",%.1f],PARAMETER["Scale_Factor",0.9996],`+
		`PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`,
		zone, hemisphere, wgs84GeogCS, northing, float64(6*zone-183))
}

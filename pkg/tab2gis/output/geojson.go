package output

import (
	"github.com/paulmach/orb/geojson"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// ToGeoJSON renders the figures of report as a FeatureCollection. Each
// feature carries the figure name, source, table, table_id, run_id and crs.
func ToGeoJSON(report *tab2gis.Report) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	crsName := ""
	if report.CRS != nil {
		crsName = report.CRS.String()
	}

	for _, r := range report.Figures {
		f := geojson.NewFeature(r.Geometry)
		f.Properties["name"] = r.Figure.Name
		f.Properties["source"] = r.Figure.Source
		f.Properties["table"] = r.Figure.Table
		f.Properties["table_id"] = r.Figure.TableID
		f.Properties["run_id"] = report.RunID
		f.Properties["crs"] = crsName
		if r.Repaired {
			f.Properties["repaired"] = true
		}
		fc.Append(f)
	}

	return fc.MarshalJSON()
}

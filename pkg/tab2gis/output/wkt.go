package output

import (
	"encoding/csv"
	"io"

	"github.com/paulmach/orb/encoding/wkt"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// ToWKT writes one CSV record per figure: name, source and the WKT of its
// geometry, after a header record.
func ToWKT(w io.Writer, figures []tab2gis.FigureResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "source", "wkt"}); err != nil {
		return err
	}
	for _, r := range figures {
		if err := cw.Write([]string{r.Figure.Name, r.Figure.Source, wkt.MarshalString(r.Geometry)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

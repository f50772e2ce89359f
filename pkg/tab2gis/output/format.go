// Package output writes converted figures as GeoJSON, WKT CSV, DXF or
// shapefiles and loads them into PostGIS.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis"
)

// Format is an export file format.
type Format string

const (
	// FormatGeoJSON writes a GeoJSON FeatureCollection.
	FormatGeoJSON Format = "geojson"
	// FormatWKT writes a CSV of name, source and WKT geometry.
	FormatWKT Format = "wkt"
	// FormatDXF writes an ASCII DXF drawing.
	FormatDXF Format = "dxf"
	// FormatSHP writes an ESRI shapefile set. It is only available for
	// directory output.
	FormatSHP Format = "shp"
)

// ErrUnknownFormat indicates an export format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ErrNeedsDirectory indicates a multi-file format sent to a stream.
var ErrNeedsDirectory = errors.New("format writes several files and needs an output directory")

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatGeoJSON, FormatWKT, FormatDXF, FormatSHP:
		return f, nil
	case "":
		return FormatGeoJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	if f == FormatWKT {
		return "csv"
	}
	return string(f)
}

// Encode renders the figures of report in format f.
func Encode(report *tab2gis.Report, f Format) ([]byte, error) {
	switch f {
	case FormatGeoJSON:
		return ToGeoJSON(report)
	case FormatWKT:
		var buf bytes.Buffer
		if err := ToWKT(&buf, report.Figures); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDXF:
		var buf bytes.Buffer
		if err := ToDXF(&buf, report.Figures); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatSHP:
		return nil, fmt.Errorf("%w: %s", ErrNeedsDirectory, f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Package parser reads tables from spreadsheets, delimited text, HTML
// pages and scanned images into models.Table values.
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ErrUnsupportedFormat indicates an input extension no reader handles.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ReadParams configures table reading.
type ReadParams struct {
	// Sheet restricts XLSX reading to one sheet.
	Sheet string
	// Range restricts XLSX reading to a cell range such as "A1:D40".
	Range string
	// UsePrintAreas restricts each sheet to its first print area when no
	// Range is given.
	UsePrintAreas bool
	// Language is the OCR language, "eng" when empty.
	Language string
	// Detection overrides the table detection thresholds.
	Detection *TableDetectionParams
}

func (p ReadParams) detection() TableDetectionParams {
	if p.Detection != nil {
		return *p.Detection
	}
	return DefaultTableParams()
}

// Read reads every table of the file at path, choosing the reader from
// the file extension.
func Read(path string, params ReadParams) (*models.Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, params)
	case ".csv", ".txt":
		return ReadCSV(path, params)
	case ".html", ".htm":
		return ReadHTML(path, params)
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return ReadImage(path, params)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// sourceName is the file base name without extension.
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// gridTable builds the single table of a grid read from a non-spreadsheet
// source.
func gridTable(source, name string, rows [][]string, params ReadParams) (models.Table, bool) {
	area, ok := DetectTableRange(rows, nil, params.detection())
	if !ok {
		return models.Table{}, false
	}
	return BuildTable(source, name, rows, area), true
}

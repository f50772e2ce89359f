package parser

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ErrOCRNotEnabled is returned when an image is read but OCR support was
// not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrNoText indicates OCR produced no readable text.
var ErrNoText = errors.New("OCR produced no readable text")

// ReadImage recognizes a table in a PNG, JPEG or TIFF image.
func ReadImage(path string, params ReadParams) (*models.Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lang := params.Language
	if lang == "" {
		lang = "eng"
	}

	text, err := recognize(data, lang)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	source := sourceName(path)
	wb := &models.Workbook{BookName: source}
	if t, ok := gridTable(source, source, TextToRows(text), params); ok {
		wb.Tables = append(wb.Tables, t)
	}
	return wb, nil
}

// TextToRows splits recognized text into whitespace-separated cells and
// pads rows to equal length. When the first row is not a header (it is
// shorter than the widest row or holds a number), a header of column
// numbers is prepended.
func TextToRows(text string) [][]string {
	var rows [][]string
	width := 0
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		rows = append(rows, fields)
		width = max(width, len(fields))
	}
	if len(rows) == 0 {
		return nil
	}

	for i, r := range rows {
		for len(r) < width {
			r = append(r, "")
		}
		rows[i] = r
	}

	if !isHeader(rows[0], width) {
		header := make([]string, width)
		for i := range header {
			header[i] = strconv.Itoa(i + 1)
		}
		rows = append([][]string{header}, rows...)
	}
	return rows
}

func isHeader(row []string, width int) bool {
	for _, cell := range row {
		if cell == "" {
			return false
		}
		if _, ok := parseValue(cell).(string); !ok {
			return false
		}
	}
	return len(row) == width
}

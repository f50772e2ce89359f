package parser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ReadCSV reads a delimited text file as a single table. The delimiter is
// sniffed from the first line among ',', ';' and tab.
func ReadCSV(path string, params ReadParams) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	source := sourceName(path)
	wb := &models.Workbook{BookName: source}
	if t, ok := gridTable(source, source, rows, params); ok {
		wb.Tables = append(wb.Tables, t)
	}
	return wb, nil
}

func parseCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(string(first))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	return cr.ReadAll()
}

func sniffDelimiter(sample string) rune {
	line, _, _ := strings.Cut(sample, "\n")
	best, bestCount := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

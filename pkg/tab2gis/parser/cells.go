package parser

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// BuildTable turns a grid of cell text into a table. The first non-empty
// row of area is the header; following rows with data become table rows,
// keyed by header name. Blank headers are named after their column letter
// and repeated headers get a ".n" suffix.
func BuildTable(source, name string, rows [][]string, area models.CellRange) models.Table {
	t := models.Table{Source: source, Name: name}

	headerIdx := -1
	for rowIdx := area.R1 - 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		if rowHasData(rows[rowIdx], area) {
			headerIdx = rowIdx
			break
		}
	}
	if headerIdx < 0 {
		return t
	}

	header := make(map[int]string)
	seen := make(map[string]int)
	for colIdx := area.C1 - 1; colIdx < area.C2; colIdx++ {
		label := strings.TrimSpace(cellAt(rows[headerIdx], colIdx))
		if label == "" {
			label, _ = excelize.ColumnNumberToName(colIdx + 1)
		}
		if n := seen[label]; n > 0 {
			seen[label] = n + 1
			label = label + "." + strconv.Itoa(n)
		} else {
			seen[label] = 1
		}
		header[colIdx] = label
		t.Columns = append(t.Columns, label)
	}

	for rowIdx := headerIdx + 1; rowIdx < area.R2 && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cellMap := make(map[string]interface{})
		hasData := false

		for colIdx := area.C1 - 1; colIdx < area.C2 && colIdx < len(row); colIdx++ {
			cellValue := strings.TrimSpace(row[colIdx])
			if cellValue == "" {
				continue
			}
			hasData = true
			cellMap[header[colIdx]] = parseValue(cellValue)
		}

		if hasData {
			t.Rows = append(t.Rows, models.Row{R: rowIdx + 1, C: cellMap})
		}
	}

	return t
}

func rowHasData(row []string, area models.CellRange) bool {
	for colIdx := area.C1 - 1; colIdx < area.C2 && colIdx < len(row); colIdx++ {
		if strings.TrimSpace(row[colIdx]) != "" {
			return true
		}
	}
	return false
}

func cellAt(row []string, colIdx int) string {
	if colIdx < len(row) {
		return row[colIdx]
	}
	return ""
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

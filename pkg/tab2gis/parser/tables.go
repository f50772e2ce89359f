package parser

import (
	"strings"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTableRange finds the region of rows (optionally restricted to
// limit) that likely holds a table. The returned range is 1-based. It
// reports false when the region is too sparse to be a table.
func DetectTableRange(rows [][]string, limit *models.CellRange, params TableDetectionParams) (models.CellRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows, limit)
	if minRow < 0 {
		return models.CellRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)

	if nonEmptyCells < params.MinNonemptyCells {
		return models.CellRange{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return models.CellRange{}, false
	}

	return models.CellRange{R1: minRow + 1, C1: minCol + 1, R2: maxRow + 1, C2: maxCol + 1}, true
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string, limit *models.CellRange) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if isBlankCell(cell) {
				continue
			}
			if limit != nil && !limit.Contains(rowIdx+1, colIdx+1) {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if !isBlankCell(row[colIdx]) {
				count++
			}
		}
	}
	return count
}

func isBlankCell(cell string) bool {
	return strings.TrimSpace(cell) == ""
}

package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		// Look for _xlnm.Print_Area defined name
		if strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			sheetName, areas := parsePrintAreaReference(dn.RefersTo)
			if sheetName != "" && len(areas) > 0 {
				result[sheetName] = append(result[sheetName], areas...)
			}
		}
	}

	return result
}

// ParseRange parses a user-supplied range such as "A1:D40" or "$B$3:$E$90".
func ParseRange(s string) (models.CellRange, error) {
	area := parseRangeToArea(strings.TrimSpace(s))
	if area == nil {
		return models.CellRange{}, fmt.Errorf("invalid cell range %q", s)
	}
	return *area, nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.CellRange) {
	var areas []models.CellRange

	// Split by comma for multiple print areas
	parts := strings.Split(ref, ",")

	var sheetName string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by ! to separate sheet name and range
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			if sheetName == "" {
				sheetName = sheet
			}

			if area := parseRangeToArea(part[idx+1:]); area != nil {
				areas = append(areas, *area)
			}
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10.
func parseRangeToArea(rangeStr string) *models.CellRange {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.CellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}
}

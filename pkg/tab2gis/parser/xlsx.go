package parser

import (
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ReadXLSX reads one table per sheet of an Excel workbook.
func ReadXLSX(path string, params ReadParams) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var limit *models.CellRange
	if params.Range != "" {
		area, err := ParseRange(params.Range)
		if err != nil {
			return nil, err
		}
		limit = &area
	}

	var printAreas map[string][]models.CellRange
	if params.UsePrintAreas && limit == nil {
		printAreas = ExtractPrintAreas(f)
	}

	sheetList := f.GetSheetList()
	if params.Sheet != "" {
		if idx, _ := f.GetSheetIndex(params.Sheet); idx < 0 {
			return nil, fmt.Errorf("sheet %q not found in %s", params.Sheet, filepath.Base(path))
		}
		sheetList = []string{params.Sheet}
	}

	wb := &models.Workbook{BookName: filepath.Base(path)}
	source := sourceName(path)

	for _, sheetName := range sheetList {
		rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			log.WithField("sheet", sheetName).Warnf("reading rows: %v", err)
			continue
		}

		sheetLimit := limit
		if areas := printAreas[sheetName]; len(areas) > 0 {
			sheetLimit = &areas[0]
		}

		area, ok := DetectTableRange(rows, sheetLimit, params.detection())
		if !ok {
			log.WithField("sheet", sheetName).Debug("no table detected")
			continue
		}

		wb.Tables = append(wb.Tables, BuildTable(source, sheetName, rows, area))
	}

	return wb, nil
}

package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	// Header on row 2, data from column B.
	f.SetCellValue(sheetName, "B2", "Componente")
	f.SetCellValue(sheetName, "C2", "Vértice")
	f.SetCellValue(sheetName, "D2", "Este")
	f.SetCellValue(sheetName, "E2", "Norte")
	f.SetCellValue(sheetName, "B3", "Lote 1")
	f.SetCellValue(sheetName, "C3", 1)
	f.SetCellValue(sheetName, "D3", 277000.5)
	f.SetCellValue(sheetName, "E3", 8667000)
	f.SetCellValue(sheetName, "C4", 2)
	f.SetCellValue(sheetName, "D4", 277100)
	f.SetCellValue(sheetName, "E4", 8667000)
	f.SetCellValue(sheetName, "C6", 3)
	f.SetCellValue(sheetName, "D6", 277100)
	f.SetCellValue(sheetName, "E6", 8667100)

	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}

	path := filepath.Join(t.TempDir(), "parcelas.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t)

	wb, err := ReadXLSX(path, ReadParams{})
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}

	// The empty "Notes" sheet holds no table.
	if len(wb.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(wb.Tables))
	}

	tbl := wb.Tables[0]
	if tbl.Source != "parcelas" || tbl.Name != "Sheet1" {
		t.Errorf("Expected parcelas/Sheet1, got %s/%s", tbl.Source, tbl.Name)
	}

	expectedCols := []string{"Componente", "Vértice", "Este", "Norte"}
	if len(tbl.Columns) != len(expectedCols) {
		t.Fatalf("Expected columns %v, got %v", expectedCols, tbl.Columns)
	}
	for i, c := range expectedCols {
		if tbl.Columns[i] != c {
			t.Errorf("Expected column %q, got %q", c, tbl.Columns[i])
		}
	}

	if len(tbl.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[2].R != 6 {
		t.Errorf("Expected row 6, got %d", tbl.Rows[2].R)
	}
	if tbl.Rows[0].C["Componente"] != "Lote 1" {
		t.Errorf("Expected 'Lote 1', got %v", tbl.Rows[0].C["Componente"])
	}
	if tbl.Rows[0].C["Este"] != 277000.5 {
		t.Errorf("Expected 277000.5, got %v", tbl.Rows[0].C["Este"])
	}
	if tbl.Rows[1].C["Vértice"] != int64(2) {
		t.Errorf("Expected int64(2), got %v (type: %T)", tbl.Rows[1].C["Vértice"], tbl.Rows[1].C["Vértice"])
	}
	if _, ok := tbl.Rows[1].C["Componente"]; ok {
		t.Errorf("Expected blank component cell to be absent")
	}
}

func TestReadXLSXRange(t *testing.T) {
	path := writeWorkbook(t)

	wb, err := ReadXLSX(path, ReadParams{Sheet: "Sheet1", Range: "C2:E4"})
	if err != nil {
		t.Fatalf("ReadXLSX failed: %v", err)
	}
	if len(wb.Tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(wb.Tables))
	}
	tbl := wb.Tables[0]
	if len(tbl.Columns) != 3 || tbl.Columns[0] != "Vértice" {
		t.Errorf("Expected columns starting at Vértice, got %v", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(tbl.Rows))
	}

	if _, err := ReadXLSX(path, ReadParams{Sheet: "Missing"}); err == nil {
		t.Error("Expected error for missing sheet")
	}
}

func TestBuildTableHeaders(t *testing.T) {
	rows := [][]string{
		{"X", "", "X", "Y"},
		{"1", "a", "2", "3"},
		{"", "", "", ""},
	}

	tbl := BuildTable("src", "grid", rows, models.CellRange{R1: 1, C1: 1, R2: 3, C2: 4})

	expected := []string{"X", "B", "X.1", "Y"}
	for i, c := range expected {
		if tbl.Columns[i] != c {
			t.Errorf("Expected column %q, got %q", c, tbl.Columns[i])
		}
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0].C["X.1"] != int64(2) {
		t.Errorf("Expected int64(2), got %v", tbl.Rows[0].C["X.1"])
	}
}

func TestDetectTableRange(t *testing.T) {
	rows := [][]string{
		{},
		{"", "A", "B"},
		{"", "1", "2"},
	}

	area, ok := DetectTableRange(rows, nil, DefaultTableParams())
	if !ok {
		t.Fatal("Expected a table range")
	}
	expected := models.CellRange{R1: 2, C1: 2, R2: 3, C2: 3}
	if area != expected {
		t.Errorf("Expected %+v, got %+v", expected, area)
	}

	if _, ok := DetectTableRange([][]string{{"only"}}, nil, DefaultTableParams()); ok {
		t.Error("Expected sparse sheet to be rejected")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

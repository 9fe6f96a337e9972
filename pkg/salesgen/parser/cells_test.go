package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Order ID")
	f.SetCellValue(sheetName, "B1", "Quantity")
	f.SetCellValue(sheetName, "A2", "ORD-00002")
	f.SetCellValue(sheetName, "B2", 7)
	f.SetCellValue(sheetName, "C2", 123.45)
	f.SetCellValue(sheetName, "A4", "2024-03-05")

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rows, err := ExtractCells(f2, sheetName)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	// Row 3 is empty and skipped.
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[2].R != 4 {
		t.Errorf("Expected last row index 4, got %d", rows[2].R)
	}
	if rows[0].Value(1) != "Order ID" {
		t.Errorf("Expected 'Order ID', got %v", rows[0].Value(1))
	}
	if rows[1].Value(2) != int64(7) {
		t.Errorf("Expected int64(7), got %v (type: %T)", rows[1].Value(2), rows[1].Value(2))
	}
	if rows[1].Value(3) != 123.45 {
		t.Errorf("Expected 123.45, got %v", rows[1].Value(3))
	}
	if rows[2].Value(1) != "2024-03-05" {
		t.Errorf("Expected date string, got %v (type: %T)", rows[2].Value(1), rows[2].Value(1))
	}
}

func TestExtractCells_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractCells(f, "Nope"); err == nil {
		t.Error("Expected error for missing sheet")
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
		{"ORD-00002", "ORD-00002"},
		{"2024-01-01", "2024-01-01"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input  interface{}
		want   float64
		wantOK bool
	}{
		{int64(3), 3, true},
		{12.5, 12.5, true},
		{"12.5", 0, false},
		{nil, 0, false},
	}

	for _, tt := range tests {
		got, ok := Float(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float(%v) = (%v, %v), expected (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

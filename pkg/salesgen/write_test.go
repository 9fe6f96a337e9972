package salesgen

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCreate_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test_data_sales.xlsx")

	report, err := Create(path, DefaultOptions().WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, 50, report.Rows)
	assert.Equal(t, 12, report.Columns)
	assert.Equal(t, FormatXLSX, report.Format)
	assert.True(t, filepath.IsAbs(report.AbsPath))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sales Data"}, f.GetSheetList())

	rows, err := f.GetRows("Sales Data")
	require.NoError(t, err)
	require.Len(t, rows, 51)
	assert.Equal(t, Headers, rows[0])
	for i, row := range rows {
		assert.Len(t, row, 12, "row %d", i+1)
	}
	assert.Equal(t, "ORD-00002", rows[1][0])
	assert.Equal(t, report.Fixture.Orders[0].OrderDate.Format("2006-01-02"), rows[1][7])

	// Header styling.
	styleID, err := f.GetCellStyle("Sales Data", "C1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Contains(t, strings.ToUpper(style.Font.Color), "FFFFFF")
	assert.Equal(t, "pattern", style.Fill.Type)
	assert.Equal(t, 1, style.Fill.Pattern)
	assert.Contains(t, strings.ToUpper(strings.Join(style.Fill.Color, ",")), "4472C4")

	// Column widths.
	for i, want := range ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		require.NoError(t, err)
		got, err := f.GetColWidth("Sales Data", col)
		require.NoError(t, err)
		assert.Equal(t, want, got, "column %s", col)
	}

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, report.Fixture.ID.String(), props.Identifier)
	assert.Equal(t, "Sales Data", props.Title)
}

func TestCreate_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	_, err := Create(path, DefaultOptions().WithSeed(3))
	require.NoError(t, err)

	_, err = Verify(path, DefaultOptions())
	assert.NoError(t, err)
}

func TestCreate_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	opts := DefaultOptions().WithSeed(42)
	opts.Format = FormatCSV

	report, err := Create(path, opts)
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, report.Format)

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	records, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 51)
	assert.Equal(t, Headers, records[0])

	first := report.Fixture.Orders[0]
	assert.Equal(t, first.OrderID, records[1][0])
	assert.Equal(t, money(first.UnitPrice), records[1][5])
	for _, rec := range records[1:] {
		require.Len(t, rec, 12)
		for _, col := range []int{5, 6, 11} {
			dot := strings.IndexByte(rec[col], '.')
			require.GreaterOrEqual(t, dot, 0, rec[col])
			assert.Len(t, rec[col][dot+1:], 2, rec[col])
		}
	}
}

func TestCreate_WriteError(t *testing.T) {
	missingDir := filepath.Join(t.TempDir(), "no", "such", "dir")

	tests := []struct {
		name   string
		format Format
		file   string
	}{
		{"xlsx", FormatXLSX, "out.xlsx"},
		{"csv", FormatCSV, "out.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions().WithSeed(1)
			opts.Format = tt.format
			path := filepath.Join(missingDir, tt.file)

			_, err := Create(path, opts)
			require.Error(t, err)

			var werr *WriteError
			require.True(t, errors.As(err, &werr), "expected *WriteError, got %T", err)
			assert.Equal(t, path, werr.Path)
			assert.Contains(t, err.Error(), path)
		})
	}
}

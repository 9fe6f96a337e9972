package salesgen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/maxixo/dataworld/internal/logging"
	"github.com/maxixo/dataworld/pkg/models"
	"github.com/maxixo/dataworld/pkg/salesgen/parser"
	"github.com/xuri/excelize/v2"
)

// Header row style.
const (
	headerFontColor = "FFFFFF"
	headerFillColor = "4472C4"
)

// Report describes a fixture written by Create.
type Report struct {
	// Path is the output path as given.
	Path string
	// AbsPath is the absolute output path, or Path if it cannot be resolved.
	AbsPath string
	// Format is the format the file was written in.
	Format Format
	// Rows is the number of data rows, excluding the header.
	Rows int
	// Columns is the number of columns.
	Columns int
	// Fixture is the generated data.
	Fixture *Fixture
	// Summary holds aggregate figures over the orders.
	Summary Summary
}

// Create generates a fixture and writes it to path, replacing any existing
// file. It returns a report of what was written.
func Create(path string, opts Options) (*Report, error) {
	fx, err := Generate(opts)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case FormatCSV:
		err = WriteCSV(path, fx.Orders)
	default:
		err = WriteXLSX(path, fx, opts)
	}
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(fx.Orders)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	logging.OrNull(opts.Logger).Info("fixture written", "path", abs, "format", opts.Format, "rows", len(fx.Orders))

	return &Report{
		Path:    path,
		AbsPath: abs,
		Format:  opts.Format,
		Rows:    len(fx.Orders),
		Columns: len(Headers),
		Fixture: fx,
		Summary: summary,
	}, nil
}

// WriteXLSX writes the fixture as a single-sheet workbook with a styled,
// frozen header row, fixed column widths and a print area covering the data.
func WriteXLSX(path string, fx *Fixture, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := opts.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f, sheet); err != nil {
		return err
	}

	for i, o := range fx.Orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := o.Row()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := layoutSheet(f, sheet, len(fx.Orders)); err != nil {
		return err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       sheet,
		Subject:     "Synthetic sales orders",
		Creator:     "dataworld salesfixture",
		Identifier:  fx.ID.String(),
		Description: fmt.Sprintf("%d generated orders, seed %d", len(fx.Orders), fx.Seed),
	}); err != nil {
		return fmt.Errorf("failed to set document properties: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return NewWriteError(path, err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string) error {
	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func layoutSheet(f *excelize.File, sheet string, rows int) error {
	for i, width := range ColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	ref, err := parser.PrintAreaReference(sheet, models.PrintArea{R1: 1, C1: 1, R2: rows + 1, C2: len(Headers)})
	if err != nil {
		return err
	}
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: ref,
		Scope:    sheet,
	})
}

// WriteCSV writes the orders as CSV with a header line. Currency fields are
// written with exactly two decimals.
func WriteCSV(path string, orders []models.Order) error {
	f, err := os.Create(path)
	if err != nil {
		return NewWriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		return NewWriteError(path, err)
	}
	for _, o := range orders {
		record := []string{
			o.OrderID,
			o.CustomerName,
			o.Category,
			o.ProductName,
			strconv.Itoa(o.Quantity),
			money(o.UnitPrice),
			money(o.TotalAmount),
			o.OrderDate.Format(models.DateLayout),
			o.Region,
			o.Status,
			o.PaymentMethod,
			money(o.ShippingCost),
		}
		if err := w.Write(record); err != nil {
			return NewWriteError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return NewWriteError(path, err)
	}
	if err := f.Close(); err != nil {
		return NewWriteError(path, err)
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

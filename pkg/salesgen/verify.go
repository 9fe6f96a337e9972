package salesgen

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/maxixo/dataworld/pkg/models"
	"github.com/maxixo/dataworld/pkg/salesgen/parser"
	"github.com/xuri/excelize/v2"
)

// maxReportedViolations caps how many violations end up in the error text.
const maxReportedViolations = 5

var orderIDPattern = regexp.MustCompile(`^ORD-\d{5}$`)

// VerifyResult describes a workbook read back by Verify.
type VerifyResult struct {
	// Sheet is the read-back sheet.
	Sheet models.SheetData
	// Rows is the number of non-empty rows, header included.
	Rows int
	// Columns is the width of the occupied range.
	Columns int
	// Violations lists every broken invariant, in row order.
	Violations []string
}

// OK reports whether the workbook satisfied every invariant.
func (r *VerifyResult) OK() bool {
	return len(r.Violations) == 0
}

// ReadSheet reads the named sheet of an xlsx file back into plain values.
func ReadSheet(path, sheetName string) (*models.SheetData, *parser.Bounds, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := parser.ExtractCells(f, sheetName)
	if err != nil {
		return nil, nil, err
	}
	bounds, err := parser.DataBounds(f, sheetName)
	if err != nil {
		return nil, nil, err
	}

	return &models.SheetData{
		Name:       sheetName,
		Rows:       rows,
		DataRange:  bounds.Range,
		PrintAreas: parser.ExtractPrintAreas(f)[sheetName],
	}, &bounds, nil
}

// Verify reads an xlsx fixture and checks it against the fixture invariants:
// a header row followed by opts.Rows fully populated rows of len(Headers)
// columns, totals equal to round(quantity*price, 2), catalog-consistent
// category/product pairs and currency values with at most two decimals.
// A workbook that breaks any of them yields ErrFixtureInvalid along with the
// result listing every violation.
func Verify(path string, opts Options) (*VerifyResult, error) {
	sheet, bounds, err := ReadSheet(path, opts.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := &VerifyResult{
		Sheet:   *sheet,
		Rows:    len(sheet.Rows),
		Columns: bounds.Cols,
	}
	v := &violations{}

	wantRange := fmt.Sprintf("A1:%s%d", mustColumnName(len(Headers)), opts.Rows+1)
	if bounds.Range != wantRange {
		v.addf("data range is %q, expected %q", bounds.Range, wantRange)
	}
	if bounds.Density() != 1 {
		v.addf("%d of %d cells are empty", bounds.Rows*bounds.Cols-bounds.Filled, bounds.Rows*bounds.Cols)
	}
	for _, area := range sheet.PrintAreas {
		if area.Rows() != opts.Rows+1 || area.Cols() != len(Headers) {
			v.addf("print area covers %dx%d cells, expected %dx%d", area.Rows(), area.Cols(), opts.Rows+1, len(Headers))
		}
	}

	if len(sheet.Rows) == 0 {
		v.addf("sheet is empty")
	} else {
		checkHeader(v, sheet.Rows[0])
		cat := opts.catalog()
		for _, row := range sheet.Rows[1:] {
			checkOrderRow(v, cat, row)
		}
	}

	res.Violations = v.list
	if !res.OK() {
		shown := res.Violations
		if len(shown) > maxReportedViolations {
			shown = shown[:maxReportedViolations]
		}
		return res, fmt.Errorf("%w: %d violation(s): %s", ErrFixtureInvalid, len(res.Violations), strings.Join(shown, "; "))
	}
	return res, nil
}

type violations struct {
	list []string
}

func (v *violations) addf(format string, args ...interface{}) {
	v.list = append(v.list, fmt.Sprintf(format, args...))
}

func checkHeader(v *violations, row models.CellRow) {
	if row.R != 1 {
		v.addf("header is on row %d", row.R)
	}
	for i, want := range Headers {
		if got := row.Value(i + 1); got != want {
			v.addf("header column %d is %v, expected %q", i+1, got, want)
		}
	}
}

func checkOrderRow(v *violations, cat *Catalog, row models.CellRow) {
	id, _ := row.Value(1).(string)
	if !orderIDPattern.MatchString(id) {
		v.addf("row %d: order id %q does not match ORD-NNNNN", row.R, id)
	} else if id != fmt.Sprintf("ORD-%05d", row.R) {
		v.addf("row %d: order id %q does not match its row", row.R, id)
	}

	category, _ := row.Value(3).(string)
	product, _ := row.Value(4).(string)
	if !cat.HasCategory(category) {
		v.addf("row %d: unknown category %q", row.R, category)
	} else if !cat.HasProduct(category, product) {
		v.addf("row %d: product %q is not in category %q", row.R, product, category)
	}

	qty, ok := row.Value(5).(int64)
	if !ok || qty < minQuantity || qty > maxQuantity {
		v.addf("row %d: quantity %v outside %d-%d", row.R, row.Value(5), minQuantity, maxQuantity)
	}

	price, priceOK := currency(v, row, 6, "unit price")
	total, totalOK := currency(v, row, 7, "total amount")
	currency(v, row, 12, "shipping cost")

	if ok && priceOK && totalOK && math.Abs(round2(float64(qty)*price)-total) > 1e-9 {
		v.addf("row %d: total %.2f != %d x %.2f", row.R, total, qty, price)
	}
}

// currency reads a numeric column and flags values with more than two decimals.
func currency(v *violations, row models.CellRow, col int, name string) (float64, bool) {
	x, ok := parser.Float(row.Value(col))
	if !ok {
		v.addf("row %d: %s %v is not numeric", row.R, name, row.Value(col))
		return 0, false
	}
	if math.Abs(x*100-math.Round(x*100)) > 1e-6 {
		v.addf("row %d: %s %v has more than 2 decimals", row.R, name, x)
	}
	return x, true
}

func mustColumnName(n int) string {
	name, err := excelize.ColumnNumberToName(n)
	if err != nil {
		panic(err)
	}
	return name
}

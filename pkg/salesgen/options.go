// Package salesgen generates spreadsheet fixtures of synthetic sales orders.
package salesgen

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Format represents the output file format.
type Format string

const (
	// FormatXLSX writes a styled Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatCSV writes a plain comma-separated file with the same columns.
	FormatCSV Format = "csv"
)

// MaxRows is the largest row count whose order ids still fit ORD-NNNNN.
const MaxRows = 99998

// Options configures fixture generation.
type Options struct {
	// Rows is the number of data rows (orders) to generate.
	Rows int
	// SheetName is the worksheet name used for xlsx output.
	SheetName string
	// BaseDate is the earliest order date.
	BaseDate time.Time
	// DateSpanDays is the number of distinct days an order date can fall on.
	DateSpanDays int
	// Seed makes generation reproducible. If nil, the clock seeds the generator.
	Seed *int64
	// Catalog supplies the value tables. If nil, DefaultCatalog is used.
	Catalog *Catalog
	// Format selects the writer used by Create.
	Format Format
	// Logger receives debug output. If nil, nothing is logged.
	Logger hclog.Logger
}

// DefaultOptions returns the options reproducing the classic sales fixture:
// 50 unseeded orders on a "Sales Data" sheet dated within 2024.
func DefaultOptions() Options {
	return Options{
		Rows:         50,
		SheetName:    "Sales Data",
		BaseDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateSpanDays: 365,
		Format:       FormatXLSX,
	}
}

// WithSeed returns a copy of o seeded with seed.
func (o Options) WithSeed(seed int64) Options {
	o.Seed = &seed
	return o
}

// catalog returns the configured catalog or the default one.
func (o Options) catalog() *Catalog {
	if o.Catalog != nil {
		return o.Catalog
	}
	return DefaultCatalog()
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Rows > MaxRows {
		return fmt.Errorf("%w: rows must be between 1 and %d, got %d", ErrInvalidOptions, MaxRows, o.Rows)
	}
	if o.DateSpanDays <= 0 {
		return fmt.Errorf("%w: date span must be > 0 days", ErrInvalidOptions)
	}
	if strings.TrimSpace(o.SheetName) == "" {
		return fmt.Errorf("%w: sheet name is empty", ErrInvalidOptions)
	}
	switch o.Format {
	case FormatXLSX, FormatCSV:
	default:
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidOptions, o.Format)
	}
	return o.catalog().Validate()
}

// FormatFromPath infers the output format from the file extension,
// defaulting to xlsx.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: unsupported format %q (must be xlsx or csv)", ErrInvalidOptions, s)
	}
}

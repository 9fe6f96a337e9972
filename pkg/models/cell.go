// Package models defines the plain data structures shared by the fixture
// generator and the image inspector.
package models

import "strconv"

// CellRow is one non-empty worksheet row read back from a workbook.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based, as a string) to the parsed cell value:
	// int64, float64 or string.
	C map[string]interface{} `json:"c"`
}

// Value returns the cell at the 1-based column col, or nil when empty.
func (r CellRow) Value(col int) interface{} {
	return r.C[strconv.Itoa(col)]
}

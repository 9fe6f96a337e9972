package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Bounds describes the occupied region of a sheet.
type Bounds struct {
	// Range is the bounding range in A1 notation, e.g. "A1:L51".
	Range string
	// Rows and Cols are the dimensions of the bounding box.
	Rows, Cols int
	// Filled is the number of non-empty cells inside the box.
	Filled int
}

// Density returns the share of cells inside the box that hold a value.
func (b Bounds) Density() float64 {
	if b.Rows == 0 || b.Cols == 0 {
		return 0
	}
	return float64(b.Filled) / float64(b.Rows*b.Cols)
}

// DataBounds finds the bounding box of non-empty cells in a sheet.
// An empty sheet yields a zero Bounds.
func DataBounds(f *excelize.File, sheetName string) (Bounds, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Bounds{}, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return Bounds{}, nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return Bounds{}, err
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{
		Range:  fmt.Sprintf("%s:%s", startCell, endCell),
		Rows:   maxRow - minRow + 1,
		Cols:   maxCol - minCol + 1,
		Filled: countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol),
	}, nil
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
// All values are -1 when there are none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
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
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}

package models

// SheetData is the read-back view of a single generated sheet.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows contains the non-empty rows with parsed cell values.
	Rows []CellRow `json:"rows,omitempty"`
	// DataRange is the bounding range of non-empty cells, e.g. "A1:L51".
	DataRange string `json:"data_range,omitempty"`
	// PrintAreas contains the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}

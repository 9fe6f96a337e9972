package models

// ImageInfo holds the header fields read from a PNG stream.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width uint32 `json:"width"`
	// Height is the image height in pixels.
	Height uint32 `json:"height"`
	// Phys is the first physical-dimensions block, nil when absent.
	Phys *PhysicalDims `json:"phys,omitempty"`
}

// PhysicalDims is the decoded content of a pHYs chunk.
type PhysicalDims struct {
	// PPUX is the horizontal pixels per unit.
	PPUX uint32 `json:"ppux"`
	// PPUY is the vertical pixels per unit.
	PPUY uint32 `json:"ppuy"`
	// Unit is the unit specifier: 0 unspecified, 1 meter.
	Unit uint8 `json:"unit"`
	// DPIX is the horizontal DPI, set only when Unit is 1.
	DPIX *float64 `json:"dpi_x,omitempty"`
	// DPIY is the vertical DPI, set only when Unit is 1.
	DPIY *float64 `json:"dpi_y,omitempty"`
}

package pnginfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/maxixo/dataworld/pkg/models"
)

// Format selects how a report is rendered.
type Format string

const (
	// FormatText renders KEY:value lines.
	FormatText Format = "text"
	// FormatJSON renders a single JSON object.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be text or json)", s)
	}
}

// Render writes info to w in the given format.
func Render(w io.Writer, info *models.ImageInfo, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, info)
	case FormatText, "":
		return WriteText(w, info)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

// WriteText writes WIDTH and HEIGHT, then either the pHYs fields (with
// DPI_X/DPI_Y when the unit is meters) or DPI:unknown.
func WriteText(w io.Writer, info *models.ImageInfo) error {
	var b strings.Builder
	fmt.Fprintf(&b, "WIDTH:%d\n", info.Width)
	fmt.Fprintf(&b, "HEIGHT:%d\n", info.Height)

	if p := info.Phys; p != nil {
		fmt.Fprintf(&b, "PPUX:%d\n", p.PPUX)
		fmt.Fprintf(&b, "PPUY:%d\n", p.PPUY)
		fmt.Fprintf(&b, "UNIT:%d\n", p.Unit)
		if p.DPIX != nil && p.DPIY != nil {
			fmt.Fprintf(&b, "DPI_X:%.2f\n", *p.DPIX)
			fmt.Fprintf(&b, "DPI_Y:%.2f\n", *p.DPIY)
		}
	} else {
		b.WriteString("DPI:unknown\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes info as one indented JSON object.
func WriteJSON(w io.Writer, info *models.ImageInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

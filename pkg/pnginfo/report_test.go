package pnginfo

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/maxixo/dataworld/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_JSON(t *testing.T) {
	dpi := DPI(2835)
	info := &models.ImageInfo{
		Width:  100,
		Height: 50,
		Phys:   &models.PhysicalDims{PPUX: 2835, PPUY: 2835, Unit: UnitMeter, DPIX: &dpi, DPIY: &dpi},
	}

	var out bytes.Buffer
	require.NoError(t, Render(&out, info, FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, float64(100), decoded["width"])
	assert.Equal(t, float64(50), decoded["height"])

	phys, ok := decoded["phys"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), phys["unit"])
	assert.InDelta(t, 72.009, phys["dpi_x"], 1e-9)
}

func TestRender_JSONWithoutPhys(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, &models.ImageInfo{Width: 1, Height: 1}, FormatJSON))
	assert.NotContains(t, out.String(), "phys")
}

func TestRender_DefaultsToText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, &models.ImageInfo{Width: 4, Height: 3}, ""))
	assert.Equal(t, "WIDTH:4\nHEIGHT:3\nDPI:unknown\n", out.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxixo/dataworld/pkg/pnginfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(chunkType string, data []byte) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.WriteString(chunkType)
	buf.Write(data)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(append([]byte(chunkType), data...)))
	return buf.Bytes()
}

func writePNG(t *testing.T, withPhys bool) string {
	t.Helper()

	hdr := make([]byte, 13)
	binary.BigEndian.PutUint32(hdr[0:4], 100)
	binary.BigEndian.PutUint32(hdr[4:8], 50)
	hdr[8], hdr[9] = 8, 6

	var buf bytes.Buffer
	buf.Write(pnginfo.Signature)
	buf.Write(chunk("IHDR", hdr))
	if withPhys {
		phys := make([]byte, 9)
		binary.BigEndian.PutUint32(phys[0:4], 2835)
		binary.BigEndian.PutUint32(phys[4:8], 2835)
		phys[8] = 1
		buf.Write(chunk("pHYs", phys))
	}
	buf.Write(chunk("IEND", nil))

	path := filepath.Join(t.TempDir(), "screen.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestExecute_NoPhys(t *testing.T) {
	code, stdout, _ := run(writePNG(t, false))
	assert.Equal(t, 0, code)
	assert.Equal(t, "WIDTH:100\nHEIGHT:50\nDPI:unknown\n", stdout)
}

func TestExecute_WithPhys(t *testing.T) {
	code, stdout, _ := run("--verify-crc", writePNG(t, true))
	assert.Equal(t, 0, code)
	assert.Equal(t, "WIDTH:100\nHEIGHT:50\nPPUX:2835\nPPUY:2835\nUNIT:1\nDPI_X:72.01\nDPI_Y:72.01\n", stdout)
}

func TestExecute_JSON(t *testing.T) {
	code, stdout, _ := run("--format", "json", writePNG(t, true))
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, `"width": 100`)
	assert.Contains(t, stdout, `"ppux": 2835`)
}

func TestExecute_BadSignature(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.png")
	require.NoError(t, os.WriteFile(path, []byte("GIF89a this is not a png at all"), 0644))

	code, stdout, stderr := run(path)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR: not a PNG")
}

func TestExecute_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.png")

	code, stdout, stderr := run(missing)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "ERROR: file not found")
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"two args", []string{"a.png", "b.png"}},
		{"bad format", []string{"--format", "xml", "a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := run(tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "ERROR:")
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(pnginfo.ErrTruncated))
	assert.Equal(t, 2, exitCode(pnginfo.NewChunkError("pHYs", 33, pnginfo.ErrUnknownUnit)))
	assert.Equal(t, 1, exitCode(errors.New("permission denied")))
}

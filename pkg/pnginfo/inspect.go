// Package pnginfo reads the dimensions and pixel density of PNG images
// directly from their chunk stream, without decoding pixel data.
package pnginfo

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/maxixo/dataworld/internal/logging"
	"github.com/maxixo/dataworld/pkg/models"
)

// Signature is the 8-byte magic every PNG stream starts with.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Unit specifiers of the pHYs chunk.
const (
	UnitUnknown uint8 = 0
	UnitMeter   uint8 = 1
)

// MetersPerInch converts pixels per meter to pixels per inch.
const MetersPerInch = 0.0254

const (
	ihdrLength = 13
	physLength = 9
)

// Options configures inspection.
type Options struct {
	// VerifyCRC checks the CRC of every chunk read.
	VerifyCRC bool
	// Logger receives one debug line per chunk. If nil, nothing is logged.
	Logger hclog.Logger
}

// InspectFile checks that path exists and inspects the PNG stored there.
// A missing file fails with ErrFileNotFound before anything is read.
func InspectFile(path string, opts Options) (*models.ImageInfo, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Inspect(bufio.NewReader(f), opts)
}

// Inspect reads the signature and header chunk of a PNG stream, then scans
// the following chunks for the first pHYs block. The scan ends at that
// block, at IEND, or when fewer than 8 bytes remain.
func Inspect(r io.Reader, opts Options) (*models.ImageInfo, error) {
	log := logging.OrNull(opts.Logger)
	cr := newChunkReader(r, opts.VerifyCRC)

	sig := make([]byte, len(Signature))
	if err := cr.readFull(sig); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: stream shorter than the signature", ErrFormatMismatch)
		}
		return nil, err
	}
	if !bytes.Equal(sig, Signature) {
		return nil, fmt.Errorf("%w: bad signature % x", ErrFormatMismatch, sig)
	}

	hdr, err := cr.next(keepHeader)
	if err == io.EOF {
		return nil, NewChunkError(ChunkIHDR, cr.off, ErrTruncated)
	}
	if err != nil {
		return nil, err
	}

	info := &models.ImageInfo{
		Width:  binary.BigEndian.Uint32(hdr.Data[0:4]),
		Height: binary.BigEndian.Uint32(hdr.Data[4:8]),
	}
	log.Debug("header", "width", info.Width, "height", info.Height)

	for {
		c, err := cr.next(keepPhys)
		if err == io.EOF {
			log.Debug("end of stream", "offset", cr.off)
			break
		}
		if err != nil {
			return nil, err
		}
		log.Debug("chunk", "type", c.Type, "length", c.Length, "offset", c.Offset)

		if c.Type == ChunkIEND {
			break
		}
		if c.Type == ChunkPHYs {
			phys, err := parsePhys(c.Data)
			if err != nil {
				return nil, NewChunkError(c.Type, c.Offset, err)
			}
			info.Phys = phys
			break
		}
	}

	return info, nil
}

// keepHeader accepts only a well-formed IHDR as the first chunk.
func keepHeader(chunkType string, length uint32) (bool, error) {
	if chunkType != ChunkIHDR {
		return false, fmt.Errorf("%w: first chunk is %q, expected %s", ErrFormatMismatch, chunkType, ChunkIHDR)
	}
	if length != ihdrLength {
		return false, fmt.Errorf("%w: %s length %d, expected %d", ErrFormatMismatch, ChunkIHDR, length, ihdrLength)
	}
	return true, nil
}

// keepPhys retains pHYs payloads and streams past everything else.
func keepPhys(chunkType string, length uint32) (bool, error) {
	if chunkType != ChunkPHYs {
		return false, nil
	}
	if length != physLength {
		return false, fmt.Errorf("%w: %s length %d, expected %d", ErrMalformedChunk, ChunkPHYs, length, physLength)
	}
	return true, nil
}

func parsePhys(data []byte) (*models.PhysicalDims, error) {
	p := &models.PhysicalDims{
		PPUX: binary.BigEndian.Uint32(data[0:4]),
		PPUY: binary.BigEndian.Uint32(data[4:8]),
		Unit: data[8],
	}

	switch p.Unit {
	case UnitMeter:
		dpiX, dpiY := DPI(p.PPUX), DPI(p.PPUY)
		p.DPIX, p.DPIY = &dpiX, &dpiY
	case UnitUnknown:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownUnit, p.Unit)
	}
	return p, nil
}

// DPI converts a pixels-per-meter density to dots per inch.
func DPI(pixelsPerMeter uint32) float64 {
	return float64(pixelsPerMeter) * MetersPerInch
}

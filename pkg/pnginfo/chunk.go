package pnginfo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
)

// Chunk type tags.
const (
	ChunkIHDR = "IHDR"
	ChunkPHYs = "pHYs"
	ChunkIEND = "IEND"
)

const (
	prefixSize = 8 // 4-byte length + 4-byte type tag
	crcSize    = 4

	// maxChunkLength is the largest length the PNG format allows.
	maxChunkLength = 1<<31 - 1
)

// chunk is one decoded chunk. Data is only populated for chunks the reader
// was asked to keep.
type chunk struct {
	Type   string
	Length uint32
	Offset int64
	Data   []byte
}

// chunkReader walks a PNG chunk stream with bounded reads.
type chunkReader struct {
	r         io.Reader
	off       int64
	verifyCRC bool
	crc       hash.Hash32
}

func newChunkReader(r io.Reader, verifyCRC bool) *chunkReader {
	return &chunkReader{r: r, verifyCRC: verifyCRC, crc: crc32.NewIEEE()}
}

// readFull reads exactly len(buf) bytes. It returns io.ErrUnexpectedEOF or
// io.EOF unchanged so callers can decide what a short read means.
func (cr *chunkReader) readFull(buf []byte) error {
	n, err := io.ReadFull(cr.r, buf)
	cr.off += int64(n)
	return err
}

// next reads the next chunk. keep reports whether the payload of a chunk
// type should be retained; other payloads are streamed past without being
// buffered. It returns io.EOF when fewer than prefixSize bytes remain.
func (cr *chunkReader) next(keep func(chunkType string, length uint32) (bool, error)) (*chunk, error) {
	start := cr.off

	var prefix [prefixSize]byte
	if err := cr.readFull(prefix[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, io.EOF
		}
		return nil, err
	}

	c := &chunk{
		Length: binary.BigEndian.Uint32(prefix[0:4]),
		Type:   string(prefix[4:8]),
		Offset: start,
	}
	if c.Length > maxChunkLength {
		return nil, NewChunkError(c.Type, start, fmt.Errorf("%w: length %d exceeds %d", ErrMalformedChunk, c.Length, maxChunkLength))
	}

	want, err := keep(c.Type, c.Length)
	if err != nil {
		return nil, NewChunkError(c.Type, start, err)
	}

	cr.crc.Reset()
	cr.crc.Write(prefix[4:8])

	if want {
		c.Data = make([]byte, c.Length)
		if err := cr.readFull(c.Data); err != nil {
			return nil, cr.truncated(c, err)
		}
		cr.crc.Write(c.Data)
	} else {
		var sink io.Writer = io.Discard
		if cr.verifyCRC {
			sink = cr.crc
		}
		n, err := io.CopyN(sink, cr.r, int64(c.Length))
		cr.off += n
		if err != nil {
			return nil, cr.truncated(c, err)
		}
	}

	var sum [crcSize]byte
	if err := cr.readFull(sum[:]); err != nil {
		return nil, cr.truncated(c, err)
	}
	if cr.verifyCRC {
		if got, want := binary.BigEndian.Uint32(sum[:]), cr.crc.Sum32(); got != want {
			return nil, NewChunkError(c.Type, start, fmt.Errorf("%w: stored %08x, computed %08x", ErrChecksum, got, want))
		}
	}

	return c, nil
}

func (cr *chunkReader) truncated(c *chunk, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return NewChunkError(c.Type, c.Offset, err)
}

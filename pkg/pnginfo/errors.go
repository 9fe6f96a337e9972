package pnginfo

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFormatMismatch indicates the input does not start like a PNG stream.
var ErrFormatMismatch = errors.New("not a PNG")

// ErrTruncated indicates the stream ended inside a chunk.
var ErrTruncated = errors.New("truncated PNG stream")

// ErrMalformedChunk indicates a chunk whose length is impossible for its type.
var ErrMalformedChunk = errors.New("malformed chunk")

// ErrUnknownUnit indicates a pHYs unit specifier other than 0 or 1.
var ErrUnknownUnit = errors.New("unknown pHYs unit")

// ErrChecksum indicates a chunk whose CRC does not match its contents.
var ErrChecksum = errors.New("chunk CRC mismatch")

// ChunkError locates a failure inside the chunk stream.
type ChunkError struct {
	Type   string // chunk type tag, empty if the prefix itself was unreadable
	Offset int64  // byte offset of the chunk prefix in the stream
	Err    error
}

func (e *ChunkError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("chunk at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("%s chunk at offset %d: %v", e.Type, e.Offset, e.Err)
}

func (e *ChunkError) Unwrap() error {
	return e.Err
}

// NewChunkError creates a new ChunkError.
func NewChunkError(chunkType string, offset int64, err error) *ChunkError {
	return &ChunkError{
		Type:   chunkType,
		Offset: offset,
		Err:    err,
	}
}

// IsValidationError reports whether err means the input is missing or is not
// a readable PNG, as opposed to an I/O or usage failure.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrFileNotFound,
		ErrFormatMismatch,
		ErrTruncated,
		ErrMalformedChunk,
		ErrUnknownUnit,
		ErrChecksum,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

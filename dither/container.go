package dither

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// GridKind tags the payload of a grid snapshot.
type GridKind uint8

const (
	// GridGray marks an 8-bit grayscale payload (values 0..255).
	GridGray GridKind = 1
	// GridBilevel marks a quantized payload (values 0 or 255 only).
	GridBilevel GridKind = 2
)

var gridMagic = [4]byte{'F', 'S', 'D', 0x1A}

// gridHeaderSize is the size in bytes of a grid snapshot header:
// 4-byte magic, kind, one reserved byte, u24le width, u24le height.
const gridHeaderSize = 12

// maxGridDim is the largest dimension a snapshot header can carry.
const maxGridDim = 0xFFFFFF

// MarshalGrid serializes a row-major grid into the snapshot container:
// a fixed header followed by a single zstd frame of width*height bytes.
func MarshalGrid(pix []uint8, width, height int, kind GridKind) ([]byte, error) {
	if err := validate(pix, width, height); err != nil {
		return nil, err
	}
	if kind != GridGray && kind != GridBilevel {
		return nil, errors.New("dither: invalid grid kind")
	}
	if width > maxGridDim || height > maxGridDim {
		return nil, ErrBadDimensions
	}

	hdr := make([]byte, gridHeaderSize, gridHeaderSize+len(pix)/2)
	copy(hdr[0:4], gridMagic[:])
	hdr[4] = byte(kind)
	encodeU24LE(hdr[6:9], uint32(width))
	encodeU24LE(hdr[9:12], uint32(height))

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(pix, hdr)
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseGrid decodes a snapshot produced by MarshalGrid. The returned buffer
// does not alias data.
func ParseGrid(data []byte) (pix []uint8, width, height int, kind GridKind, err error) {
	if len(data) < gridHeaderSize {
		return nil, 0, 0, 0, fmt.Errorf("dither: grid snapshot: unexpected EOF: want at least %d bytes, got %d", gridHeaderSize, len(data))
	}
	if [4]byte{data[0], data[1], data[2], data[3]} != gridMagic {
		return nil, 0, 0, 0, errors.New("dither: grid snapshot: invalid magic")
	}
	kind = GridKind(data[4])
	if kind != GridGray && kind != GridBilevel {
		return nil, 0, 0, 0, errors.New("dither: grid snapshot: invalid grid kind")
	}
	width = int(decodeU24LE(data[6:9]))
	height = int(decodeU24LE(data[9:12]))
	if width <= 0 || height <= 0 {
		return nil, 0, 0, 0, ErrBadDimensions
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	defer dec.Close()

	pix, err = dec.DecodeAll(data[gridHeaderSize:], make([]uint8, 0, width*height))
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("dither: grid snapshot: %w", err)
	}
	if len(pix) != width*height {
		return nil, 0, 0, 0, fmt.Errorf("dither: grid snapshot: payload is %d bytes, want %d", len(pix), width*height)
	}
	return pix, width, height, kind, nil
}

func decodeU24LE(b []byte) uint32 {
	// b must be at least 3 bytes.
	_ = b[2]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func encodeU24LE(dst []byte, v uint32) {
	// dst must be at least 3 bytes.
	_ = dst[2]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
}

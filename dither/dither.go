// Package dither converts grayscale rasters to bilevel (black/white)
// rasters using Floyd–Steinberg error diffusion.
//
// Two engines produce byte-identical output: DitherSerial sweeps the image
// in raster order, and DitherWavefront runs a fixed pool of workers along
// the image's anti-diagonals with per-pixel dependency signaling. The
// selection between them is owned by the caller; SerialThreshold is the
// pixel count below which the setup cost of the wavefront engine outweighs
// its speedup.
package dither

import "errors"

var (
	// ErrBadDimensions reports a non-positive width or height.
	ErrBadDimensions = errors.New("dither: invalid image dimensions")

	// ErrBadBuffer reports a pixel buffer whose length does not match
	// width*height.
	ErrBadBuffer = errors.New("dither: invalid grayscale buffer length")

	// ErrBadWorkers reports a worker count below 1.
	ErrBadWorkers = errors.New("dither: worker count must be at least 1")
)

// SerialThreshold is the pixel count below which callers should prefer
// DitherSerial even when more than one worker is available.
const SerialThreshold = 10000

func validate(pix []uint8, width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrBadDimensions
	}
	if len(pix) != width*height {
		return ErrBadBuffer
	}
	return nil
}

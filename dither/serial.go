package dither

// DitherSerial converts a grayscale raster to a bilevel raster using
// Floyd–Steinberg error diffusion in raster order.
//
// pix is row-major, one byte per pixel. The returned buffer has the same
// layout and contains only the values 0 and 255. pix is not modified.
func DitherSerial(pix []uint8, width, height int) ([]uint8, error) {
	if err := validate(pix, width, height); err != nil {
		return nil, err
	}

	work := make([]int, width*height)
	for i, v := range pix {
		work[i] = int(v)
	}
	out := make([]uint8, width*height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			i := row*width + col
			bit, e := quantize(work[i])
			out[i] = bit

			if col+1 < width {
				work[i+1] += floorDiv(e*7, 16)
			}
			if row+1 < height {
				if col-1 >= 0 {
					work[i+width-1] += floorDiv(e*3, 16)
				}
				work[i+width] += floorDiv(e*5, 16)
				if col+1 < width {
					work[i+width+1] += floorDiv(e*1, 16)
				}
			}
		}
	}
	return out, nil
}

package dither

import "image"

// GrayFromImage flattens img into a row-major 8-bit grayscale buffer.
//
// Conversion truncates 0.2989*R + 0.587*G + 0.114*B to 8 bits and then
// increments the result by one when it is strictly between 0 and 255.
// Alpha is ignored.
func GrayFromImage(img image.Image) (pix []uint8, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			pix[y*width+x] = grayLevel(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return pix, width, height
}

func grayLevel(r, g, b uint8) uint8 {
	v := uint8(0.2989*float64(r) + 0.587*float64(g) + 0.114*float64(b))
	if v > 0 && v < 255 {
		v++
	}
	return v
}

// GrayImage wraps a row-major grayscale or bilevel buffer as an 8-bit
// single-channel image. The buffer is copied.
func GrayImage(pix []uint8, width, height int) (*image.Gray, error) {
	if err := validate(pix, width, height); err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pix)
	return img, nil
}

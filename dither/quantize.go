package dither

// quantize maps an accumulated intensity to a bilevel output value and the
// quantization error left to diffuse onto unprocessed neighbors.
func quantize(v int) (bit uint8, err int) {
	if v > 128 {
		return 255, v - 255
	}
	return 0, v
}

// floorDiv divides rounding toward negative infinity. Go's integer division
// truncates toward zero, which differs for negative numerators; accumulators
// go negative once errors diffuse, so every propagated-error share must use
// floor semantics.
func floorDiv(numerator, denominator int) int {
	if numerator >= 0 {
		return numerator / denominator
	}
	return (numerator - denominator + 1) / denominator
}

// fsTaps are the Floyd–Steinberg diffusion targets relative to the quantized
// pixel. Weights are sixteenths.
var fsTaps = [4]struct {
	dr, dc int
	weight int
}{
	{0, 1, 7},
	{1, -1, 3},
	{1, 0, 5},
	{1, 1, 1},
}

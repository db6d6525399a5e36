package dither

import "testing"

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{31, 16, 1},
		{32, 16, 2},
		{-1, 16, -1},
		{-15, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{-32, 16, -2},
		{-33, 16, -3},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.n, tt.d); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.n, tt.d, got, tt.want)
		}
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		v   int
		bit uint8
		err int
	}{
		{0, 0, 0},
		{100, 0, 100},
		{128, 0, 128},
		{129, 255, -126},
		{200, 255, -55},
		{255, 255, 0},
		{300, 255, 45},
		{-40, 0, -40},
	}
	for _, tt := range tests {
		bit, err := quantize(tt.v)
		if bit != tt.bit || err != tt.err {
			t.Errorf("quantize(%d) = (%d, %d), want (%d, %d)", tt.v, bit, err, tt.bit, tt.err)
		}
	}
}

func TestFSTapsSumToSixteen(t *testing.T) {
	sum := 0
	for _, tap := range fsTaps {
		sum += tap.weight
	}
	if sum != 16 {
		t.Fatalf("tap weights sum to %d, want 16", sum)
	}
}

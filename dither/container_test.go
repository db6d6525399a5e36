package dither_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mvolkov/wavefront-dither/dither"
)

func TestGridSnapshotRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, kind := range []dither.GridKind{dither.GridGray, dither.GridBilevel} {
		const w, h = 19, 7
		pix := make([]uint8, w*h)
		for i := range pix {
			if kind == dither.GridBilevel {
				pix[i] = uint8(rng.Intn(2)) * 255
			} else {
				pix[i] = uint8(rng.Intn(256))
			}
		}

		data, err := dither.MarshalGrid(pix, w, h, kind)
		if err != nil {
			t.Fatalf("MarshalGrid kind=%d: %v", kind, err)
		}

		gotPix, gotW, gotH, gotKind, err := dither.ParseGrid(data)
		if err != nil {
			t.Fatalf("ParseGrid kind=%d: %v", kind, err)
		}
		if gotW != w || gotH != h || gotKind != kind {
			t.Fatalf("header mismatch: got %dx%d kind=%d, want %dx%d kind=%d",
				gotW, gotH, gotKind, w, h, kind)
		}
		if diff := cmp.Diff(pix, gotPix); diff != "" {
			t.Fatalf("payload mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestParseGridRejectsCorruptInput(t *testing.T) {
	pix := make([]uint8, 16)
	data, err := dither.MarshalGrid(pix, 4, 4, dither.GridGray)
	if err != nil {
		t.Fatalf("MarshalGrid: %v", err)
	}

	t.Run("truncated header", func(t *testing.T) {
		if _, _, _, _, err := dither.ParseGrid(data[:8]); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]uint8(nil), data...)
		bad[0] ^= 0xFF
		if _, _, _, _, err := dither.ParseGrid(bad); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		bad := append([]uint8(nil), data...)
		bad[4] = 0x7F
		if _, _, _, _, err := dither.ParseGrid(bad); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("dimension payload mismatch", func(t *testing.T) {
		bad := append([]uint8(nil), data...)
		bad[6] = 5 // claim width 5 over a 4x4 payload
		if _, _, _, _, err := dither.ParseGrid(bad); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("corrupt frame", func(t *testing.T) {
		bad := append([]uint8(nil), data...)
		for i := 12; i < len(bad); i++ {
			bad[i] ^= 0xA5
		}
		if _, _, _, _, err := dither.ParseGrid(bad); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestMarshalGridValidation(t *testing.T) {
	if _, err := dither.MarshalGrid(make([]uint8, 4), 2, 2, dither.GridKind(0)); err == nil {
		t.Fatal("invalid kind: expected an error")
	}
	if _, err := dither.MarshalGrid(make([]uint8, 3), 2, 2, dither.GridGray); err == nil {
		t.Fatal("short buffer: expected an error")
	}
	if _, err := dither.MarshalGrid(nil, 0, 1, dither.GridGray); err == nil {
		t.Fatal("zero width: expected an error")
	}
}

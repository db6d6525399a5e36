package dither

import "sync"

// DitherWavefront converts a grayscale raster to a bilevel raster using
// Floyd–Steinberg error diffusion executed by a fixed pool of workers.
//
// Diagonal d (the set of pixels with row+col == d) is owned by worker
// d % workers; each worker sweeps its diagonals in increasing order and the
// pixels of each diagonal in increasing row order. A pixel is quantized only
// after its same-diagonal predecessor (row-1, col+1) and its left neighbor
// (row, col-1) are marked processed; error deposits take the target pixel's
// lock, so concurrent deposits into one accumulator never lose updates.
//
// The pool is created and joined once per call. The output is byte-identical
// to DitherSerial for the same input. pix is not modified.
func DitherWavefront(pix []uint8, width, height int, workers int) ([]uint8, error) {
	if err := validate(pix, width, height); err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, ErrBadWorkers
	}

	work := make([]int, width*height)
	for i, v := range pix {
		work[i] = int(v)
	}
	out := make([]uint8, width*height)
	cells := newSyncGrid(width, height)

	var wg sync.WaitGroup
	wg.Add(workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			defer wg.Done()
			wavefrontWorker(id, workers, width, height, work, out, cells)
		}(id)
	}
	wg.Wait()
	return out, nil
}

// wavefrontWorker drives one worker through every diagonal it owns.
//
// Only (row-1, col+1) and (row, col-1) are waited on. The (row-1, col)
// deposit is not waited on directly: it is ordered through (row, col-1),
// whose own wait set includes (row-1, col). That chain requires width >= 2;
// a one-column image has no in-bounds wait targets at all.
func wavefrontWorker(id, workers, width, height int, work []int, out []uint8, cells *syncGrid) {
	for diag := 0; diag < width+height-1; diag++ {
		if diag%workers != id {
			continue
		}
		for row := 0; row < height; row++ {
			col := diag - row
			if col < 0 || col >= width {
				continue
			}

			if row > 0 && col+1 < width {
				cells.at(row-1, col+1).awaitProcessed()
			}
			if col > 0 {
				cells.at(row, col-1).awaitProcessed()
			}

			i := row*width + col
			c := cells.at(row, col)
			c.mu.Lock()
			bit, e := quantize(work[i])
			out[i] = bit
			c.mu.Unlock()

			for _, t := range fsTaps {
				tr, tc := row+t.dr, col+t.dc
				if tr >= height || tc < 0 || tc >= width {
					continue
				}
				target := cells.at(tr, tc)
				target.mu.Lock()
				work[tr*width+tc] += floorDiv(e*t.weight, 16)
				target.mu.Unlock()
			}

			c.markProcessed()
		}
	}
}

package dither

import "sync"

// cell pairs one pixel's accumulator lock with its completion signal.
// processed transitions false -> true exactly once and never resets.
type cell struct {
	mu        sync.Mutex
	cond      sync.Cond
	processed bool
}

// syncGrid is a per-pixel synchronization arena backed by a single
// contiguous allocation, indexed row*width+col.
type syncGrid struct {
	width int
	cells []cell
}

func newSyncGrid(width, height int) *syncGrid {
	g := &syncGrid{width: width, cells: make([]cell, width*height)}
	for i := range g.cells {
		g.cells[i].cond.L = &g.cells[i].mu
	}
	return g
}

func (g *syncGrid) at(row, col int) *cell {
	return &g.cells[row*g.width+col]
}

// awaitProcessed blocks the calling worker until the cell has been
// quantized. The caller must hold no other cell's lock.
func (c *cell) awaitProcessed() {
	c.mu.Lock()
	for !c.processed {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// markProcessed sets the completion flag and wakes every waiter.
func (c *cell) markProcessed() {
	c.mu.Lock()
	c.processed = true
	c.cond.Broadcast()
	c.mu.Unlock()
}

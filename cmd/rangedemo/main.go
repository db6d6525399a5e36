// Command rangedemo runs a ranged critical section timing demonstration.
//
// It launches 1000 goroutines, ten of which are writers placed at unique
// random positions in the ID space. The ID space is cut into ranges at the
// writer positions; ranges execute strictly in order. A writer range holds
// the critical section exclusively, a reader range runs all of its members
// concurrently. Each participant busy-waits for a precise interval measured
// against the monotonic clock, and the program prints per-range start,
// duration, and end times at the close.
package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"
)

const (
	totalWorkers = 1000
	writerCount  = 10

	writerHold = 10 * time.Millisecond
	readerHold = time.Millisecond
)

type rangeInfo struct {
	start, end int
	writer     bool

	started   bool
	startedAt time.Duration
	endedAt   time.Duration
}

// sequencer gates goroutines so that ranges run one after another, in range
// order, with all members of a range inside the section at once.
type sequencer struct {
	mu        sync.Mutex
	cond      *sync.Cond
	current   int
	remaining []int
	ranges    []rangeInfo
	epoch     time.Time
}

func (s *sequencer) run(group int, hold time.Duration) {
	s.mu.Lock()
	for s.current != group {
		s.cond.Wait()
	}
	r := &s.ranges[group]
	if !r.started {
		r.started = true
		r.startedAt = time.Since(s.epoch)
	}
	s.mu.Unlock()

	spinWait(hold)

	s.mu.Lock()
	s.remaining[group]--
	if s.remaining[group] == 0 {
		r.endedAt = time.Since(s.epoch)
		s.current++
		s.cond.Broadcast()
	}
	s.mu.Unlock()
}

// spinWait busy-waits for d against the monotonic clock instead of sleeping,
// so the held interval does not inherit scheduler wakeup jitter.
func spinWait(d time.Duration) {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		runtime.Gosched()
	}
}

func main() {
	fmt.Println("=== Ordered Critical Section Ranges ===")
	fmt.Printf("Participants: %d (writers: %d, readers: %d)\n\n",
		totalWorkers, writerCount, totalWorkers-writerCount)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	writers := rng.Perm(totalWorkers)[:writerCount]
	sort.Ints(writers)
	for _, w := range writers {
		fmt.Printf("Writer at position: %d\n", w)
	}
	fmt.Println()

	ranges, groupOf := buildRanges(writers)

	s := &sequencer{
		remaining: make([]int, len(ranges)),
		ranges:    ranges,
		epoch:     time.Now(),
	}
	s.cond = sync.NewCond(&s.mu)
	for g, r := range ranges {
		s.remaining[g] = r.end - r.start + 1
	}

	var wg sync.WaitGroup
	wg.Add(totalWorkers)
	for id := 0; id < totalWorkers; id++ {
		go func(id int) {
			defer wg.Done()
			hold := readerHold
			if s.ranges[groupOf[id]].writer {
				hold = writerHold
			}
			s.run(groupOf[id], hold)
		}(id)
	}
	wg.Wait()

	printSummary(s.ranges, time.Since(s.epoch))
}

// buildRanges cuts the ID space at the sorted writer positions: each writer
// is a single-member exclusive range, the readers between two writers form
// one shared range.
func buildRanges(writers []int) ([]rangeInfo, []int) {
	var ranges []rangeInfo
	next := 0
	for _, w := range writers {
		if w > next {
			ranges = append(ranges, rangeInfo{start: next, end: w - 1})
		}
		ranges = append(ranges, rangeInfo{start: w, end: w, writer: true})
		next = w + 1
	}
	if next < totalWorkers {
		ranges = append(ranges, rangeInfo{start: next, end: totalWorkers - 1})
	}

	groupOf := make([]int, totalWorkers)
	for g, r := range ranges {
		for id := r.start; id <= r.end; id++ {
			groupOf[id] = g
		}
	}
	return ranges, groupOf
}

func printSummary(ranges []rangeInfo, elapsed time.Duration) {
	fmt.Println("Range summary:")
	for g, r := range ranges {
		kind := "readers"
		if r.writer {
			kind = "writer"
		}
		fmt.Printf("  range %3d [%4d..%4d] %-7s start=%9.3fms duration=%9.3fms end=%9.3fms\n",
			g, r.start, r.end, kind,
			float64(r.startedAt)/float64(time.Millisecond),
			float64(r.endedAt-r.startedAt)/float64(time.Millisecond),
			float64(r.endedAt)/float64(time.Millisecond))
	}
	fmt.Printf("\nTotal elapsed: %.3fms\n", float64(elapsed)/float64(time.Millisecond))
}

// Command fsbench measures the wall-clock scaling of the fsdither binary.
//
// For each thread count from 1 to -max-threads it runs the binary -runs
// times, averages the elapsed time, and records the speedup relative to the
// one-thread baseline in a CSV file with the header
// Threads,Average_Time_sec,Speedup.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/mvolkov/wavefront-dither/dither"
)

func main() {
	var (
		bin        string
		inPath     string
		outPath    string
		runs       int
		maxThreads int
		gen        string
		seed       int64
		cpuprofile string
	)
	flag.StringVar(&bin, "bin", "./fsdither", "path to the compiled fsdither binary")
	flag.StringVar(&inPath, "in", "input.png", "input file passed to the binary")
	flag.StringVar(&outPath, "out", "dithering_performance.csv", "CSV results path")
	flag.IntVar(&runs, "runs", 5, "runs per thread count")
	flag.IntVar(&maxThreads, "max-threads", 6, "highest thread count to measure")
	flag.StringVar(&gen, "gen", "", "generate a WxH noise grid snapshot at -in before measuring (runs the binary with -raw)")
	flag.Int64Var(&seed, "seed", 1, "seed for -gen noise")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "optional CPU profile output path")
	flag.Parse()

	if runs < 1 || maxThreads < 1 {
		fmt.Fprintln(os.Stderr, "runs and max-threads must be >= 1")
		os.Exit(2)
	}

	raw := false
	if gen != "" {
		w, h, err := parseSize(gen)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if err := writeNoiseSnapshot(inPath, w, h, seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		raw = true
		fmt.Printf("Generated %dx%d noise input at %s\n", w, h, inPath)
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	scratchDir, err := os.MkdirTemp("", "fsbench")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer os.RemoveAll(scratchDir)
	scratch := filepath.Join(scratchDir, "output.png")
	if raw {
		scratch = filepath.Join(scratchDir, "output.fsd")
	}

	csv, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Fprintf(csv, "Threads,Average_Time_sec,Speedup\n")

	var baseline float64
	for threads := 1; threads <= maxThreads; threads++ {
		fmt.Printf("  Running with %d threads (x%d times)...\n", threads, runs)
		avg, err := timeRuns(bin, inPath, scratch, threads, runs, raw)
		if err != nil {
			_ = csv.Close()
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if threads == 1 {
			baseline = avg
			fmt.Printf("  Baseline (1 thread) time: %.4f seconds\n", baseline)
		}
		speedup := baseline / avg
		fmt.Printf("  Result: Time = %.4f s, Speedup = %.2fx\n\n", avg, speedup)
		fmt.Fprintf(csv, "%d,%.6f,%.6f\n", threads, avg, speedup)
	}

	if err := csv.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Analysis complete. Data saved to %s.\n", outPath)
}

// timeRuns executes the dithering binary runs times and returns the average
// elapsed wall-clock time in seconds.
func timeRuns(bin, in, out string, threads, runs int, raw bool) (float64, error) {
	args := []string{"-in", in, "-out", out, "-threads", strconv.Itoa(threads)}
	if raw {
		args = append(args, "-raw")
	}

	var total float64
	for i := 0; i < runs; i++ {
		cmd := exec.Command(bin, args...)
		start := time.Now()
		if err := cmd.Run(); err != nil {
			return 0, fmt.Errorf("fsbench: %s with %d threads: %w", bin, threads, err)
		}
		total += time.Since(start).Seconds()
	}
	return total / float64(runs), nil
}

func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("fsbench: invalid -gen size %q (want WxH)", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err == nil {
		h, err = strconv.Atoi(parts[1])
	}
	if err != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("fsbench: invalid -gen size %q (want WxH)", s)
	}
	return w, h, nil
}

func writeNoiseSnapshot(path string, w, h int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = uint8(rng.Intn(256))
	}
	data, err := dither.MarshalGrid(pix, w, h, dither.GridGray)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

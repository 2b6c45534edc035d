// Command basicstats prints descriptive statistics for a file of numbers.
//
// Usage:
//
//	basicstats [flags] <filename>
//
// The file holds whitespace-separated decimal numbers. Scanning stops at
// the first token that is not a number; anything after it is ignored.
//
// Examples:
//
//	basicstats samples.txt
//	basicstats -capacity 1024 samples.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-stats/buffer"
	"github.com/cwbudde/algo-stats/describe"
	"github.com/cwbudde/algo-stats/ingest"
)

func main() {
	capacity := flag.Int("capacity", ingest.DefaultCapacity, "initial buffer capacity")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: basicstats [flags] <filename>\n\n")
		fmt.Fprintf(os.Stderr, "Prints descriptive statistics for a file of whitespace-separated numbers.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, flag.Arg(0), *capacity); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string, capacity int) error {
	buf, err := buffer.New(capacity)
	if err != nil {
		return err
	}
	defer buf.Release()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	loadErr := ingest.Load(f, buf)
	closeErr := f.Close()
	if loadErr != nil {
		return fmt.Errorf("read %s: %w", path, loadErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", path, closeErr)
	}

	values := buf.Values()
	describe.Sort(values)

	s, err := describe.Describe(values)
	if err != nil {
		return err
	}

	printReport(w, s, buf.Cap())

	return nil
}

func printReport(w io.Writer, s describe.Summary, capacity int) {
	fmt.Fprintf(w, "Results:\n--------\n")
	fmt.Fprintf(w, "Num values: %d\n", s.Size)
	fmt.Fprintf(w, "Mean: %.3f\n", s.Mean)
	fmt.Fprintf(w, "Median: %.3f\n", s.Median)
	fmt.Fprintf(w, "Mode: %.3f\n", s.Mode)
	fmt.Fprintf(w, "Standard Deviation: %.3f\n", s.StdDev)
	fmt.Fprintf(w, "Harmonic Mean: %.3f\n", s.HarmonicMean)
	fmt.Fprintf(w, "Unused array capacity: %d\n", capacity-s.Size)
}

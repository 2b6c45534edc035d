// Package ingest loads whitespace-separated float64 tokens from a byte
// stream into a buffer.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-stats/buffer"
)

// DefaultCapacity is the initial buffer capacity used by LoadFile.
const DefaultCapacity = 20

// Load scans whitespace-separated tokens from r, parses each as a
// float64, and appends it to buf. Scanning stops silently at the first
// token that does not parse as a number; the rest of the stream is
// ignored. A read error from the stream itself is returned.
func Load(r io.Reader, buf *buffer.Buffer) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil
		}
		buf.Append(v)
	}

	return sc.Err()
}

// LoadFile opens path and loads its contents into a fresh buffer with
// DefaultCapacity initial storage. The returned buffer may hold zero
// values; callers must handle an empty dataset. On error no buffer is
// retained.
func LoadFile(path string) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := buffer.New(DefaultCapacity)
	if err != nil {
		return nil, err
	}

	if err := Load(f, buf); err != nil {
		buf.Release()
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}

	return buf, nil
}

package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-stats/buffer"
	"github.com/cwbudde/algo-stats/internal/testutil"
)

func loadString(t *testing.T, s string) *buffer.Buffer {
	t.Helper()
	buf, err := buffer.New(1)
	if err != nil {
		t.Fatalf("buffer.New error = %v", err)
	}
	if err := Load(strings.NewReader(s), buf); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	return buf
}

func TestLoadWhitespaceSeparated(t *testing.T) {
	buf := loadString(t, "1.5 -2\t3e2\n\n4")
	testutil.RequireSliceNearlyEqual(t, buf.Values(), []float64{1.5, -2, 300, 4}, 0)
}

func TestLoadStopsAtFirstBadToken(t *testing.T) {
	buf := loadString(t, "10 20 20 30 abc 40")
	testutil.RequireSliceNearlyEqual(t, buf.Values(), []float64{10, 20, 20, 30}, 0)
}

func TestLoadEmptyStream(t *testing.T) {
	buf := loadString(t, "")
	if buf.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", buf.Len())
	}
}

func TestLoadOnlyGarbage(t *testing.T) {
	buf := loadString(t, "abc 1 2")
	if buf.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (scan stops before any value)", buf.Len())
	}
}

func TestLoadGrowsBuffer(t *testing.T) {
	buf := loadString(t, strings.Repeat("1 ", 100))
	if buf.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", buf.Len())
	}
	if buf.Cap() != 128 {
		t.Fatalf("Cap() = %d, want 128 (doubling from 1)", buf.Cap())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(path, []byte("10 20 20 30 abc 40"), 0o600); err != nil {
		t.Fatal(err)
	}

	buf, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error = %v", err)
	}
	defer buf.Release()

	testutil.RequireSliceNearlyEqual(t, buf.Values(), []float64{10, 20, 20, 30}, 0)
	if buf.Cap() != DefaultCapacity {
		t.Fatalf("Cap() = %d, want %d", buf.Cap(), DefaultCapacity)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("LoadFile on a missing file should fail")
	}
}

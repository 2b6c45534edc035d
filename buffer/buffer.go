package buffer

import "errors"

// ErrInvalidCapacity is returned by New for a non-positive initial capacity.
var ErrInvalidCapacity = errors.New("buffer: initial capacity must be >= 1")

// Buffer holds float64 values in insertion order, doubling its backing
// storage whenever an append finds it full. The valid prefix is
// [0, Len()); slots beyond Len() are reserved but undefined.
type Buffer struct {
	values []float64
}

// New returns an empty Buffer with storage for initialCapacity values.
func New(initialCapacity int) (*Buffer, error) {
	if initialCapacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer{values: make([]float64, 0, initialCapacity)}, nil
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{values: s}
}

// Append stores v at the end of the buffer, doubling capacity first when
// the buffer is full. Amortized O(1). Appending to a released buffer
// re-acquires storage starting from capacity 1.
func (b *Buffer) Append(v float64) {
	if len(b.values) == cap(b.values) {
		b.grow()
	}
	b.values = append(b.values, v)
}

// grow doubles the backing storage, preserving the valid prefix.
func (b *Buffer) grow() {
	newCap := 2 * cap(b.values)
	if newCap == 0 {
		newCap = 1
	}
	grown := make([]float64, len(b.values), newCap)
	copy(grown, b.values)
	b.values = grown
}

// Values returns the valid prefix of the backing storage.
// The slice shares memory with the Buffer; it is not a copy.
func (b *Buffer) Values() []float64 {
	return b.values
}

// Len returns the number of appended values.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Cap returns the current capacity of the backing storage.
func (b *Buffer) Cap() int {
	return cap(b.values)
}

// Copy returns a deep copy of the valid prefix.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.values))
	copy(s, b.values)
	return &Buffer{values: s}
}

// Release drops the owned storage. Safe to call on a nil or
// already-released Buffer.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.values = nil
}

package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when
// many datasets are loaded in sequence.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns an empty Buffer with storage for at least capacity values.
// Callers must return it via Put when done.
func (p *Pool) Get(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	b := p.pool.Get().(*Buffer)
	if cap(b.values) < capacity {
		b.values = make([]float64, 0, capacity)
	} else {
		b.values = b.values[:0]
	}
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

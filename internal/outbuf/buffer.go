// Package outbuf implements the codec engine's output buffer protocol: a
// pooled growable byte buffer plus the caller-allocate-or-we-allocate
// contract every encoder and decoder in this module follows.
package outbuf

import (
	"sync"
)

// ScratchDefaultSize is the default capacity of a scratch buffer drawn from
// the pool. DER-encoded structures handled by this module (OIDs, RDNs,
// Names, small integers) are small, so a modest default avoids the
// megabyte-scale pools a columnar time-series format would need.
const (
	ScratchDefaultSize  = 256
	ScratchMaxThreshold = 1024 * 16 // 16KiB
)

// Buffer is a growable byte buffer tuned for the two-pass (measure, then
// write) sizing pattern used throughout the codec and dispatch packages.
type Buffer struct {
	B []byte
}

// NewBuffer creates a new Buffer with the given default capacity.
func NewBuffer(defaultSize int) *Buffer {
	return &Buffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Len returns the length of the buffer.
func (b *Buffer) Len() int {
	return len(b.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (b *Buffer) MustWrite(data []byte) {
	b.B = append(b.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If the buffer has sufficient spare capacity, Grow does
// nothing.
func (b *Buffer) Grow(requiredBytes int) {
	available := cap(b.B) - len(b.B)
	if available >= requiredBytes {
		return
	}

	growBy := ScratchDefaultSize
	if cap(b.B) > 4*ScratchDefaultSize {
		growBy = cap(b.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

// Pool is a pool of Buffers to minimize allocations across repeated
// encode calls.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewPool creates a new Pool with buffers of the given default size.
func NewPool(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool.
func (p *Pool) Get() *Buffer {
	buf, _ := p.pool.Get().(*Buffer)
	return buf
}

// Put returns a Buffer to the pool for reuse. Overly large buffers are
// discarded instead of pooled, to avoid memory bloat from one
// unusually large RDN/Name encode pinning a pool slot.
func (p *Pool) Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if p.maxThreshold > 0 && cap(buf.B) > p.maxThreshold {
		return
	}

	buf.Reset()
	p.pool.Put(buf)
}

var scratchPool = NewPool(ScratchDefaultSize, ScratchMaxThreshold)

// GetScratch retrieves a Buffer from the default scratch pool. Used by
// structured encoders (RDN, Name) that need a transient per-element buffer
// before assembling the final SET OF / SEQUENCE OF output.
func GetScratch() *Buffer {
	return scratchPool.Get()
}

// PutScratch returns a Buffer to the default scratch pool.
func PutScratch(buf *Buffer) {
	scratchPool.Put(buf)
}

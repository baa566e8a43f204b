// Package pool recycles the scratch memory used while building snapshots.
package pool

import "sync"

const (
	// SnapshotBufferDefaultSize covers a window of 256 raw samples plus header.
	SnapshotBufferDefaultSize = 4 * 1024
	// SnapshotBufferMaxThreshold drops buffers that grew past it instead of
	// pooling them.
	SnapshotBufferMaxThreshold = 256 * 1024
)

// ByteBuffer is an append-only byte slice that can be returned to a pool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a buffer with defaultSize capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of buffered bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow makes room for at least n more bytes without reallocating.
//
// Small buffers grow by SnapshotBufferDefaultSize, larger ones by a quarter
// of their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := SnapshotBufferDefaultSize
	if cap(bb.B) > 4*SnapshotBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	growBy = max(growBy, n)

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// ByteBufferPool is a sync.Pool of ByteBuffers that refuses to retain
// buffers above maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var snapshotPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)

// GetSnapshotBuffer retrieves a buffer from the shared snapshot pool.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotPool.Get()
}

// PutSnapshotBuffer returns a buffer to the shared snapshot pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotPool.Put(bb)
}

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice returns a pooled slice of length size and the function that
// gives it back. The contents are not cleared.
//
//	values, release := pool.GetFloat64Slice(n)
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	if cap(*ptr) < size {
		*ptr = make([]float64, size)
	}
	*ptr = (*ptr)[:size]

	return *ptr, func() { float64SlicePool.Put(ptr) }
}

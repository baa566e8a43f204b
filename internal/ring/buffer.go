// Package ring implements the fixed-capacity circular sample store that backs
// a sliding window.
package ring

import "math"

// Buffer is a circular store of at most n float64 samples.
//
// It allocates n+1 slots so that an empty buffer (head == tail) can be told
// apart from a full one ((head+1) % len == tail) without a separate counter.
// Slots that have never been written hold the fill value NaN, which is also
// what Push reports as evicted until the buffer fills up.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	slots []float64
	head  int // next write position
	tail  int // oldest sample
}

// New creates a buffer holding up to n samples. n must be positive.
func New(n int) *Buffer {
	if n <= 0 {
		panic("ring: capacity must be positive")
	}

	b := &Buffer{slots: make([]float64, n+1)}
	b.fill()

	return b
}

// Cap returns the number of samples the buffer holds when full.
func (b *Buffer) Cap() int {
	return len(b.slots) - 1
}

// Len returns the number of resident samples.
func (b *Buffer) Len() int {
	return (b.head - b.tail + len(b.slots)) % len(b.slots)
}

// Full reports whether the next Push evicts a sample.
func (b *Buffer) Full() bool {
	return (b.head+1)%len(b.slots) == b.tail
}

// Push appends value and returns the sample it displaced.
//
// Once the buffer is full the oldest sample is evicted and returned;
// before that Push returns NaN.
func (b *Buffer) Push(value float64) float64 {
	evicted := math.NaN()
	if b.Full() {
		evicted = b.slots[b.tail]
		b.slots[b.tail] = math.NaN()
		b.tail = (b.tail + 1) % len(b.slots)
	}

	b.slots[b.head] = value
	b.head = (b.head + 1) % len(b.slots)

	return evicted
}

// At returns the i-th resident sample, 0 being the oldest.
// It panics if i is out of range.
func (b *Buffer) At(i int) float64 {
	if i < 0 || i >= b.Len() {
		panic("ring: index out of range")
	}

	return b.slots[(b.tail+i)%len(b.slots)]
}

// AppendTo appends the resident samples, oldest first, to dst.
func (b *Buffer) AppendTo(dst []float64) []float64 {
	for i := b.tail; i != b.head; i = (i + 1) % len(b.slots) {
		dst = append(dst, b.slots[i])
	}

	return dst
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.head = 0
	b.tail = 0
	b.fill()
}

func (b *Buffer) fill() {
	for i := range b.slots {
		b.slots[i] = math.NaN()
	}
}

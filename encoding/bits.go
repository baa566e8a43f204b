package encoding

import (
	"encoding/binary"

	"github.com/arloliu/symts/internal/pool"
)

// bitWriter packs bit fields MSB first into a pooled buffer. Whole 64-bit
// words are flushed as they fill; the tail stays in acc until bytes is called.
type bitWriter struct {
	buf   *pool.ByteBuffer
	acc   uint64
	nbits int
}

func newBitWriter() bitWriter {
	return bitWriter{buf: pool.GetSnapshotBuffer()}
}

func (w *bitWriter) writeBit(bit uint64) {
	w.writeBits(bit, 1)
}

// writeBits appends the low n bits of v, n in [0, 64].
func (w *bitWriter) writeBits(v uint64, n int) {
	for n > 0 {
		take := min(n, 64-w.nbits)
		chunk := v >> (n - take)
		if take < 64 {
			chunk &= 1<<take - 1
		}
		w.acc = w.acc<<take | chunk
		w.nbits += take
		n -= take

		if w.nbits == 64 {
			w.buf.B = binary.BigEndian.AppendUint64(w.buf.B, w.acc)
			w.acc, w.nbits = 0, 0
		}
	}
}

// bytes returns the flushed words followed by the pending bits padded with
// zeros to a byte boundary. The writer itself is left unchanged.
func (w *bitWriter) bytes() []byte {
	out := w.buf.B
	if w.nbits == 0 {
		return out
	}

	tail := w.acc << (64 - w.nbits)
	for i := 0; i < (w.nbits+7)/8; i++ {
		out = append(out, byte(tail>>(56-8*i)))
	}

	return out
}

func (w *bitWriter) size() int {
	return w.buf.Len() + (w.nbits+7)/8
}

func (w *bitWriter) reset() {
	w.buf.Reset()
	w.acc, w.nbits = 0, 0
}

func (w *bitWriter) release() {
	pool.PutSnapshotBuffer(w.buf)
	w.buf = nil
}

// bitReader reads bit fields MSB first.
type bitReader struct {
	data []byte
	pos  int
}

func newBitReader(data []byte) bitReader {
	return bitReader{data: data}
}

func (r *bitReader) seek(bit int) {
	r.pos = bit
}

func (r *bitReader) readBit() (uint64, bool) {
	return r.readBits(1)
}

// readBits reads n bits, n in [0, 64], right-aligned in the result.
func (r *bitReader) readBits(n int) (uint64, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		off := r.pos & 7
		avail := 8 - off
		take := min(avail, n)
		b := uint64(r.data[r.pos>>3]) >> (avail - take) & (1<<take - 1)
		v = v<<take | b
		r.pos += take
		n -= take
	}

	return v, true
}

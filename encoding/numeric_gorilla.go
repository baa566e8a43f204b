package encoding

import (
	"iter"
	"math"
	"math/bits"
)

// NumericGorillaEncoder compresses float64 values with the XOR scheme from
// Facebook's Gorilla paper (https://www.vldb.org/pvldb/vol8/p1816-teller.pdf).
//
// The first value is stored as 64 raw bits. Every later value is XORed with
// its predecessor:
//   - XOR 0: a single 0 bit
//   - meaningful bits fit the previous block: bits 10 then the block
//   - otherwise: bits 11, 5 bits of leading zeros, 6 bits of block length
//     minus one, then the block
//
// Slowly moving sensor samples, the typical window content, shrink to a few
// bits each. NaN and infinities are encoded exactly like any other bit pattern.
type NumericGorillaEncoder struct {
	w             bitWriter
	prev          uint64
	count         int
	prevLeading   int
	prevTrailing  int
	prevBlockSize int
}

var _ ColumnarEncoder[float64] = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates an empty Gorilla encoder.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{w: newBitWriter()}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *NumericGorillaEncoder) Write(val float64) {
	if e.w.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	valBits := math.Float64bits(val)
	e.count++
	if e.count == 1 {
		e.prev = valBits
		e.w.writeBits(valBits, 64)

		return
	}

	e.writeXOR(valBits)
}

// WriteSlice appends values in order.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *NumericGorillaEncoder) writeXOR(valBits uint64) {
	xor := valBits ^ e.prev
	e.prev = valBits

	if xor == 0 {
		e.w.writeBit(0)
		return
	}
	e.w.writeBit(1)

	// leading zeros are stored in 5 bits
	leading := min(bits.LeadingZeros64(xor), 31)
	trailing := bits.TrailingZeros64(xor)

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.w.writeBit(0)
		e.w.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.w.writeBit(1)
	e.w.writeBits(uint64(leading), 5)     //nolint:gosec // leading is within [0, 31]
	e.w.writeBits(uint64(blockSize-1), 6) //nolint:gosec // blockSize is within [1, 64]
	e.w.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// Bytes returns the encoded stream padded to a whole byte.
func (e *NumericGorillaEncoder) Bytes() []byte {
	return e.w.bytes()
}

// Len returns the number of encoded values.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *NumericGorillaEncoder) Size() int {
	return e.w.size()
}

// Reset discards the encoded values and the XOR state.
func (e *NumericGorillaEncoder) Reset() {
	e.w.reset()
	e.prev, e.count = 0, 0
	e.prevLeading, e.prevTrailing, e.prevBlockSize = 0, 0, 0
}

// Finish returns the buffer to the pool.
func (e *NumericGorillaEncoder) Finish() {
	if e.w.buf == nil {
		return
	}
	e.w.release()
	e.count = 0
}

// NumericGorillaDecoder decodes columns written by NumericGorillaEncoder.
type NumericGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a Gorilla decoder.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// All yields up to count values, stopping early on a malformed stream.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 {
			return
		}

		br := newBitReader(data)
		prev, ok := br.readBits(64)
		if !ok || !yield(math.Float64frombits(prev)) {
			return
		}

		var trailing, blockSize int
		for i := 1; i < count; i++ {
			prev, trailing, blockSize, ok = nextGorilla(&br, prev, trailing, blockSize)
			if !ok || !yield(math.Float64frombits(prev)) {
				return
			}
		}
	}
}

// At decodes sequentially up to index; Gorilla streams have no random access.
func (d NumericGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, index+1) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}

// nextGorilla reads one XOR record and returns the decoded bits together with
// the block parameters in effect for the following record.
func nextGorilla(br *bitReader, prev uint64, trailing, blockSize int) (uint64, int, int, bool) {
	changed, ok := br.readBit()
	if !ok {
		return 0, 0, 0, false
	}
	if changed == 0 {
		return prev, trailing, blockSize, true
	}

	newBlock, ok := br.readBit()
	if !ok {
		return 0, 0, 0, false
	}
	if newBlock == 1 {
		leading, ok := br.readBits(5)
		if !ok {
			return 0, 0, 0, false
		}
		size, ok := br.readBits(6)
		if !ok {
			return 0, 0, 0, false
		}
		blockSize = int(size) + 1
		trailing = 64 - int(leading) - blockSize
		if trailing < 0 {
			return 0, 0, 0, false
		}
	} else if blockSize == 0 {
		return 0, 0, 0, false
	}

	meaningful, ok := br.readBits(blockSize)
	if !ok {
		return 0, 0, 0, false
	}

	return prev ^ (meaningful << trailing), trailing, blockSize, true
}

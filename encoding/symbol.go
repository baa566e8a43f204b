package encoding

import (
	"iter"
	"math/bits"
)

// SymbolWidth returns the number of bits needed to store the symbols of
// cardinality c, including the sentinel value c itself.
func SymbolWidth(c int) int {
	return bits.Len(uint(c)) //nolint:gosec // cardinality is validated by callers
}

// SymbolEncoder bit-packs word symbols at SymbolWidth(c) bits each: 2 bits
// for c <= 3, 4 bits for c in [8, 15], 5 bits for c = 16.
type SymbolEncoder struct {
	w     bitWriter
	width int
	count int
}

var _ ColumnarEncoder[uint8] = (*SymbolEncoder)(nil)

// NewSymbolEncoder creates an encoder for symbols of cardinality c.
func NewSymbolEncoder(c int) *SymbolEncoder {
	return &SymbolEncoder{w: newBitWriter(), width: SymbolWidth(c)}
}

// Write appends one symbol. Bits above the symbol width are dropped.
func (e *SymbolEncoder) Write(s uint8) {
	if e.w.buf == nil {
		panic("encoder already finished - cannot write symbols after Finish()")
	}

	e.count++
	e.w.writeBits(uint64(s), e.width)
}

// WriteSlice appends symbols in order.
func (e *SymbolEncoder) WriteSlice(symbols []uint8) {
	for _, s := range symbols {
		e.Write(s)
	}
}

// Bytes returns the packed symbols padded to a whole byte.
func (e *SymbolEncoder) Bytes() []byte {
	return e.w.bytes()
}

// Len returns the number of encoded symbols.
func (e *SymbolEncoder) Len() int {
	return e.count
}

// Size returns the packed size in bytes.
func (e *SymbolEncoder) Size() int {
	return e.w.size()
}

// Reset discards the encoded symbols.
func (e *SymbolEncoder) Reset() {
	e.w.reset()
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *SymbolEncoder) Finish() {
	if e.w.buf == nil {
		return
	}
	e.w.release()
	e.count = 0
}

// SymbolDecoder unpacks symbols written by SymbolEncoder.
type SymbolDecoder struct {
	width int
}

var _ ColumnarDecoder[uint8] = SymbolDecoder{}

// NewSymbolDecoder creates a decoder for symbols of cardinality c.
func NewSymbolDecoder(c int) SymbolDecoder {
	return SymbolDecoder{width: SymbolWidth(c)}
}

// All yields count symbols, or nothing when data is too short.
func (d SymbolDecoder) All(data []byte, count int) iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		if count <= 0 || len(data)*8 < count*d.width {
			return
		}

		br := newBitReader(data)
		for range count {
			v, _ := br.readBits(d.width)
			if !yield(uint8(v)) { //nolint:gosec // width is at most 5 bits
				return
			}
		}
	}
}

// At returns the symbol at index without unpacking its predecessors.
func (d SymbolDecoder) At(data []byte, index int, count int) (uint8, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	br := newBitReader(data)
	br.seek(index * d.width)
	v, ok := br.readBits(d.width)

	return uint8(v), ok //nolint:gosec // width is at most 5 bits
}

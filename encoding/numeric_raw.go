package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/symts/endian"
	"github.com/arloliu/symts/internal/pool"
)

// NumericRawEncoder stores float64 values as 8-byte IEEE 754 words in the
// configured byte order. NaN payloads and infinities survive bit for bit.
type NumericRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw encoder writing with engine.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetSnapshotBuffer(),
	}
}

// Write appends one value.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(8)
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(val))
}

// WriteSlice appends values with a single buffer growth.
//
// Panics if Finish has been called.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
}

// Bytes returns the encoded values.
func (e *NumericRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded size, always 8*Len().
func (e *NumericRawEncoder) Size() int {
	return e.buf.Len()
}

// Reset discards the encoded values.
func (e *NumericRawEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	if e.buf == nil {
		return
	}
	pool.PutSnapshotBuffer(e.buf)
	e.buf = nil
	e.count = 0
}

// NumericRawDecoder decodes columns written by NumericRawEncoder. It is
// stateless and safe for concurrent use.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder creates a decoder; engine must match the encoder's.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields count values, or nothing when data holds fewer than count.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if count <= 0 || len(data) < count*8 {
			return
		}

		for i := range count {
			if !yield(math.Float64frombits(d.engine.Uint64(data[i*8:]))) {
				return
			}
		}
	}
}

// At returns the value at index.
func (d NumericRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count || (index+1)*8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[index*8:])), true
}

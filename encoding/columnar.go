package encoding

import "iter"

// ColumnarEncoder appends values of one column to an internal buffer.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded column. The slice is valid until the next
	// Write, WriteSlice, Reset or Finish and must not be modified.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the encoded size in bytes, including a partially filled
	// trailing byte for bit-packed encoders.
	Size() int

	// Reset discards the encoded data so the encoder can start a new column.
	Reset()

	// Finish returns the internal buffer to its pool. The encoder must not be
	// used afterwards; call Bytes first and copy what you need.
	//
	//	enc := encoding.NewNumericRawEncoder(engine)
	//	defer enc.Finish()
	Finish()

	// Write appends a single value.
	Write(data T)

	// WriteSlice appends values in order.
	WriteSlice(values []T)
}

// ColumnarDecoder reads a column produced by the matching encoder.
type ColumnarDecoder[T comparable] interface {
	// All yields up to count values from data. A truncated or malformed
	// column yields fewer values; callers compare against count.
	All(data []byte, count int) iter.Seq[T]

	// At returns the value at index, or false when index is outside
	// [0, count) or data is too short.
	At(data []byte, index int, count int) (T, bool)
}

// Collect drains dec into dst and reports whether exactly count values were
// decoded.
func Collect[T comparable](dec ColumnarDecoder[T], data []byte, count int, dst []T) ([]T, bool) {
	start := len(dst)
	for v := range dec.All(data, count) {
		dst = append(dst, v)
	}

	return dst, len(dst)-start == count
}

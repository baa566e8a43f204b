// Package encoding provides the column codecs used inside symts snapshots.
//
// Every codec implements the generic ColumnarEncoder / ColumnarDecoder pair:
//
//   - NumericRawEncoder / NumericRawDecoder: 8 bytes per float64 in a chosen
//     byte order, random access in O(1)
//   - NumericGorillaEncoder / NumericGorillaDecoder: XOR compression for
//     slowly changing samples, sequential access only
//   - SymbolEncoder / SymbolDecoder: bit-packed word symbols, the width
//     derived from the cardinality so the sentinel always fits
//
// Encoders draw their buffers from a shared pool. Call Finish when done,
// after copying Bytes:
//
//	enc := encoding.NewNumericGorillaEncoder()
//	defer enc.Finish()
//	enc.WriteSlice(samples)
//	payload := append([]byte(nil), enc.Bytes()...)
//
// Decoders are stateless values and safe for concurrent use:
//
//	dec := encoding.NewNumericGorillaDecoder()
//	for v := range dec.All(payload, len(samples)) {
//	    // ...
//	}
package encoding

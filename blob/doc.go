// Package blob serializes words and sliding windows into compact binary
// snapshots.
//
// A snapshot is a 24-byte section.Header followed by a payload:
//
//   - word: the symbols bit-packed at the width required by the cardinality
//   - window: the resident samples oldest first, raw IEEE 754 or Gorilla XOR
//     encoded, so NaN and infinities survive unchanged
//
// The payload may be compressed (None, Zstd, S2, LZ4) and is protected by an
// xxhash64 checksum computed before compression.
//
//	data, err := blob.EncodeWindow(win,
//	    blob.WithValueEncoding(format.TypeGorilla),
//	    blob.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//	restored, err := blob.DecodeWindow(data)
//
// A decoded window is rebuilt by appending the stored samples to a fresh
// window, which restores its ring contents and recomputes its running
// statistics and word.
package blob

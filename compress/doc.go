// Package compress provides the block codecs applied to encoded snapshot
// payloads.
//
// A snapshot is encoded first (symbols packed, samples raw or Gorilla
// encoded) and then optionally compressed as a whole:
//
//   - None: pass-through, default for words
//   - Zstd: best ratio, libzstd with cgo and pure Go otherwise
//   - S2:   balanced speed and ratio
//   - LZ4:  fastest decompression
//
// Codecs are stateless values backed by pooled encoders where the underlying
// library benefits from reuse, and are safe for concurrent use.
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress

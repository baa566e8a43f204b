package compress

import (
	"fmt"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
)

// Compressor compresses an encoded snapshot payload.
//
// Payloads are small: a word snapshot is a few bytes per symbol and a window
// snapshot carries at most n float64 samples, so codecs are tuned for
// single-shot block compression rather than streaming.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified.
	// Empty input yields a nil result.
	Compress(data []byte) ([]byte, error)
}

// MaxPayloadSize bounds the decompressed size of a snapshot payload. It
// leaves room for the largest window a snapshot may describe, Gorilla
// overhead included; anything larger is treated as a corrupted snapshot.
const MaxPayloadSize = 64 << 20

// Decompressor reverses a Compressor of the same algorithm.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original payload. Corrupted input, input from a
	// different algorithm and output beyond MaxPayloadSize all yield an error
	// wrapping errs.ErrInvalidPayload.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in codec for compressionType.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// Ratio reports compressed size over original size, 0 for an empty original.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}

	return float64(compressed) / float64(original)
}

//go:build cgo

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/symts/errs"
)

const zstdLevel = 3

// Compress compresses data using the libzstd bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a zstd frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrInvalidPayload, err)
	}
	if len(out) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: zstd frame decodes to %d bytes", errs.ErrInvalidPayload, len(out))
	}

	return out, nil
}

package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/symts/errs"
)

// S2Compressor is the Snappy-compatible S2 block codec: fast with a fair ratio.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes a single S2 block.
//
// The block header announces the decoded length, which is checked against
// MaxPayloadSize before any buffer is allocated.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}
	if size > MaxPayloadSize {
		return nil, fmt.Errorf("%w: s2 block announces %d bytes", errs.ErrInvalidPayload, size)
	}

	out, err := s2.Decode(make([]byte, size), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidPayload, err)
	}

	return out, nil
}

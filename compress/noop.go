package compress

import (
	"fmt"

	"github.com/arloliu/symts/errs"
)

// NoOpCompressor passes payloads through unchanged. It is the default for
// word snapshots, which are already a few bytes long.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself; the result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself; the result shares memory with the input.
// Payloads beyond MaxPayloadSize are rejected like with every other codec.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d byte payload", errs.ErrInvalidPayload, len(data))
	}

	return data, nil
}

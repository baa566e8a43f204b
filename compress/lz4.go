package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/symts/errs"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is the LZ4 block codec, the fastest to decode.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
//
// The destination is sized to the worst-case bound, so incompressible input
// is stored as literals rather than rejected.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block.
//
// LZ4 blocks do not record their decoded size. Decoding starts with a buffer
// of four times the input and doubles it while the block does not fit, up to
// MaxPayloadSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size := min(len(data)*4, MaxPayloadSize)
	for {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		switch {
		case err == nil:
			return buf[:n], nil
		case !errors.Is(err, lz4.ErrInvalidSourceShortBuffer):
			return nil, fmt.Errorf("%w: lz4: %w", errs.ErrInvalidPayload, err)
		case size >= MaxPayloadSize:
			return nil, fmt.Errorf("%w: lz4 block exceeds %d bytes", errs.ErrInvalidPayload, MaxPayloadSize)
		}
		size = min(size*2, MaxPayloadSize)
	}
}

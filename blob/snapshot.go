package blob

import (
	"fmt"

	"github.com/arloliu/symts/compress"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/internal/hash"
	"github.com/arloliu/symts/section"
)

// seal checksums and compresses payload and prepends the header.
func seal(cfg *EncoderConfig, payload []byte) ([]byte, error) {
	cfg.header.Checksum = hash.Sum(payload)

	packed, err := cfg.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s payload: %w", cfg.header.Flag.Compression(), err)
	}

	out := make([]byte, 0, section.HeaderSize+len(packed))
	out = cfg.header.AppendTo(out)
	out = append(out, packed...)

	return out, nil
}

// open parses the header, checks the snapshot kind, decompresses the
// payload and verifies its checksum.
func open(data []byte, want format.PayloadKind) (section.Header, []byte, error) {
	h, err := section.ParseHeader(data)
	if err != nil {
		return section.Header{}, nil, err
	}

	kind, err := h.Flag.Kind()
	if err != nil {
		return section.Header{}, nil, err
	}
	if kind != want {
		return section.Header{}, nil, fmt.Errorf("%w: expected %s snapshot, got %s", errs.ErrInvalidMagicNumber, want, kind)
	}

	codec, err := compress.GetCodec(h.Flag.Compression())
	if err != nil {
		return section.Header{}, nil, err
	}
	payload, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return section.Header{}, nil, fmt.Errorf("failed to decompress %s payload: %w", h.Flag.Compression(), err)
	}

	if sum := hash.Sum(payload); sum != h.Checksum {
		return section.Header{}, nil, fmt.Errorf("%w: header 0x%016x, payload 0x%016x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	return h, payload, nil
}

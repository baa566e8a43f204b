package blob

import (
	"fmt"

	"github.com/arloliu/symts/compress"
	"github.com/arloliu/symts/endian"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/internal/options"
	"github.com/arloliu/symts/section"
)

// EncoderConfig holds the header template and codecs of one snapshot.
type EncoderConfig struct {
	header *section.Header
	engine endian.EndianEngine
	codec  compress.Codec
}

// EncoderOption configures snapshot encoding.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig(kind format.PayloadKind, opts []EncoderOption) (*EncoderConfig, error) {
	cfg := &EncoderConfig{header: section.NewHeader(kind)}
	// window payloads are large enough to benefit from compression by default
	if kind == format.KindWindow {
		cfg.header.Flag.SetCompression(format.CompressionZstd)
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate resolves the engine and codec selected by the options.
func (c *EncoderConfig) Validate() error {
	codec, err := compress.GetCodec(c.header.Flag.Compression())
	if err != nil {
		return err
	}
	c.codec = codec
	c.engine = c.header.Flag.GetEndianEngine()

	return nil
}

// WithLittleEndian writes the snapshot little-endian. It is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian writes the snapshot big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithCompression selects the payload compression. Words default to
// format.CompressionNone, windows to format.CompressionZstd.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch ct {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.header.Flag.SetCompression(ct)
			return nil
		default:
			return fmt.Errorf("%w: %s (0x%02X)", errs.ErrUnsupportedCompression, ct, uint8(ct))
		}
	})
}

// WithValueEncoding selects how window samples are stored: format.TypeRaw
// (default) or format.TypeGorilla. Word snapshots ignore it.
func WithValueEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch enc { //nolint: exhaustive
		case format.TypeRaw, format.TypeGorilla:
			c.header.Flag.SetValueEncoding(enc)
			return nil
		default:
			return fmt.Errorf("%w: %s (0x%02X)", errs.ErrUnsupportedEncoding, enc, uint8(enc))
		}
	})
}

package section

import (
	"fmt"

	"github.com/arloliu/symts/endian"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
)

// Flag is the packed leading field of a snapshot header.
type Flag struct {
	// Options holds the magic number in bits 4-15 and the endianness in bit 1
	// (0 little, 1 big). The remaining bits are reserved and must be 0.
	Options uint16
	// EncodingType is the value encoding of window samples.
	EncodingType uint8
	// CompressionType is the compression applied to the payload.
	CompressionType uint8
}

var (
	validEncodings = map[uint8]struct{}{
		uint8(format.TypeRaw):     {},
		uint8(format.TypeGorilla): {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewFlag creates a little-endian, raw, uncompressed flag for kind.
func NewFlag(kind format.PayloadKind) Flag {
	magic := uint16(MagicWordV1Opt)
	if kind == format.KindWindow {
		magic = MagicWindowV1Opt
	}

	return Flag{
		Options:         magic,
		EncodingType:    uint8(format.TypeRaw),
		CompressionType: uint8(format.CompressionNone),
	}
}

// Kind returns the payload kind identified by the magic number.
func (f Flag) Kind() (format.PayloadKind, error) {
	switch f.GetMagicNumber() {
	case MagicWordV1Opt:
		return format.KindWord, nil
	case MagicWindowV1Opt:
		return format.KindWindow, nil
	default:
		return 0, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}
}

// GetMagicNumber returns the magic number bits of Options.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the header and payload are little-endian.
func (f Flag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

// IsBigEndian returns whether the header and payload are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian selects little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian selects big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// ValueEncoding returns the sample encoding.
func (f Flag) ValueEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetValueEncoding sets the sample encoding.
func (f *Flag) SetValueEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the payload compression.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression.
func (f *Flag) SetCompression(ct format.CompressionType) {
	f.CompressionType = uint8(ct)
}

// Validate checks magic number, reserved bits, encoding and compression.
func (f Flag) Validate() error {
	if _, err := f.Kind(); err != nil {
		return err
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved option bits 0x%04X", errs.ErrInvalidMagicNumber, f.Options&ReservedBitsMask)
	}
	if _, ok := validEncodings[f.EncodingType]; !ok {
		return fmt.Errorf("%w: %s (0x%02X)", errs.ErrUnsupportedEncoding, f.ValueEncoding(), f.EncodingType)
	}
	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: %s (0x%02X)", errs.ErrUnsupportedCompression, f.Compression(), f.CompressionType)
	}

	return nil
}

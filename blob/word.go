package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/encoding"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/sax"
)

// EncodeWord serializes word into a snapshot.
//
// The series length is kept as is, including the wildcard 0 of words parsed
// from text, so a decoded word compares exactly like the original.
//
// Parameters:
//   - word: Word to serialize
//   - opts: Byte order, compression and value encoding options
//
// Returns:
//   - []byte: Header followed by the (optionally compressed) bit-packed symbols
//   - error: Option or compression failure
func EncodeWord(word sax.Word, opts ...EncoderOption) ([]byte, error) {
	if word.IsZero() {
		return nil, fmt.Errorf("%w: zero word", errs.ErrInvalidWordLength)
	}
	if word.W() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d symbols exceed the snapshot limit", errs.ErrInvalidWordLength, word.W())
	}
	if uint64(word.N()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: series length %d exceeds the snapshot limit", errs.ErrInvalidWindowSize, word.N())
	}

	cfg, err := newEncoderConfig(format.KindWord, opts)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewSymbolEncoder(word.C())
	defer enc.Finish()
	for i := range word.W() {
		enc.Write(uint8(word.Symbol(i)))
	}

	h := cfg.header
	h.N = uint32(word.N())     //nolint:gosec // checked above
	h.W = uint16(word.W())     //nolint:gosec // checked above
	h.C = uint8(word.C())      //nolint:gosec // cardinality is at most 16
	h.Count = uint32(word.W()) //nolint:gosec // checked above

	return seal(cfg, enc.Bytes())
}

// DecodeWord restores a word from a snapshot produced by EncodeWord.
//
// The header is validated first, then the payload is decompressed and its
// checksum compared before any symbol is read.
//
// Returns:
//   - sax.Word: Decoded word
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidPayload, errs.ErrChecksumMismatch, or
//     errs.ErrCorruptedWord for a symbol above the cardinality
func DecodeWord(data []byte) (sax.Word, error) {
	h, payload, err := open(data, format.KindWord)
	if err != nil {
		return sax.Word{}, err
	}

	c := int(h.C)
	if err := sax.ValidateCardinality(c); err != nil {
		return sax.Word{}, err
	}
	if h.Count != uint32(h.W) || h.W == 0 {
		return sax.Word{}, fmt.Errorf("%w: %d symbols for word length %d", errs.ErrInvalidPayload, h.Count, h.W)
	}

	dec := encoding.NewSymbolDecoder(c)
	symbols := make([]sax.Symbol, 0, h.W)
	for s := range dec.All(payload, int(h.W)) {
		symbols = append(symbols, sax.Symbol(s))
	}
	if len(symbols) != int(h.W) {
		return sax.Word{}, fmt.Errorf("%w: truncated symbols", errs.ErrInvalidPayload)
	}

	return sax.NewWord(int(h.N), c, symbols)
}

// Package errs defines the sentinel errors shared by all symts packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should always compare with errors.Is:
//
//	if errors.Is(err, errs.ErrInvalidCardinality) {
//	    // handle
//	}
package errs

import "errors"

// Parameter errors.
var (
	// ErrInvalidCardinality is returned when a cardinality is outside [2, 16].
	ErrInvalidCardinality = errors.New("invalid cardinality")
	// ErrInvalidWordLength is returned when the word length is zero or negative.
	ErrInvalidWordLength = errors.New("invalid word length")
	// ErrInvalidWindowSize is returned when the window size is not a positive multiple of the word length.
	ErrInvalidWindowSize = errors.New("invalid window size")
	// ErrEmptySeries is returned when a series to encode is nil or empty.
	ErrEmptySeries = errors.New("empty series")
	// ErrShapeMismatch is returned when two words differ in word length, cardinality or series length.
	ErrShapeMismatch = errors.New("word shape mismatch")
	// ErrUndefinedLength is returned when neither word of a comparison carries a series length.
	ErrUndefinedLength = errors.New("undefined series length")
	// ErrWindowNotReady is returned when a window still has unresolved frames.
	ErrWindowNotReady = errors.New("window is not ready")
	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// Format errors.
var (
	// ErrInvalidSymbolText is returned when a symbolic string is empty or holds a letter outside the alphabet.
	ErrInvalidSymbolText = errors.New("invalid symbol text")
	// ErrCorruptedWord is returned when a word holds a symbol above its cardinality.
	ErrCorruptedWord = errors.New("corrupted word")
)

// Snapshot errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrUnsupportedEncoding    = errors.New("unsupported value encoding")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	ErrChecksumMismatch       = errors.New("payload checksum mismatch")
	ErrInvalidPayload         = errors.New("invalid payload")
)

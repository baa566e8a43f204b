// Package symts turns numeric time series into short symbolic words and
// compares them with a distance that never overestimates the true one.
//
// A series of n values is z-normalized, averaged down to w frames (PAA) and
// each frame average is mapped to one of c symbols (SAX) using equiprobable
// breakpoints of the standard normal distribution. Words of the same shape
// can be compared with a lower bound of the Euclidean distance between their
// normalized series (MINDIST).
//
// # Core Features
//
//   - Batch conversion of a series into a word (sax.FromArray)
//   - Streaming conversion through a sliding window with online statistics
//     (sax.Window)
//   - Text form: one letter per symbol, 'A' lowest, '#' for an empty frame
//   - Lower-bounding distance between words (sax.Mindist)
//   - Binary snapshots of words and windows with optional compression (blob)
//   - Parallel batch tooling and multi-channel signals (batch)
//
// # Basic Usage
//
// Converting a series:
//
//	word, err := symts.Encode(series, 4, 8)
//	fmt.Println(word) // e.g. "HAED"
//
// Streaming values:
//
//	win, _ := symts.NewWindow(12, 4, 8)
//	for _, v := range values {
//	    win.Append(v)
//	}
//	if win.IsReady() {
//	    d, _ := symts.Distance(win, reference)
//	}
//
// Persisting a window:
//
//	data, _ := symts.MarshalWindow(win)
//	restored, _ := symts.UnmarshalWindow(data)
//
// # Package Structure
//
// This package provides thin wrappers over the sax, blob and batch packages
// for the most common cases. Use those packages directly for fine-grained
// control.
package symts

import (
	"fmt"

	"github.com/arloliu/symts/blob"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/sax"
)

// WordSource is anything that can produce a word: a sax.Word or a *sax.Window.
type WordSource interface {
	ResolveWord() (sax.Word, error)
}

var (
	_ WordSource = sax.Word{}
	_ WordSource = (*sax.Window)(nil)
)

var defaultWindowOptions = []blob.EncoderOption{
	blob.WithLittleEndian(),
	blob.WithValueEncoding(format.TypeGorilla),
	blob.WithCompression(format.CompressionZstd),
}

// Encode converts series into a word of w symbols over cardinality c.
func Encode(series []float64, w, c int, opts ...sax.Option) (sax.Word, error) {
	return sax.FromArray(series, w, c, opts...)
}

// Parse reads the text form of a word. The parsed word has no series length,
// so it can only be compared with words that carry one.
func Parse(text string, c int) (sax.Word, error) {
	return sax.FromString(text, c)
}

// NewWindow creates a sliding window of n values producing words of w symbols
// over cardinality c.
func NewWindow(n, w, c int, opts ...sax.Option) (*sax.Window, error) {
	return sax.NewWindow(n, w, c, opts...)
}

// Resolve returns the word held by src. A window that still has empty frames
// yields errs.ErrWindowNotReady.
func Resolve(src WordSource) (sax.Word, error) {
	if src == nil {
		return sax.Word{}, fmt.Errorf("%w: nil word source", errs.ErrInvalidWordLength)
	}
	if win, ok := src.(*sax.Window); ok && win == nil {
		return sax.Word{}, fmt.Errorf("%w: nil window", errs.ErrInvalidWindowSize)
	}

	return src.ResolveWord()
}

// Distance resolves a and b and returns their lower-bounding distance.
func Distance(a, b WordSource) (float64, error) {
	wa, err := Resolve(a)
	if err != nil {
		return 0, err
	}
	wb, err := Resolve(b)
	if err != nil {
		return 0, err
	}

	return sax.Mindist(wa, wb)
}

// Equal resolves a and b and reports whether their words match symbol by
// symbol. Series lengths are not compared.
func Equal(a, b WordSource) (bool, error) {
	wa, err := Resolve(a)
	if err != nil {
		return false, err
	}
	wb, err := Resolve(b)
	if err != nil {
		return false, err
	}

	return wa.Equal(wb), nil
}

// Fingerprint returns a 64-bit hash of the resolved word, equal for words
// that are Equal.
func Fingerprint(src WordSource) (uint64, error) {
	w, err := Resolve(src)
	if err != nil {
		return 0, err
	}

	return w.Fingerprint(), nil
}

// MarshalWord serializes word into an uncompressed little-endian snapshot.
func MarshalWord(word sax.Word) ([]byte, error) {
	return blob.EncodeWord(word)
}

// UnmarshalWord restores a word written by MarshalWord or blob.EncodeWord.
func UnmarshalWord(data []byte) (sax.Word, error) {
	return blob.DecodeWord(data)
}

// MarshalWindow serializes win with Gorilla-encoded samples and zstd
// compression.
func MarshalWindow(win *sax.Window) ([]byte, error) {
	return blob.EncodeWindow(win, defaultWindowOptions...)
}

// UnmarshalWindow restores a window written by MarshalWindow or
// blob.EncodeWindow. Engine options are not stored and must be given again.
func UnmarshalWindow(data []byte, opts ...sax.Option) (*sax.Window, error) {
	return blob.DecodeWindow(data, opts...)
}

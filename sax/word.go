package sax

import (
	"fmt"
	"strings"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/hash"
)

// SentinelLetter is the text form of the sentinel symbol.
const SentinelLetter = '#'

// Word is an immutable symbolic codeword.
//
// A Word summarizes a series of N values with W symbols of cardinality C.
// N may be 0 for words parsed from text; such a wildcard defers to the other
// operand's length when computing distances.
//
// Words returned by this package never share storage with a Window or with
// each other, so they are safe to keep and to read from several goroutines.
type Word struct {
	n       int
	c       int
	symbols []Symbol
}

// NewWord builds a word from its parts, copying symbols.
//
// It fails when c is outside [2, 16], symbols is empty, n is not a multiple of
// len(symbols) (unless n is 0), or a symbol exceeds c.
func NewWord(n, c int, symbols []Symbol) (Word, error) {
	if err := ValidateCardinality(c); err != nil {
		return Word{}, err
	}
	if len(symbols) == 0 {
		return Word{}, fmt.Errorf("%w: word has no symbols", errs.ErrInvalidWordLength)
	}
	if n < 0 || n%len(symbols) != 0 {
		return Word{}, fmt.Errorf("%w: n=%d is not a multiple of w=%d", errs.ErrInvalidWindowSize, n, len(symbols))
	}
	for i, s := range symbols {
		if int(s) > c {
			return Word{}, fmt.Errorf("%w: symbol %d at %d exceeds cardinality %d", errs.ErrCorruptedWord, s, i, c)
		}
	}

	syms := make([]Symbol, len(symbols))
	copy(syms, symbols)

	return Word{n: n, c: c, symbols: syms}, nil
}

// FromString parses a symbolic string of cardinality c.
//
// Letter 'A' is symbol c-1 (the lowest sector), 'A'+c-1 is symbol 0 (the
// highest) and '#' is the sentinel. The resulting word has N() == 0.
//
// Returns:
//   - Word: Parsed word
//   - error: errs.ErrInvalidCardinality, or errs.ErrInvalidSymbolText for an
//     empty text or a letter outside the alphabet
func FromString(text string, c int) (Word, error) {
	if err := ValidateCardinality(c); err != nil {
		return Word{}, err
	}
	if text == "" {
		return Word{}, fmt.Errorf("%w: empty string", errs.ErrInvalidSymbolText)
	}

	syms := make([]Symbol, len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == SentinelLetter {
			syms[i] = Sentinel(c)
			continue
		}

		idx := int(ch) - 'A'
		if idx < 0 || idx >= c {
			return Word{}, fmt.Errorf("%w: %q at %d for cardinality %d", errs.ErrInvalidSymbolText, ch, i, c)
		}
		syms[i] = Symbol(c - 1 - idx) //nolint:gosec // G115: 0 <= c-1-idx < 16
	}

	return Word{n: 0, c: c, symbols: syms}, nil
}

// N returns the length of the series the word summarizes, 0 for a wildcard.
func (w Word) N() int { return w.n }

// W returns the number of symbols.
func (w Word) W() int { return len(w.symbols) }

// C returns the cardinality.
func (w Word) C() int { return w.c }

// Symbol returns the i-th symbol.
func (w Word) Symbol(i int) Symbol { return w.symbols[i] }

// Symbols returns a copy of the symbols.
func (w Word) Symbols() []Symbol {
	out := make([]Symbol, len(w.symbols))
	copy(out, w.symbols)

	return out
}

// AppendSymbols appends the symbols to dst and returns the extended slice.
func (w Word) AppendSymbols(dst []Symbol) []Symbol {
	return append(dst, w.symbols...)
}

// IsZero reports whether w is the zero Word.
func (w Word) IsZero() bool {
	return w.c == 0 && len(w.symbols) == 0
}

// IsResolved reports whether no symbol is the sentinel.
func (w Word) IsResolved() bool {
	sentinel := Sentinel(w.c)
	for _, s := range w.symbols {
		if s == sentinel {
			return false
		}
	}

	return !w.IsZero()
}

// Clone returns a deep copy of w.
func (w Word) Clone() Word {
	if w.symbols == nil {
		return w
	}

	return Word{n: w.n, c: w.c, symbols: w.Symbols()}
}

// Equal reports whether w and other have the same cardinality and symbols.
// Series length is not compared, so a parsed word can equal an encoded one.
func (w Word) Equal(other Word) bool {
	if w.c != other.c || len(w.symbols) != len(other.symbols) {
		return false
	}
	for i, s := range w.symbols {
		if other.symbols[i] != s {
			return false
		}
	}

	return true
}

// Text returns the symbolic string of w. It fails with errs.ErrCorruptedWord
// if a symbol exceeds the cardinality.
func (w Word) Text() (string, error) {
	var sb strings.Builder
	sb.Grow(len(w.symbols))
	for i, s := range w.symbols {
		switch {
		case int(s) < w.c:
			sb.WriteByte(byte('A' + w.c - 1 - int(s)))
		case int(s) == w.c:
			sb.WriteByte(SentinelLetter)
		default:
			return "", fmt.Errorf("%w: symbol %d at %d exceeds cardinality %d", errs.ErrCorruptedWord, s, i, w.c)
		}
	}

	return sb.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (w Word) MarshalText() ([]byte, error) {
	text, err := w.Text()
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

// String implements fmt.Stringer.
func (w Word) String() string {
	text, err := w.Text()
	if err != nil {
		return "<corrupted word>"
	}

	return text
}

// Fingerprint returns the xxHash64 of the cardinality and symbols.
// Equal words have equal fingerprints.
func (w Word) Fingerprint() uint64 {
	raw := make([]uint8, len(w.symbols))
	for i, s := range w.symbols {
		raw[i] = uint8(s)
	}

	return hash.Symbols(uint8(w.c), raw) //nolint:gosec // G115: c <= 16
}

// ResolveWord returns w itself; it lets a Word stand wherever a word or a
// ready window is accepted.
func (w Word) ResolveWord() (Word, error) {
	if w.IsZero() {
		return Word{}, fmt.Errorf("%w: zero word", errs.ErrInvalidWordLength)
	}

	return w, nil
}

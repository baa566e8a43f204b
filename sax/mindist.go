package sax

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/errs"
)

// Mindist returns a lower bound of the Euclidean distance between the
// z-normalized series that a and b summarize.
//
// Both words must share cardinality and word length. Their series lengths
// must agree unless one of them is the wildcard 0; at least one must be set.
// Sentinel symbols are compared as the center symbol (the sector of 0), which
// is one policy among several and treats an empty frame as "average".
//
// The per-symbol table distances are combined as
//
//	sqrt(n/w) * sqrt(sum(dist(a[i], b[i])^2))
//
// where the sqrt(n/w) factor accounts for every symbol standing for n/w points.
//
// Returns:
//   - float64: Lower bound of the Euclidean distance between the series
//   - error: errs.ErrShapeMismatch when the words differ in length,
//     cardinality or non-zero series length, errs.ErrUndefinedLength when both
//     series lengths are 0
func Mindist(a, b Word) (float64, error) {
	if err := ValidateCardinality(a.c); err != nil {
		return 0, err
	}
	if a.c != b.c {
		return 0, fmt.Errorf("%w: cardinality %d vs %d", errs.ErrShapeMismatch, a.c, b.c)
	}
	w := len(a.symbols)
	if w == 0 {
		return 0, fmt.Errorf("%w: word has no symbols", errs.ErrInvalidWordLength)
	}
	if w != len(b.symbols) {
		return 0, fmt.Errorf("%w: word length %d vs %d", errs.ErrShapeMismatch, w, len(b.symbols))
	}

	n := a.n
	switch {
	case a.n != 0 && b.n != 0 && a.n != b.n:
		return 0, fmt.Errorf("%w: series length %d vs %d", errs.ErrShapeMismatch, a.n, b.n)
	case n == 0:
		n = b.n
	}
	if n == 0 {
		return 0, errs.ErrUndefinedLength
	}

	c := a.c
	center := quantize(0, c)
	table := distances[c]

	var sum float64
	for i := range w {
		sa, err := resolveSymbol(a.symbols[i], c, center)
		if err != nil {
			return 0, err
		}
		sb, err := resolveSymbol(b.symbols[i], c, center)
		if err != nil {
			return 0, err
		}
		d := table[sa][sb]
		sum += d * d
	}

	return math.Sqrt(float64(n)/float64(w)) * math.Sqrt(sum), nil
}

// MindistOrNaN is Mindist with failures reported as NaN, for callers that
// cannot carry an error.
func MindistOrNaN(a, b Word) float64 {
	d, err := Mindist(a, b)
	if err != nil {
		return math.NaN()
	}

	return d
}

package sax

import (
	"fmt"

	"github.com/arloliu/symts/errs"
)

// distances[c][a][b] is the lower-bound distance between symbols a and b of
// cardinality c: 0 for equal or adjacent sectors, otherwise the gap between
// the nearer bounds of the two sectors.
var distances = func() [MaxCardinality + 1][][]float64 {
	var table [MaxCardinality + 1][][]float64
	for c := MinCardinality; c <= MaxCardinality; c++ {
		table[c] = buildDistanceRows(c)
	}

	return table
}()

func buildDistanceRows(c int) [][]float64 {
	row := breakpoints[c]
	rows := make([][]float64, c)
	for a := 0; a < c; a++ {
		rows[a] = make([]float64, c)
		for b := 0; b < c; b++ {
			// sector index of symbol s is c-1-s
			lo, hi := c-1-a, c-1-b
			if lo > hi {
				lo, hi = hi, lo
			}
			if hi-lo > 1 {
				rows[a][b] = row[hi] - row[lo+1]
			}
		}
	}

	return rows
}

// SymbolDistance returns the table distance between symbols a and b for
// cardinality c. Sentinel symbols are replaced by the center symbol of c
// before the lookup.
func SymbolDistance(c int, a, b Symbol) (float64, error) {
	if err := ValidateCardinality(c); err != nil {
		return 0, err
	}

	center := quantize(0, c)
	a, err := resolveSymbol(a, c, center)
	if err != nil {
		return 0, err
	}
	b, err = resolveSymbol(b, c, center)
	if err != nil {
		return 0, err
	}

	return distances[c][a][b], nil
}

func resolveSymbol(s Symbol, c int, center Symbol) (Symbol, error) {
	switch {
	case int(s) < c:
		return s, nil
	case int(s) == c:
		return center, nil
	default:
		return 0, fmt.Errorf("%w: symbol %d exceeds cardinality %d", errs.ErrCorruptedWord, s, c)
	}
}

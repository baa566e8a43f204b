package sax

import "math"

// Quantize maps a normalized value to its symbol for cardinality c.
//
// NaN maps to the sentinel c. Otherwise the sector index i satisfying
// breakpoints[i] <= value < breakpoints[i+1] is found and c-i-1 is returned,
// so larger values get smaller symbols. -Inf lands in the lowest sector and
// +Inf in the highest.
func Quantize(value float64, c int) (Symbol, error) {
	if err := ValidateCardinality(c); err != nil {
		return 0, err
	}

	return quantize(value, c), nil
}

// quantize is Quantize without the cardinality check.
func quantize(value float64, c int) Symbol {
	if math.IsNaN(value) {
		return Sentinel(c)
	}

	row := breakpoints[c]
	for i := 0; i < c; i++ {
		if value < row[i+1] {
			return Symbol(c - i - 1) //nolint:gosec // G115: 0 <= c-i-1 < 16
		}
	}

	// only +Inf gets here
	return 0
}

// Center returns the symbol of the sector holding 0 for cardinality c, the
// symbol a constant series encodes to.
func Center(c int) (Symbol, error) {
	return Quantize(0, c)
}

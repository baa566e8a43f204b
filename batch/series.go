package batch

import (
	"fmt"

	"github.com/arloliu/symts/errs"
)

// Truncate drops the tail of series so that its length is a multiple of w.
// It returns series unchanged when w is not positive.
func Truncate(series []float64, w int) []float64 {
	if w <= 0 {
		return series
	}

	return series[:len(series)-len(series)%w]
}

// Subsequences cuts series into windows of the given length, starting every
// step samples. A trailing partial window is dropped.
//
// The windows share memory with series; each is capped at its own length so
// appending to one never overwrites the next.
func Subsequences(series []float64, length, step int) ([][]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: subsequence length %d", errs.ErrInvalidWindowSize, length)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step %d", errs.ErrInvalidOption, step)
	}
	if len(series) < length {
		return nil, nil
	}

	out := make([][]float64, 0, (len(series)-length)/step+1)
	for start := 0; start+length <= len(series); start += step {
		out = append(out, series[start:start+length:start+length])
	}

	return out, nil
}

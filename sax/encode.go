package sax

import (
	"fmt"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/stats"
)

// FromArray encodes a whole series into a word of w symbols of cardinality c.
//
// Mean and standard deviation are estimated over the finite entries of series.
// The series is cut into w frames of len(series)/w samples; each frame is
// averaged over its finite entries, normalized and quantized. A frame with no
// finite entry, or whose average overflows, encodes to the sentinel.
//
// The returned word has N() == len(series).
//
// Parameters:
//   - series: Samples to encode; len(series) must be a positive multiple of w
//   - w: Word length in symbols
//   - c: Alphabet cardinality in [2, 16]
//   - opts: Engine options, e.g. WithStdEpsilon
//
// Returns:
//   - Word: Encoded word
//   - error: errs.ErrEmptySeries, errs.ErrInvalidWordLength,
//     errs.ErrInvalidWindowSize, errs.ErrInvalidCardinality or
//     errs.ErrInvalidOption
//
// Example:
//
//	word, _ := sax.FromArray([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 2, 4)
//	fmt.Println(word) // AD
func FromArray(series []float64, w, c int, opts ...Option) (Word, error) {
	if err := validateShape(len(series), w, c); err != nil {
		return Word{}, err
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return Word{}, err
	}

	mean, std := stats.MeanStd(series)
	syms := make([]Symbol, w)
	encodeFrames(syms, series, 0, len(series)/w, mean, std, cfg.stdEpsilon, c)

	return Word{n: len(series), c: c, symbols: syms}, nil
}

func validateShape(n, w, c int) error {
	if err := ValidateCardinality(c); err != nil {
		return err
	}
	if w <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWordLength, w)
	}
	if n == 0 {
		return errs.ErrEmptySeries
	}
	if n < 0 || n%w != 0 {
		return fmt.Errorf("%w: n=%d is not a multiple of w=%d", errs.ErrInvalidWindowSize, n, w)
	}

	return nil
}

// encodeFrames fills dst with one symbol per frame of frameSize logical
// positions. values holds the last len(values) positions; the first pad
// positions are empty and behave like non-finite samples.
func encodeFrames(dst []Symbol, values []float64, pad, frameSize int, mean, std, eps float64, c int) {
	for j := range dst {
		start := j*frameSize - pad
		end := start + frameSize
		if end <= 0 {
			dst[j] = Sentinel(c)
			continue
		}
		if start < 0 {
			start = 0
		}
		dst[j] = frameSymbol(values[start:end], mean, std, eps, c)
	}
}

func frameSymbol(frame []float64, mean, std, eps float64, c int) Symbol {
	var sum float64
	cnt := 0
	for _, v := range frame {
		if stats.IsFinite(v) {
			sum += v
			cnt++
		}
	}
	if cnt == 0 {
		return Sentinel(c)
	}

	avg := sum / float64(cnt)
	if !stats.IsFinite(avg) {
		return Sentinel(c)
	}

	var z float64
	if std > 0 && std >= eps {
		z = (avg - mean) / std
	}

	return quantize(z, c)
}

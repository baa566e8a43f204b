package batch

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/sax"
)

// Signal is a multi-channel recording reduced to one word per channel.
type Signal []sax.Word

// SignalDistance combines the per-channel lower-bounding distances of a and b
// as sqrt(Σ mindist²). Both signals need the same channel count and each pair
// of channel words must be comparable under sax.Mindist.
func SignalDistance(a, b Signal) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d channels", errs.ErrShapeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("%w: no channels", errs.ErrEmptySeries)
	}

	var sum float64
	for ch := range a {
		d, err := sax.Mindist(a[ch], b[ch])
		if err != nil {
			return 0, fmt.Errorf("channel %d: %w", ch, err)
		}
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Nearest finds the reference closest to query and returns its index and
// distance. The reference at index skip is ignored; pass -1 to consider all.
//
// Ties resolve to the lowest index.
func Nearest(query Signal, refs []Signal, skip int) (int, float64, error) {
	best, bestDist := -1, math.Inf(1)
	for i, ref := range refs {
		if i == skip {
			continue
		}

		d, err := SignalDistance(query, ref)
		if err != nil {
			return -1, 0, fmt.Errorf("reference %d: %w", i, err)
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	if best < 0 {
		return -1, 0, fmt.Errorf("%w: no reference signals", errs.ErrEmptySeries)
	}

	return best, bestDist, nil
}

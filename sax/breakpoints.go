package sax

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/errs"
)

const (
	// MinCardinality is the smallest supported alphabet size.
	MinCardinality = 2
	// MaxCardinality is the largest supported alphabet size.
	MaxCardinality = 16
)

// Symbol identifies a quantization sector. For cardinality c the valid
// symbols are [0, c); the value c itself is the sentinel for a frame that held
// no finite data. Symbol 0 is the highest-value sector.
type Symbol uint8

// Sentinel returns the undefined symbol for cardinality c.
func Sentinel(c int) Symbol {
	return Symbol(c) //nolint:gosec // G115: c is validated to [2, 16] by every caller
}

// innerBreakpoints holds the c-1 standard normal quantiles i/c, i = 1..c-1,
// for each cardinality. Row c partitions the real axis into c equiprobable
// sectors.
var innerBreakpoints = [MaxCardinality + 1][]float64{
	2:  {0},
	3:  {-0.43072730, 0.43072730},
	4:  {-0.67448975, 0, 0.67448975},
	5:  {-0.84162123, -0.25334710, 0.25334710, 0.84162123},
	6:  {-0.96742157, -0.43072730, 0, 0.43072730, 0.96742157},
	7:  {-1.06757052, -0.56594882, -0.18001237, 0.18001237, 0.56594882, 1.06757052},
	8:  {-1.15034938, -0.67448975, -0.31863936, 0, 0.31863936, 0.67448975, 1.15034938},
	9:  {-1.22064035, -0.76470967, -0.43072730, -0.13971030, 0.13971030, 0.43072730, 0.76470967, 1.22064035},
	10: {-1.28155157, -0.84162123, -0.52440051, -0.25334710, 0, 0.25334710, 0.52440051, 0.84162123, 1.28155157},
	11: {-1.33517774, -0.90845787, -0.60458535, -0.34875570, -0.11418529, 0.11418529, 0.34875570, 0.60458535, 0.90845787, 1.33517774},
	12: {-1.38299413, -0.96742157, -0.67448975, -0.43072730, -0.21042839, 0, 0.21042839, 0.43072730, 0.67448975, 0.96742157, 1.38299413},
	13: {-1.42607687, -1.02007623, -0.73631592, -0.50240222, -0.29338123, -0.09655862, 0.09655862, 0.29338123, 0.50240222, 0.73631592, 1.02007623, 1.42607687},
	14: {-1.46523379, -1.06757052, -0.79163861, -0.56594882, -0.36610636, -0.18001237, 0, 0.18001237, 0.36610636, 0.56594882, 0.79163861, 1.06757052, 1.46523379},
	15: {-1.50108595, -1.11077162, -0.84162123, -0.62292572, -0.43072730, -0.25334710, -0.08365173, 0.08365173, 0.25334710, 0.43072730, 0.62292572, 0.84162123, 1.11077162, 1.50108595},
	16: {-1.53412054, -1.15034938, -0.88714656, -0.67448975, -0.48877641, -0.31863936, -0.15731068, 0, 0.15731068, 0.31863936, 0.48877641, 0.67448975, 0.88714656, 1.15034938, 1.53412054},
}

// breakpoints holds the full rows: c+1 ascending bounds from -Inf to +Inf.
var breakpoints = func() [MaxCardinality + 1][]float64 {
	var rows [MaxCardinality + 1][]float64
	for c := MinCardinality; c <= MaxCardinality; c++ {
		row := make([]float64, 0, c+1)
		row = append(row, math.Inf(-1))
		row = append(row, innerBreakpoints[c]...)
		row = append(row, math.Inf(1))
		rows[c] = row
	}

	return rows
}()

// ValidateCardinality returns an error wrapping errs.ErrInvalidCardinality
// when c is outside [MinCardinality, MaxCardinality].
func ValidateCardinality(c int) error {
	if c < MinCardinality || c > MaxCardinality {
		return fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidCardinality, c, MinCardinality, MaxCardinality)
	}

	return nil
}

// Breakpoints returns a copy of the c+1 ascending sector bounds for
// cardinality c, starting at -Inf and ending at +Inf.
func Breakpoints(c int) ([]float64, error) {
	if err := ValidateCardinality(c); err != nil {
		return nil, err
	}

	row := breakpoints[c]
	out := make([]float64, len(row))
	copy(out, row)

	return out, nil
}

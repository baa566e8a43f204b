package sax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/symts/errs"
)

func normalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func TestBreakpoints(t *testing.T) {
	for c := MinCardinality; c <= MaxCardinality; c++ {
		row, err := Breakpoints(c)
		require.NoError(t, err)
		require.Len(t, row, c+1, "c=%d", c)

		require.True(t, math.IsInf(row[0], -1), "c=%d", c)
		require.True(t, math.IsInf(row[c], 1), "c=%d", c)

		for i := 1; i < len(row); i++ {
			require.Less(t, row[i-1], row[i], "c=%d i=%d", c, i)
		}

		for i := 1; i < c; i++ {
			assert.InDelta(t, normalQuantile(float64(i)/float64(c)), row[i], 1e-7, "c=%d i=%d", c, i)
			assert.InDelta(t, -row[c-i], row[i], 1e-12, "symmetry c=%d i=%d", c, i)
		}
	}
}

func TestBreakpoints_ReturnsCopy(t *testing.T) {
	row, err := Breakpoints(4)
	require.NoError(t, err)
	row[1] = 42

	again, err := Breakpoints(4)
	require.NoError(t, err)
	require.NotEqual(t, 42.0, again[1])
}

func TestValidateCardinality(t *testing.T) {
	for _, c := range []int{-1, 0, 1, 17, 256} {
		require.ErrorIs(t, ValidateCardinality(c), errs.ErrInvalidCardinality, "c=%d", c)

		_, err := Breakpoints(c)
		require.ErrorIs(t, err, errs.ErrInvalidCardinality)
	}
	for c := MinCardinality; c <= MaxCardinality; c++ {
		require.NoError(t, ValidateCardinality(c))
	}
}

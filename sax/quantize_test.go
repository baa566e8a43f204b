package sax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/symts/errs"
)

func TestQuantize_Special(t *testing.T) {
	for c := MinCardinality; c <= MaxCardinality; c++ {
		s, err := Quantize(math.NaN(), c)
		require.NoError(t, err)
		require.Equal(t, Sentinel(c), s, "NaN c=%d", c)

		s, err = Quantize(math.Inf(1), c)
		require.NoError(t, err)
		require.Equal(t, Symbol(0), s, "+Inf c=%d", c)

		s, err = Quantize(math.Inf(-1), c)
		require.NoError(t, err)
		require.Equal(t, Symbol(c-1), s, "-Inf c=%d", c)
	}
}

func TestQuantize_Zero(t *testing.T) {
	for c := MinCardinality; c <= MaxCardinality; c++ {
		s, err := Quantize(0, c)
		require.NoError(t, err)
		require.Equal(t, Symbol((c-1)/2), s, "c=%d", c)

		center, err := Center(c)
		require.NoError(t, err)
		require.Equal(t, s, center)
	}
}

func TestQuantize_Sectors(t *testing.T) {
	for c := MinCardinality; c <= MaxCardinality; c++ {
		row := breakpoints[c]
		for i := 0; i < c; i++ {
			want := Symbol(c - i - 1)

			// lower bound is inclusive
			if i > 0 {
				s, err := Quantize(row[i], c)
				require.NoError(t, err)
				require.Equal(t, want, s, "lower bound c=%d i=%d", c, i)
			}

			// just below the upper bound still belongs to the sector
			if i < c-1 {
				s, err := Quantize(math.Nextafter(row[i+1], math.Inf(-1)), c)
				require.NoError(t, err)
				require.Equal(t, want, s, "upper bound c=%d i=%d", c, i)
			}
		}
	}
}

func TestQuantize_Monotonic(t *testing.T) {
	for c := MinCardinality; c <= MaxCardinality; c++ {
		prev := Symbol(c - 1)
		for v := -4.0; v <= 4.0; v += 0.01 {
			s, err := Quantize(v, c)
			require.NoError(t, err)
			require.LessOrEqual(t, s, prev, "c=%d v=%v", c, v)
			prev = s
		}
	}
}

func TestQuantize_InvalidCardinality(t *testing.T) {
	_, err := Quantize(0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidCardinality)

	_, err = Center(MaxCardinality + 1)
	require.ErrorIs(t, err, errs.ErrInvalidCardinality)
}

package sax

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/stats"
)

func TestMindist_Values(t *testing.T) {
	tests := []struct {
		name string
		a, b Word
		want float64
	}{
		{
			name: "identical",
			a:    mustWord(t, 12, 8, 0, 7, 3, 4),
			b:    mustWord(t, 12, 8, 0, 7, 3, 4),
			want: 0,
		},
		{
			name: "adjacent symbols only",
			a:    mustWord(t, 12, 8, 0, 6, 3, 4),
			b:    mustWord(t, 12, 8, 1, 7, 4, 3),
			want: 0,
		},
		{
			name: "extremes",
			a:    mustWord(t, 12, 8, 0, 0, 0, 0),
			b:    mustWord(t, 12, 8, 7, 7, 7, 7),
			want: 2 * math.Sqrt(3) * 2.30069876,
		},
		{
			name: "sentinel as center",
			a:    mustWord(t, 4, 4, 4, 0),
			b:    mustWord(t, 4, 4, 3, 0),
			want: math.Sqrt2 * 0.67448975,
		},
		{
			name: "wildcard length on one side",
			a:    mustWord(t, 0, 8, 0, 0, 0, 0),
			b:    mustWord(t, 12, 8, 7, 7, 7, 7),
			want: 2 * math.Sqrt(3) * 2.30069876,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Mindist(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-7)

			rev, err := Mindist(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, d, rev)
		})
	}
}

func TestMindist_Errors(t *testing.T) {
	tests := []struct {
		name string
		a, b Word
		err  error
	}{
		{"cardinality mismatch", mustWord(t, 4, 4, 0, 1), mustWord(t, 4, 5, 0, 1), errs.ErrShapeMismatch},
		{"word length mismatch", mustWord(t, 4, 4, 0, 1), mustWord(t, 4, 4, 0, 1, 2, 3), errs.ErrShapeMismatch},
		{"series length mismatch", mustWord(t, 4, 4, 0, 1), mustWord(t, 8, 4, 0, 1), errs.ErrShapeMismatch},
		{"both lengths undefined", mustWord(t, 0, 4, 0, 1), mustWord(t, 0, 4, 0, 1), errs.ErrUndefinedLength},
		{"zero words", Word{}, Word{}, errs.ErrInvalidCardinality},
		{"corrupted symbol", Word{n: 4, c: 4, symbols: []Symbol{0, 7}}, mustWord(t, 4, 4, 0, 1), errs.ErrCorruptedWord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mindist(tt.a, tt.b)
			require.ErrorIs(t, err, tt.err)
			require.True(t, math.IsNaN(MindistOrNaN(tt.a, tt.b)))
		})
	}
}

func TestMindist_LowerBoundsEuclidean(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	const n, w = 64, 8

	normalize := func(series []float64) []float64 {
		mean, std := stats.MeanStd(series)
		out := make([]float64, len(series))
		for i, v := range series {
			out[i] = (v - mean) / std
		}

		return out
	}
	randomWalk := func() []float64 {
		series := make([]float64, n)
		var x float64
		for i := range series {
			x += rng.NormFloat64()
			series[i] = x
		}

		return series
	}

	for c := MinCardinality; c <= MaxCardinality; c++ {
		for range 20 {
			x, y := randomWalk(), randomWalk()
			a, err := FromArray(x, w, c)
			require.NoError(t, err)
			b, err := FromArray(y, w, c)
			require.NoError(t, err)

			zx, zy := normalize(x), normalize(y)
			var euclid float64
			for i := range zx {
				d := zx[i] - zy[i]
				euclid += d * d
			}
			euclid = math.Sqrt(euclid)

			d, err := Mindist(a, b)
			require.NoError(t, err)
			require.LessOrEqual(t, d, euclid+1e-9, "c=%d a=%s b=%s", c, a, b)
		}
	}
}

func TestMindist_FromStrings(t *testing.T) {
	a, err := FromString("HAED", 8)
	require.NoError(t, err)
	b, err := FromArray(scenarioSeries, 4, 8)
	require.NoError(t, err)

	d, err := Mindist(a, b)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = Mindist(a, a)
	require.ErrorIs(t, err, errs.ErrUndefinedLength)
}

func BenchmarkMindist(b *testing.B) {
	syms := make([]Symbol, 32)
	other := make([]Symbol, 32)
	for i := range syms {
		syms[i] = Symbol(i % 16)
		other[i] = Symbol(15 - i%16)
	}
	x, err := NewWord(256, 16, syms)
	require.NoError(b, err)
	y, err := NewWord(256, 16, other)
	require.NoError(b, err)

	b.ResetTimer()
	for b.Loop() {
		_, _ = Mindist(x, y)
	}
}

package batch

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/sax"
)

func randomSeries(rng *rand.Rand, count, length int) [][]float64 {
	out := make([][]float64, count)
	for i := range out {
		s := make([]float64, length)
		var x float64
		for j := range s {
			x += rng.NormFloat64()
			s[j] = x
		}
		out[i] = s
	}

	return out
}

func TestNewEncoder(t *testing.T) {
	_, err := NewEncoder()
	require.NoError(t, err)

	_, err = NewEncoder(WithConcurrency(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = NewEncoder(WithLogger(nil), nil)
	require.NoError(t, err)
}

func TestEncoder_EncodeAll(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	series := randomSeries(rng, 50, 96)

	for _, limit := range []int{1, 3, 16} {
		enc, err := NewEncoder(WithConcurrency(limit))
		require.NoError(t, err)

		words, err := enc.EncodeAll(context.Background(), series, 12, 6)
		require.NoError(t, err)
		require.Len(t, words, len(series))

		for i, s := range series {
			want, err := sax.FromArray(s, 12, 6)
			require.NoError(t, err)
			require.True(t, want.Equal(words[i]), "series %d", i)
			require.Equal(t, 96, words[i].N())
		}
	}
}

func TestEncoder_EncodeAllEmptyBatch(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	words, err := enc.EncodeAll(context.Background(), nil, 4, 4)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestEncoder_Truncate(t *testing.T) {
	series := [][]float64{{1, 2, 3, 4, 5, 6, 7}, {7, 6, 5, 4, 3, 2, 1, 0}}

	strict, err := NewEncoder()
	require.NoError(t, err)
	_, err = strict.EncodeAll(context.Background(), series, 4, 4)
	require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	require.ErrorContains(t, err, "series 0")

	lenient, err := NewEncoder(WithTruncate(true))
	require.NoError(t, err)
	words, err := lenient.EncodeAll(context.Background(), series, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 4, words[0].N())
	require.Equal(t, 8, words[1].N())
}

func TestEncoder_EngineOptions(t *testing.T) {
	series := [][]float64{{0, 0.001}}

	enc, err := NewEncoder()
	require.NoError(t, err)
	words, err := enc.EncodeAll(context.Background(), series, 2, 4)
	require.NoError(t, err)
	require.Equal(t, "CC", words[0].String())

	enc, err = NewEncoder(WithEngineOptions(sax.WithStdEpsilon(0)))
	require.NoError(t, err)
	words, err = enc.EncodeAll(context.Background(), series, 2, 4)
	require.NoError(t, err)
	require.Equal(t, "AD", words[0].String())
}

func TestEncoder_EncodeAllErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	enc, err := NewEncoder(WithLogger(logger), WithConcurrency(1))
	require.NoError(t, err)

	_, err = enc.EncodeAll(context.Background(), [][]float64{{1, 2}}, 2, 1)
	require.ErrorIs(t, err, errs.ErrInvalidCardinality)

	_, err = enc.EncodeAll(context.Background(), [][]float64{{1, 2}}, 0, 4)
	require.ErrorIs(t, err, errs.ErrInvalidWordLength)

	_, err = enc.EncodeAll(context.Background(), [][]float64{{1, 2}, {}}, 2, 4)
	require.ErrorIs(t, err, errs.ErrEmptySeries)
	require.Contains(t, buf.String(), "failed to encode series")
	require.Contains(t, buf.String(), "series=1")
	require.Contains(t, buf.String(), "c=4")
}

func TestEncoder_Cancelled(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 3))
	series := randomSeries(rng, 10, 16)

	enc, err := NewEncoder()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = enc.EncodeAll(ctx, series, 4, 4)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEncoder_EncodeSignal(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	channels := randomSeries(rng, 4, 32)

	enc, err := NewEncoder()
	require.NoError(t, err)

	sig, err := enc.EncodeSignal(context.Background(), channels, 8, 5)
	require.NoError(t, err)
	require.Len(t, sig, 4)

	d, err := SignalDistance(sig, sig)
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = enc.EncodeSignal(context.Background(), nil, 8, 5)
	require.ErrorIs(t, err, errs.ErrEmptySeries)
}

func TestEncoder_Evaluate(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 1))
	enc, err := NewEncoder(WithConcurrency(2))
	require.NoError(t, err)

	signals := make([]Signal, 6)
	for i := range signals {
		sig, err := enc.EncodeSignal(context.Background(), randomSeries(rng, 3, 48), 8, 8)
		require.NoError(t, err)
		signals[i] = sig
	}

	t.Run("against itself", func(t *testing.T) {
		dists, err := enc.Evaluate(context.Background(), signals, signals, false)
		require.NoError(t, err)
		for _, d := range dists {
			require.Zero(t, d)
		}
	})

	t.Run("leave one out", func(t *testing.T) {
		dists, err := enc.Evaluate(context.Background(), signals, signals, true)
		require.NoError(t, err)
		for i, d := range dists {
			_, want, err := Nearest(signals[i], signals, i)
			require.NoError(t, err)
			require.Equal(t, want, d)
		}
	})

	t.Run("leave one out needs matching sets", func(t *testing.T) {
		_, err := enc.Evaluate(context.Background(), signals, signals[:2], true)
		require.ErrorIs(t, err, errs.ErrShapeMismatch)
	})

	t.Run("no references", func(t *testing.T) {
		_, err := enc.Evaluate(context.Background(), signals, nil, false)
		require.ErrorIs(t, err, errs.ErrEmptySeries)
	})
}

func BenchmarkEncoder_EncodeAll(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	series := randomSeries(rng, 256, 256)
	enc, err := NewEncoder()
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = enc.EncodeAll(context.Background(), series, 16, 8)
	}
}

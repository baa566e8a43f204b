package blob

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/section"
	"github.com/arloliu/symts/sax"
)

func noisyWindow(t *testing.T, n, w, c, samples int) *sax.Window {
	t.Helper()
	win, err := sax.NewWindow(n, w, c)
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(uint64(n), uint64(samples)))
	for i := range samples {
		v := 20 + rng.NormFloat64()*4
		if i%17 == 5 {
			v = math.NaN()
		}
		win.Append(v)
	}

	return win
}

func requireSameWindow(t *testing.T, want, got *sax.Window) {
	t.Helper()
	require.Equal(t, want.N(), got.N())
	require.Equal(t, want.W(), got.W())
	require.Equal(t, want.C(), got.C())
	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.Filled(), got.Filled())
	require.Equal(t, want.FiniteCount(), got.FiniteCount())

	wv, gv := want.Values(), got.Values()
	require.Len(t, gv, len(wv))
	for i := range wv {
		if math.IsNaN(wv[i]) {
			require.True(t, math.IsNaN(gv[i]), "sample %d", i)
			continue
		}
		require.Equal(t, wv[i], gv[i], "sample %d", i)
	}

	require.InDelta(t, want.Mean(), got.Mean(), 1e-9)
	require.InDelta(t, want.Std(), got.Std(), 1e-9)
	require.True(t, want.Word().Equal(got.Word()), "want %s got %s", want, got)
}

func TestWindow_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	encodings := []format.EncodingType{format.TypeRaw, format.TypeGorilla}
	windows := map[string]*sax.Window{
		"partial": noisyWindow(t, 64, 8, 8, 30),
		"filled":  noisyWindow(t, 64, 8, 8, 64),
		"slid":    noisyWindow(t, 128, 16, 16, 1000),
	}

	for wname, win := range windows {
		for _, ct := range compressions {
			for _, enc := range encodings {
				for _, big := range []bool{false, true} {
					name := wname + "/" + ct.String() + "/" + enc.String()
					if big {
						name += "/big"
					}
					t.Run(name, func(t *testing.T) {
						opts := []EncoderOption{WithCompression(ct), WithValueEncoding(enc)}
						if big {
							opts = append(opts, WithBigEndian())
						}

						data, err := EncodeWindow(win, opts...)
						require.NoError(t, err)

						h, err := section.ParseHeader(data)
						require.NoError(t, err)
						require.Equal(t, ct, h.Flag.Compression())
						require.Equal(t, enc, h.Flag.ValueEncoding())
						require.Equal(t, big, h.Flag.IsBigEndian())

						got, err := DecodeWindow(data)
						require.NoError(t, err)
						requireSameWindow(t, win, got)
					})
				}
			}
		}
	}
}

func TestWindow_ScenarioAfterSliding(t *testing.T) {
	win, err := sax.NewWindow(12, 4, 8)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(1, 9))
	for range 20 {
		win.Append(rng.Float64() * 100)
	}
	win.AppendSlice(scenarioSeries)
	require.Equal(t, "HAED", win.String())

	data, err := EncodeWindow(win)
	require.NoError(t, err)

	got, err := DecodeWindow(data)
	require.NoError(t, err)
	require.Equal(t, "HAED", got.String())

	// decoded windows keep sliding like the original
	win.Append(3)
	got.Append(3)
	require.True(t, win.Word().Equal(got.Word()))
}

func TestWindow_Empty(t *testing.T) {
	win, err := sax.NewWindow(16, 4, 4)
	require.NoError(t, err)

	data, err := EncodeWindow(win, WithValueEncoding(format.TypeGorilla))
	require.NoError(t, err)

	got, err := DecodeWindow(data)
	require.NoError(t, err)
	require.Zero(t, got.Len())
	require.Equal(t, "####", got.String())
}

func TestWindow_DecodeOptions(t *testing.T) {
	win, err := sax.NewWindow(4, 2, 4)
	require.NoError(t, err)
	win.AppendSlice([]float64{0, 0, 0.001, 0.001})

	data, err := EncodeWindow(win)
	require.NoError(t, err)

	got, err := DecodeWindow(data)
	require.NoError(t, err)
	require.Equal(t, "CC", got.String())

	got, err = DecodeWindow(data, sax.WithStdEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, "AD", got.String())

	_, err = DecodeWindow(data, sax.WithStdEpsilon(-1))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestEncodeWindow_Errors(t *testing.T) {
	_, err := EncodeWindow(nil)
	require.ErrorIs(t, err, errs.ErrInvalidWindowSize)

	win := noisyWindow(t, 8, 4, 4, 8)
	_, err = EncodeWindow(win, WithValueEncoding(format.EncodingType(0x7)))
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestDecodeWindow_Errors(t *testing.T) {
	win := noisyWindow(t, 16, 4, 8, 16)
	raw, err := EncodeWindow(win, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	resealed := func(t *testing.T, mutate func(h *section.Header), payload []byte) []byte {
		t.Helper()
		cfg, err := newEncoderConfig(format.KindWindow, []EncoderOption{WithCompression(format.CompressionNone)})
		require.NoError(t, err)
		h, err := section.ParseHeader(raw)
		require.NoError(t, err)
		mutate(&h)
		*cfg.header = h
		out, err := seal(cfg, payload)
		require.NoError(t, err)

		return out
	}

	t.Run("word snapshot", func(t *testing.T) {
		word, err := sax.FromString("AB", 4)
		require.NoError(t, err)
		data, err := EncodeWord(word)
		require.NoError(t, err)

		_, err = DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := DecodeWindow(raw[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("checksum", func(t *testing.T) {
		data := append([]byte(nil), raw...)
		data[section.HeaderSize] ^= 0x80
		_, err := DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("more samples than window", func(t *testing.T) {
		data := resealed(t, func(h *section.Header) { h.Count = 17 }, raw[section.HeaderSize:])
		_, err := DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("raw length mismatch", func(t *testing.T) {
		data := resealed(t, func(*section.Header) {}, raw[section.HeaderSize:len(raw)-3])
		_, err := DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})

	t.Run("bad shape", func(t *testing.T) {
		data := resealed(t, func(h *section.Header) { h.N = 15 }, raw[section.HeaderSize:])
		_, err := DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("window size above limit", func(t *testing.T) {
		data := resealed(t, func(h *section.Header) {
			h.N = 1 << 26
			h.W = 1
			h.C = 2
			h.Count = 0
		}, nil)
		_, err := DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidWindowSize)
	})

	t.Run("corrupted compressed payload", func(t *testing.T) {
		packed, err := EncodeWindow(win, WithCompression(format.CompressionZstd))
		require.NoError(t, err)
		data := append([]byte(nil), packed[:section.HeaderSize]...)
		data = append(data, 0xde, 0xad, 0xbe, 0xef)

		_, err = DecodeWindow(data)
		require.ErrorIs(t, err, errs.ErrInvalidPayload)
	})
}

func TestWindow_GorillaIsSmaller(t *testing.T) {
	win, err := sax.NewWindow(256, 16, 8)
	require.NoError(t, err)
	for i := range 256 {
		win.Append(float64(100 + i%4))
	}

	raw, err := EncodeWindow(win, WithCompression(format.CompressionNone))
	require.NoError(t, err)
	gorilla, err := EncodeWindow(win, WithCompression(format.CompressionNone), WithValueEncoding(format.TypeGorilla))
	require.NoError(t, err)

	require.Less(t, len(gorilla), len(raw))
}

func BenchmarkEncodeWindow(b *testing.B) {
	win, err := sax.NewWindow(1024, 32, 8)
	require.NoError(b, err)
	rng := rand.New(rand.NewPCG(4, 2))
	for range 1024 {
		win.Append(rng.NormFloat64())
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = EncodeWindow(win, WithValueEncoding(format.TypeGorilla))
	}
}

func BenchmarkDecodeWindow(b *testing.B) {
	win, err := sax.NewWindow(1024, 32, 8)
	require.NoError(b, err)
	rng := rand.New(rand.NewPCG(4, 2))
	for range 1024 {
		win.Append(rng.NormFloat64())
	}
	data, err := EncodeWindow(win)
	require.NoError(b, err)

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_, _ = DecodeWindow(data)
	}
}

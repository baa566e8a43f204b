package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/encoding"
	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/format"
	"github.com/arloliu/symts/internal/pool"
	"github.com/arloliu/symts/sax"
)

// MaxWindowSize is the largest window size a snapshot may carry. DecodeWindow
// checks it before allocating, so a forged header cannot request an
// arbitrarily large window.
const MaxWindowSize = 1 << 20

// EncodeWindow serializes the shape and resident samples of win.
//
// Statistics and the word are not stored: DecodeWindow replays the samples
// and recomputes both from them.
func EncodeWindow(win *sax.Window, opts ...EncoderOption) ([]byte, error) {
	if win == nil {
		return nil, fmt.Errorf("%w: nil window", errs.ErrInvalidWindowSize)
	}
	if win.N() > MaxWindowSize || win.W() > math.MaxUint16 {
		return nil, fmt.Errorf("%w: n=%d w=%d exceed the snapshot limits", errs.ErrInvalidWindowSize, win.N(), win.W())
	}

	cfg, err := newEncoderConfig(format.KindWindow, opts)
	if err != nil {
		return nil, err
	}

	values := win.Values()
	enc := newValueEncoder(cfg)
	defer enc.Finish()
	enc.WriteSlice(values)

	h := cfg.header
	h.N = uint32(win.N())         //nolint:gosec // checked above
	h.W = uint16(win.W())         //nolint:gosec // checked above
	h.C = uint8(win.C())          //nolint:gosec // cardinality is at most 16
	h.Count = uint32(len(values)) //nolint:gosec // at most n

	return seal(cfg, enc.Bytes())
}

// DecodeWindow restores a window from a snapshot produced by EncodeWindow.
//
// Engine options are not part of the snapshot and are passed again through
// opts; they must match the encoding side for the words to agree.
//
// Parameters:
//   - data: Snapshot bytes
//   - opts: Engine options used when the window was encoded
//
// Returns:
//   - *sax.Window: Window holding the stored samples, with statistics and
//     word recomputed
//   - error: errs.ErrInvalidWindowSize for a shape above MaxWindowSize or not
//     accepted by sax.NewWindow, errs.ErrInvalidPayload or
//     errs.ErrChecksumMismatch for a damaged payload
func DecodeWindow(data []byte, opts ...sax.Option) (*sax.Window, error) {
	h, payload, err := open(data, format.KindWindow)
	if err != nil {
		return nil, err
	}

	if h.N > MaxWindowSize {
		return nil, fmt.Errorf("%w: window size %d exceeds %d", errs.ErrInvalidWindowSize, h.N, MaxWindowSize)
	}
	if h.Count > h.N {
		return nil, fmt.Errorf("%w: %d samples for window size %d", errs.ErrInvalidPayload, h.Count, h.N)
	}

	win, err := sax.NewWindow(int(h.N), int(h.W), int(h.C), opts...)
	if err != nil {
		return nil, err
	}

	count := int(h.Count)
	if count == 0 {
		return win, nil
	}

	var dec encoding.ColumnarDecoder[float64]
	switch h.Flag.ValueEncoding() { //nolint: exhaustive
	case format.TypeGorilla:
		dec = encoding.NewNumericGorillaDecoder()
	default:
		if len(payload) != count*8 {
			return nil, fmt.Errorf("%w: %d bytes for %d raw samples", errs.ErrInvalidPayload, len(payload), count)
		}
		dec = encoding.NewNumericRawDecoder(h.Flag.GetEndianEngine())
	}

	buf, release := pool.GetFloat64Slice(count)
	defer release()
	values, ok := encoding.Collect(dec, payload, count, buf[:0])
	if !ok {
		return nil, fmt.Errorf("%w: truncated samples", errs.ErrInvalidPayload)
	}

	win.AppendSlice(values)

	return win, nil
}

func newValueEncoder(cfg *EncoderConfig) encoding.ColumnarEncoder[float64] {
	if cfg.header.Flag.ValueEncoding() == format.TypeGorilla {
		return encoding.NewNumericGorillaEncoder()
	}

	return encoding.NewNumericRawEncoder(cfg.engine)
}

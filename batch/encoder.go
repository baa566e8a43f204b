package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/sax"
)

// Encoder converts batches of series into words.
//
// An Encoder holds no per-call state and is safe for concurrent use.
type Encoder struct {
	cfg *Config
}

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// EncodeAll converts every series into a word of length w over cardinality c.
// Words are returned in input order.
//
// Series are encoded by at most the configured number of goroutines. The
// first failing series cancels the rest, and its error is returned wrapped
// with the series index. Without WithTruncate every series length must be a
// multiple of w.
//
// Parameters:
//   - ctx: Cancels the remaining work when done
//   - series: Input series, one word per entry
//   - w: Word length in symbols
//   - c: Alphabet cardinality in [2, 16]
//
// Returns:
//   - []sax.Word: One word per series, in input order
//   - error: Validation error, the first series failure, or ctx.Err()
func (e *Encoder) EncodeAll(ctx context.Context, series [][]float64, w, c int) ([]sax.Word, error) {
	if err := sax.ValidateCardinality(c); err != nil {
		return nil, err
	}
	if w <= 0 {
		return nil, fmt.Errorf("%w: w=%d", errs.ErrInvalidWordLength, w)
	}

	log := e.cfg.logger.With("w", w, "c", c)
	log.Debug("encoding batch", "series", len(series))

	words := make([]sax.Word, len(series))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.concurrency)

	for i, s := range series {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if e.cfg.truncate {
				s = Truncate(s, w)
			}

			word, err := sax.FromArray(s, w, c, e.cfg.engineOpts...)
			if err != nil {
				log.Error("failed to encode series", "series", i, "len", len(s), "err", err)
				return fmt.Errorf("series %d: %w", i, err)
			}
			words[i] = word

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// cancelled before any goroutine observed it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// EncodeSignal converts one series per channel into a Signal.
func (e *Encoder) EncodeSignal(ctx context.Context, channels [][]float64, w, c int) (Signal, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", errs.ErrEmptySeries)
	}

	words, err := e.EncodeAll(ctx, channels, w, c)
	if err != nil {
		return nil, err
	}

	return Signal(words), nil
}

// Evaluate returns, for every query, the distance to its nearest signal in
// refs. With leaveOneOut, query i skips refs[i]; use it when queries and refs
// are the same set.
//
// Queries are evaluated in parallel under the configured concurrency limit.
func (e *Encoder) Evaluate(ctx context.Context, queries, refs []Signal, leaveOneOut bool) ([]float64, error) {
	if leaveOneOut && len(queries) != len(refs) {
		return nil, fmt.Errorf("%w: leave-one-out over %d queries and %d references",
			errs.ErrShapeMismatch, len(queries), len(refs))
	}

	dists := make([]float64, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.concurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			skip := -1
			if leaveOneOut {
				skip = i
			}

			_, d, err := Nearest(q, refs, skip)
			if err != nil {
				e.cfg.logger.Error("failed to evaluate signal", "series", i, "err", err)
				return fmt.Errorf("query %d: %w", i, err)
			}
			dists[i] = d

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return dists, nil
}

package batch

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/options"
	"github.com/arloliu/symts/sax"
)

// Config holds Encoder settings.
type Config struct {
	logger      *slog.Logger
	engineOpts  []sax.Option
	concurrency int
	truncate    bool
}

// Option configures an Encoder.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.GOMAXPROCS(0),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration after all options were applied.
func (c *Config) Validate() error {
	if c.concurrency < 1 {
		return fmt.Errorf("%w: concurrency %d", errs.ErrInvalidOption, c.concurrency)
	}

	return nil
}

// WithConcurrency limits how many series are encoded in parallel.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return options.NoError(func(c *Config) {
		c.concurrency = n
	})
}

// WithLogger sets the logger used to report failed series. A nil logger
// discards output, which is also the default.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}

// WithTruncate drops the tail of every series so its length becomes a
// multiple of the word length, instead of rejecting it.
func WithTruncate(on bool) Option {
	return options.NoError(func(c *Config) {
		c.truncate = on
	})
}

// WithEngineOptions passes opts to every sax.FromArray call.
func WithEngineOptions(opts ...sax.Option) Option {
	return options.NoError(func(c *Config) {
		c.engineOpts = append(c.engineOpts, opts...)
	})
}

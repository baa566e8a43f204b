package sax

import (
	"fmt"
	"math"

	"github.com/arloliu/symts/errs"
	"github.com/arloliu/symts/internal/options"
)

// DefaultStdEpsilon is the standard deviation below which a series is treated
// as constant: every frame then normalizes to 0 instead of being scaled by a
// near-zero divisor.
const DefaultStdEpsilon = 1e-2

// Config holds the engine settings shared by FromArray and Window.
type Config struct {
	stdEpsilon float64
}

// Option configures the encoding engine.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{stdEpsilon: DefaultStdEpsilon}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// StdEpsilon returns the configured constant-series threshold.
func (c *Config) StdEpsilon() float64 {
	return c.stdEpsilon
}

// Validate checks the configuration after all options were applied.
func (c *Config) Validate() error {
	if math.IsNaN(c.stdEpsilon) || math.IsInf(c.stdEpsilon, 0) || c.stdEpsilon < 0 {
		return fmt.Errorf("%w: std epsilon %v", errs.ErrInvalidOption, c.stdEpsilon)
	}

	return nil
}

// WithStdEpsilon sets the standard deviation threshold below which a series is
// considered constant. It must be finite and non-negative.
func WithStdEpsilon(eps float64) Option {
	return options.NoError(func(c *Config) {
		c.stdEpsilon = eps
	})
}

package packer

import (
	"github.com/kvantox/cratepack/cluster"
	"github.com/kvantox/cratepack/placement"
)

// Config bundles the placement gate thresholds with the driver-level
// tunables. All fields have documented defaults and take effect per
// request.
type Config struct {
	Placement placement.Config

	// FootprintClusterTolerance is tau, the footprint clusterer's relative
	// area tolerance. Default 0.15.
	FootprintClusterTolerance float64
}

// DefaultConfig returns the documented default thresholds.
func DefaultConfig() Config {
	return Config{
		Placement:                 placement.DefaultConfig(),
		FootprintClusterTolerance: cluster.DefaultTolerance,
	}
}

// Option customizes a Config produced by NewConfig.
type Option func(*Config)

// WithGridStep overrides the placement grid step.
func WithGridStep(step float64) Option {
	return func(c *Config) { placement.WithGridStep(step)(&c.Placement) }
}

// WithSupportRatio overrides the minimum support ratio.
func WithSupportRatio(ratio float64) Option {
	return func(c *Config) { placement.WithSupportRatio(ratio)(&c.Placement) }
}

// WithEpsilon overrides the general-purpose epsilon (ε_gen).
func WithEpsilon(eps float64) Option {
	return func(c *Config) { placement.WithEpsilon(eps)(&c.Placement) }
}

// WithHeightEpsilon overrides the coplanarity epsilon (ε_h).
func WithHeightEpsilon(eps float64) Option {
	return func(c *Config) { placement.WithHeightEpsilon(eps)(&c.Placement) }
}

// WithBalanceLimitRatio overrides the balance limit ratio.
func WithBalanceLimitRatio(ratio float64) Option {
	return func(c *Config) { placement.WithBalanceLimitRatio(ratio)(&c.Placement) }
}

// WithFootprintClusterTolerance overrides tau. Negative values are ignored.
func WithFootprintClusterTolerance(tau float64) Option {
	return func(c *Config) {
		if tau >= 0 {
			c.FootprintClusterTolerance = tau
		}
	}
}

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

package placement

// Config holds the tunable thresholds the stability gates and candidate
// generator use. All fields have documented defaults and take effect per
// request; there is no package-level global state.
type Config struct {
	// GridStep is the XY candidate spacing between grid positions. Default 5.0.
	GridStep float64

	// SupportRatio is the minimum fraction of an item's base area that must
	// be covered by coplanar supporters. Default 0.60.
	SupportRatio float64

	// Epsilon is the general-purpose tolerance, ε_gen. Default 1e-6.
	Epsilon float64

	// HeightEpsilon is the coplanarity tolerance, ε_h. Default 1e-3.
	HeightEpsilon float64

	// BalanceLimitRatio bounds the post-insertion centre-of-mass offset as
	// a fraction of the cavity's base diagonal. Default 0.45.
	BalanceLimitRatio float64
}

// DefaultConfig returns the documented default thresholds.
func DefaultConfig() Config {
	return Config{
		GridStep:          5.0,
		SupportRatio:      0.60,
		Epsilon:           1e-6,
		HeightEpsilon:     1e-3,
		BalanceLimitRatio: 0.45,
	}
}

// Option customizes a Config produced by NewConfig.
type Option func(*Config)

// WithGridStep overrides GridStep. Non-positive values are ignored.
func WithGridStep(step float64) Option {
	return func(c *Config) {
		if step > 0 {
			c.GridStep = step
		}
	}
}

// WithSupportRatio overrides SupportRatio. Values outside [0,1] are ignored.
func WithSupportRatio(ratio float64) Option {
	return func(c *Config) {
		if ratio >= 0 && ratio <= 1 {
			c.SupportRatio = ratio
		}
	}
}

// WithEpsilon overrides Epsilon (ε_gen). Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(c *Config) {
		if eps > 0 {
			c.Epsilon = eps
		}
	}
}

// WithHeightEpsilon overrides HeightEpsilon (ε_h). Non-positive values are
// ignored.
func WithHeightEpsilon(eps float64) Option {
	return func(c *Config) {
		if eps > 0 {
			c.HeightEpsilon = eps
		}
	}
}

// WithBalanceLimitRatio overrides BalanceLimitRatio. Negative values are
// ignored.
func WithBalanceLimitRatio(ratio float64) Option {
	return func(c *Config) {
		if ratio >= 0 {
			c.BalanceLimitRatio = ratio
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

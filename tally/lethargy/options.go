package lethargy

// Option configures [Rescale] and [Restore].
type Option func(*config)

type config struct {
	scalar    float64
	perBin    []float64
	hasScalar bool
	hasPerBin bool
}

// WithDivisor normalizes every bin by the same positive value, such as a
// cell volume.
func WithDivisor(v float64) Option {
	return func(cfg *config) {
		cfg.scalar = v
		cfg.hasScalar = true
		cfg.perBin = nil
		cfg.hasPerBin = false
	}
}

// WithDivisors normalizes bin i by vs[i]. vs must have one entry per bin;
// an empty or nil vs is a length mismatch, not "no normalization".
// The slice is not retained.
func WithDivisors(vs []float64) Option {
	return func(cfg *config) {
		cfg.perBin = append([]float64(nil), vs...)
		cfg.hasPerBin = true
		cfg.hasScalar = false
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) normalized() bool { return c.hasScalar || c.hasPerBin }

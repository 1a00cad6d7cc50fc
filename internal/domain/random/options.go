package random

type sourceConfig struct {
	seed int64
}

// Option applies a configuration option to a MathSource.
type Option func(*sourceConfig)

// WithSeed makes the MathSource deterministic. A zero seed keeps clock seeding.
func WithSeed(seed int64) Option {
	return func(c *sourceConfig) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

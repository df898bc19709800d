package duallist

type (
	config struct {
		strict   bool
		capacity int
	}

	// Option configures a List at construction time
	Option func(c *config)
)

// Strict makes SetByFirst and SetBySecond reject writes that would
// produce a duplicate pair. Without it such writes are accepted silently.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithCapacity preallocates room for n pairs
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func newConfig(options []Option) config {
	var c config
	for _, o := range options {
		o(&c)
	}
	return c
}

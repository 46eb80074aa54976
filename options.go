package asmlex

const defaultBufferSize = 4096

type config struct {
	filename   string
	bufferSize int
}

// Option configures a ByteStream or a Tokenizer built from a reader.
type Option func(*config)

// WithFilename stamps every Position with name.
func WithFilename(name string) Option {
	return func(c *config) {
		c.filename = name
	}
}

// WithBufferSize sets the read buffer size. bufio enforces its own minimum.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = n
	}
}

func newConfig(opts []Option) config {
	c := config{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.bufferSize <= 0 {
		c.bufferSize = defaultBufferSize
	}
	return c
}

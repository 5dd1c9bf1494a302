package csvio

// Defaults.
const (
	// DefaultDelimiter separates values on output lines.
	DefaultDelimiter = ", "

	// DefaultComma separates fields on input.
	DefaultComma = ','

	// DefaultPrecision of -1 selects the shortest exact representation.
	DefaultPrecision = -1
)

const (
	panicPrecisionInvalid = "csvio: WithPrecision: digits must be >= -1"
	panicDelimiterInvalid = "csvio: WithDelimiter: delimiter must not be empty"
)

// Options controls reading and writing. Build it through Option values.
type Options struct {
	delimiter  string
	comma      rune
	precision  int
	skipHeader bool
	header     []string
}

// Option mutates Options.
type Option func(*Options)

// WithDelimiter sets the output separator. Panics on "".
func WithDelimiter(d string) Option {
	if d == "" {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = d }
}

// WithComma sets the input field separator (e.g. ';' or '\t').
func WithComma(r rune) Option {
	return func(o *Options) { o.comma = r }
}

// WithPrecision fixes the number of decimals on output; -1 means shortest.
// Panics when digits < -1.
func WithPrecision(digits int) Option {
	if digits < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// WithSkipHeader discards the first input record (a header line).
func WithSkipHeader() Option {
	return func(o *Options) { o.skipHeader = true }
}

// WithHeader writes names as the first output line.
func WithHeader(names []string) Option {
	cp := make([]string, len(names))
	copy(cp, names)

	return func(o *Options) { o.header = cp }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		delimiter: DefaultDelimiter,
		comma:     DefaultComma,
		precision: DefaultPrecision,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

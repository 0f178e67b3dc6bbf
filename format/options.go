package format

// Alpha fallback formats for hex output of translucent colours.
const (
	AlphaRGB = "rgb"
	AlphaHex = "hex"
)

// Options control how plugins print.
type Options struct {
	// AlphaFormat is the format used when a hex colour with alpha < 1
	// prints without an explicit sub-format: AlphaRGB or AlphaHex.
	AlphaFormat string
	// ShortHex prefers three digit hex output where possible.
	ShortHex bool
	// UpperCaseHex prints hex digits in upper case.
	UpperCaseHex bool
}

// DefaultOptions are the options a new registry starts with.
func DefaultOptions() Options {
	return Options{AlphaFormat: AlphaRGB}
}

// Option sets one field of Options, or an alias at registration time.
type Option func(*settings)

// settings records only the fields an Option touched, so a partial update
// leaves the rest of a snapshot alone.
type settings struct {
	alphaFormat  *string
	shortHex     *bool
	upperCaseHex *bool
	aliases      []string
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) apply(o Options) Options {
	if s.alphaFormat != nil {
		o.AlphaFormat = *s.alphaFormat
	}
	if s.shortHex != nil {
		o.ShortHex = *s.shortHex
	}
	if s.upperCaseHex != nil {
		o.UpperCaseHex = *s.upperCaseHex
	}
	return o
}

// WithAlphaFormat sets the alpha fallback format. Values other than
// AlphaRGB and AlphaHex are ignored.
func WithAlphaFormat(f string) Option {
	return func(s *settings) {
		if f != AlphaRGB && f != AlphaHex {
			log().Warningf("ignoring alpha format %q, want %q or %q", f, AlphaRGB, AlphaHex)
			return
		}
		s.alphaFormat = &f
	}
}

// WithShortHex sets the short hex preference.
func WithShortHex(v bool) Option {
	return func(s *settings) { s.shortHex = &v }
}

// WithUpperCaseHex sets the upper case hex preference.
func WithUpperCaseHex(v bool) Option {
	return func(s *settings) { s.upperCaseHex = &v }
}

// WithAlias registers the format under additional ids. It only has an
// effect on Register.
func WithAlias(aliases ...string) Option {
	return func(s *settings) { s.aliases = append(s.aliases, aliases...) }
}

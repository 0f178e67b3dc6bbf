package format

// Built-in format ids, in order of precedence.
const (
	RGB  = "rgb"
	PRGB = "prgb"
	Hex  = "hex"
	Hex8 = "hex8"
	HSL  = "hsl"
	HSV  = "hsv"
	Name = "name"
)

// RegisterBuiltins registers the built-in formats on r.
func RegisterBuiltins(r *Registry) {
	builtins := []struct {
		id     string
		plugin Plugin
		opts   []Option
	}{
		{RGB, rgbPlugin(), nil},
		{PRGB, prgbPlugin(), nil},
		{Hex, hexPlugin(), []Option{WithAlias("hex3", "hex6")}},
		{Hex8, hex8Plugin(), []Option{WithAlias("hex4")}},
		{HSL, hslPlugin(), nil},
		{HSV, hsvPlugin(), nil},
		{Name, namePlugin(), nil},
	}

	for _, b := range builtins {
		// Ids are constant and non-empty.
		_, _ = r.Register(b.id, b.plugin, b.opts...)
	}
}

var defaultRegistry = func() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}()

// Default returns the process-wide registry holding the built-in formats.
func Default() *Registry {
	return defaultRegistry
}

// RegisterFormat registers a format on the default registry.
func RegisterFormat(id string, p Plugin, opts ...Option) (*Handle, error) {
	return defaultRegistry.Register(id, p, opts...)
}

// SetDefaults changes the default options of the default registry.
func SetDefaults(opts ...Option) {
	defaultRegistry.SetDefaults(opts...)
}

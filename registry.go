package huekit

import "github.com/jsvensson/huekit/format"

// RegisterFormat adds a format to the default registry. Formats registered
// later have lower precedence.
func RegisterFormat(id string, p format.Plugin, opts ...format.Option) (*format.Handle, error) {
	return format.RegisterFormat(id, p, opts...)
}

// SetDefaults changes the print options of every format in the default
// registry.
func SetDefaults(opts ...format.Option) {
	format.SetDefaults(opts...)
}

// Names returns the CSS colour names known to the default registry, mapped
// to hex digits without "#".
func Names() map[string]string {
	return format.Names()
}

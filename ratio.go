package huekit

import (
	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/units"
)

// FromRatio builds a colour from components in [0, 1], so {"r": 1, "g": 0.5,
// "b": 0} is orange. Alpha is taken as is.
func FromRatio(obj format.Object, opts ...Option) *Color {
	scaled := make(format.Object, len(obj))
	for k, v := range obj {
		if k == "a" {
			scaled[k] = v
			continue
		}
		tok, ok := units.Token(v)
		if !ok {
			scaled[k] = v
			continue
		}
		scaled[k] = units.ConvertToPercentage(tok)
	}
	return New(scaled, opts...)
}

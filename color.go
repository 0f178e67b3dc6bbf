// Package huekit parses colours in any notation the format registry
// understands, converts them between notations and derives new colours
// from them.
//
//	c := huekit.New("hsl(251, 100%, 38%)")
//	c.ToHexString(false)   // "#2400c2"
//	c.Lighten(10).String() // "hsl(251, 100%, 48%)"
package huekit

import (
	"sync/atomic"

	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

var nextID atomic.Uint64

// Color is a parsed colour. It keeps full channel precision; printing
// rounds. The zero value is not usable; construct colours with New.
type Color struct {
	rgba     format.RGBA
	roundA   float64
	format   string
	original any
	valid    bool
	err      error
	id       uint64
	reg      *format.Registry
}

// Option configures New.
type Option func(*options)

type options struct {
	format string
	reg    *format.Registry
}

// WithFormat overrides the detected format, so the colour prints in the
// given format by default.
func WithFormat(id string) Option {
	return func(o *options) { o.format = id }
}

// WithRegistry resolves and prints through r instead of format.Default().
func WithRegistry(r *format.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.reg = r
		}
	}
}

// New parses input, which may be a string in any registered notation, a
// format.Object, a map[string]any, an image/color.Color or an existing
// *Color. An existing *Color is returned as is. Input that no format
// recognizes yields an invalid opaque black colour; see IsValid and Err.
func New(input any, opts ...Option) *Color {
	if c, ok := input.(*Color); ok {
		if c != nil {
			return c
		}
		input = nil
	}

	o := options{reg: format.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	if input == nil {
		input = ""
	}

	res := o.reg.Resolve(input)
	c := &Color{
		rgba: format.RGBA{
			R: units.RoundIf01(res.RGBA.R),
			G: units.RoundIf01(res.RGBA.G),
			B: units.RoundIf01(res.RGBA.B),
			A: res.RGBA.A,
		},
		roundA:   units.RoundAlpha(res.RGBA.A),
		format:   res.Format,
		original: input,
		valid:    res.Valid,
		err:      res.Err,
		id:       nextID.Add(1),
		reg:      o.reg,
	}
	if o.format != "" {
		c.format = o.format
	}
	return c
}

// derive builds a colour from input with the same registry and format.
func (c *Color) derive(input any) *Color {
	return New(input, WithRegistry(c.reg), WithFormat(c.format))
}

// IsValid reports whether a format recognized and parsed the input.
func (c *Color) IsValid() bool { return c.valid }

// Err returns why the input was not valid: format.ErrUnrecognized or a
// *format.ParseError. It is nil for valid colours.
func (c *Color) Err() error { return c.err }

// OriginalInput returns the input New was called with.
func (c *Color) OriginalInput() any { return c.original }

// Format returns the id of the format the colour prints in by default.
func (c *Color) Format() string { return c.format }

// ID returns a process-wide sequence number, for debugging.
func (c *Color) ID() uint64 { return c.id }

// Alpha returns the alpha channel in [0, 1].
func (c *Color) Alpha() float64 { return c.rgba.A }

// Registry returns the registry the colour resolves and prints through.
func (c *Color) Registry() *format.Registry { return c.reg }

// Brightness returns the perceived brightness in [0, 255].
func (c *Color) Brightness() float64 { return color.Brightness(c.rgba) }

// Luminance returns the WCAG relative luminance in [0, 1].
func (c *Color) Luminance() float64 { return color.Luminance(c.rgba) }

// IsDark reports whether the brightness is below 128.
func (c *Color) IsDark() bool { return c.Brightness() < 128 }

// IsLight is the opposite of IsDark.
func (c *Color) IsLight() bool { return !c.IsDark() }

// display is the rounded projection used for most string output.
func (c *Color) display() format.RGBA {
	d := c.rgba.Display()
	d.A = c.roundA
	return d
}

// SetAlpha bounds a like any alpha input and stores it. It mutates the
// colour and returns it.
func (c *Color) SetAlpha(a any) *Color {
	c.rgba.A = units.BoundAlpha(a)
	c.roundA = units.RoundAlpha(c.rgba.A)
	return c
}

// Clone returns a new colour parsed from ToString. Precision beyond what
// the string keeps is lost.
func (c *Color) Clone() *Color {
	return New(c.ToString(), WithRegistry(c.reg))
}

// Equal reports whether c and other print the same rgb string.
func (c *Color) Equal(other *Color) bool {
	if c == nil || other == nil {
		return false
	}
	return c.ToRgbString() == other.ToRgbString()
}

// Equals reports whether two inputs resolve to colours with the same rgb
// string. Nil and empty inputs are never equal.
func Equals(a, b any) bool {
	if isEmpty(a) || isEmpty(b) {
		return false
	}
	return New(a).Equal(New(b))
}

func isEmpty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case *Color:
		return v == nil
	}
	return false
}

// RGBA implements image/color.Color with alpha-premultiplied channels.
func (c *Color) RGBA() (r, g, b, a uint32) {
	d := c.rgba.Display()
	a = uint32(units.Round(c.rgba.A * 0xffff))
	r = uint32(d.R) * 0x101 * a / 0xffff
	g = uint32(d.G) * 0x101 * a / 0xffff
	b = uint32(d.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

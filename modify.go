package huekit

import (
	"math"

	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/units"
)

// DefaultAmount is the conventional amount, in percent, for Lighten,
// Darken, Brighten, Saturate and Desaturate.
const DefaultAmount = 10

// The modifiers below return a new colour that keeps the receiver's format
// and alpha; the receiver is left unchanged.

// Lighten raises HSL lightness by amount percent, clamped to white.
func (c *Color) Lighten(amount float64) *Color {
	hsl := c.ToHsl()
	hsl.L = units.Clamp01(hsl.L + amount/100)
	return c.derive(hsl.Object())
}

// Darken lowers HSL lightness by amount percent, clamped to black.
func (c *Color) Darken(amount float64) *Color {
	hsl := c.ToHsl()
	hsl.L = units.Clamp01(hsl.L - amount/100)
	return c.derive(hsl.Object())
}

// Saturate raises HSL saturation by amount percent.
func (c *Color) Saturate(amount float64) *Color {
	hsl := c.ToHsl()
	hsl.S = units.Clamp01(hsl.S + amount/100)
	return c.derive(hsl.Object())
}

// Desaturate lowers HSL saturation by amount percent.
func (c *Color) Desaturate(amount float64) *Color {
	hsl := c.ToHsl()
	hsl.S = units.Clamp01(hsl.S - amount/100)
	return c.derive(hsl.Object())
}

// Greyscale removes all saturation.
func (c *Color) Greyscale() *Color {
	return c.Desaturate(100)
}

// Brighten adds amount percent of 255 to every RGB channel.
func (c *Color) Brighten(amount float64) *Color {
	rgb := c.ToRgb()
	step := units.Round(255 * -(amount / 100))
	rgb.R = math.Max(0, math.Min(255, rgb.R-step))
	rgb.G = math.Max(0, math.Min(255, rgb.G-step))
	rgb.B = math.Max(0, math.Min(255, rgb.B-step))
	return c.derive(format.RGBObject(rgb))
}

// Spin rotates the hue by amount degrees, in either direction.
func (c *Color) Spin(amount float64) *Color {
	hsl := c.ToHsl()
	hsl.H = wrapHue(hsl.H + amount)
	return c.derive(hsl.Object())
}

// Invert replaces every channel v with 255-v.
func (c *Color) Invert() *Color {
	rgb := c.ToRgb()
	rgb.R = math.Max(0, math.Min(255, 255-rgb.R))
	rgb.G = math.Max(0, math.Min(255, 255-rgb.G))
	rgb.B = math.Max(0, math.Min(255, 255-rgb.B))
	return c.derive(format.RGBObject(rgb))
}

// wrapHue maps degrees into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

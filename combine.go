package huekit

import (
	"math"

	"github.com/jsvensson/huekit/format"
)

// Default counts for Analogous and Monochromatic.
const (
	DefaultAnalogousResults = 6
	DefaultAnalogousSlices  = 30
	DefaultMonochromatic    = 6
)

// Complement returns the colour opposite on the colour wheel.
func (c *Color) Complement() *Color {
	hsl := c.ToHsl()
	hsl.H = wrapHue(hsl.H + 180)
	return c.derive(hsl.Object())
}

// Triad returns the colour and the two colours 120 degrees from it.
func (c *Color) Triad() []*Color {
	return c.rotations(120, 240)
}

// Tetrad returns the colour and the three colours 90 degrees apart from it.
func (c *Color) Tetrad() []*Color {
	return c.rotations(90, 180, 270)
}

// SplitComplement returns the colour and the two colours 72 and 216
// degrees from it.
func (c *Color) SplitComplement() []*Color {
	return c.rotations(72, 216)
}

// rotations returns c followed by opaque copies rotated by each offset.
func (c *Color) rotations(offsets ...float64) []*Color {
	hsl := c.ToHsl()
	out := []*Color{c}
	for _, offset := range offsets {
		out = append(out, c.derive(format.HSLA{
			H: wrapHue(hsl.H + offset),
			S: hsl.S,
			L: hsl.L,
			A: 1,
		}.Object()))
	}
	return out
}

// Analogous returns results colours, the receiver first, spread across
// neighbouring slices of a wheel divided into slices parts.
func (c *Color) Analogous(results, slices int) []*Color {
	if results <= 0 {
		results = DefaultAnalogousResults
	}
	if slices <= 0 {
		slices = DefaultAnalogousSlices
	}

	hsl := c.ToHsl()
	part := 360 / float64(slices)
	out := []*Color{c}

	hsl.H = wrapHue(hsl.H - float64(int32(part*float64(results))>>1) + 720)
	for i := 1; i < results; i++ {
		hsl.H = wrapHue(hsl.H + part)
		out = append(out, c.derive(hsl.Object()))
	}
	return out
}

// Monochromatic returns results opaque colours of the same hue and
// saturation with evenly stepped HSV value, starting at the receiver's.
func (c *Color) Monochromatic(results int) []*Color {
	if results <= 0 {
		results = DefaultMonochromatic
	}

	hsv := c.ToHsv()
	step := 1 / float64(results)
	out := make([]*Color, 0, results)
	for i := 0; i < results; i++ {
		out = append(out, c.derive(format.HSVA{H: hsv.H, S: hsv.S, V: hsv.V, A: 1}.Object()))
		hsv.V = math.Mod(hsv.V+step, 1)
	}
	return out
}

package huekit

import "github.com/jsvensson/huekit/format"

// DefaultMixAmount is the conventional Mix amount: halfway.
const DefaultMixAmount = 50

// Mix interpolates linearly from a to b, alpha included. amount is the
// percentage of b in the result: 0 yields a, 100 yields b.
func Mix(a, b any, amount float64) *Color {
	c1, c2 := New(a), New(b)
	rgb1, rgb2 := c1.ToRgb(), c2.ToRgb()
	p := amount / 100

	return New(format.RGBObject(format.RGBA{
		R: (rgb2.R-rgb1.R)*p + rgb1.R,
		G: (rgb2.G-rgb1.G)*p + rgb1.G,
		B: (rgb2.B-rgb1.B)*p + rgb1.B,
		A: (rgb2.A-rgb1.A)*p + rgb1.A,
	}), WithRegistry(c1.reg))
}

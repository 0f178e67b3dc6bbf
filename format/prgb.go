package format

import (
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

// prgbPlugin handles rgb notation with percentage channels. Text input is
// normally claimed by rgb first, which parses percentages the same way.
func prgbPlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			toks, _, ok := rgbTokens(in)
			return ok && units.IsPercentage(toks[0])
		},
		ParseFunc: parseRGB,
		RawFunc: func(c RGBA) any {
			p := c.Percent()
			return PercentRGBA{R: p[0], G: p[1], B: p[2], A: c.A}
		},
		StringifyFunc: func(c RGBA, _ Request) (string, error) {
			return color.FunctionString("rgb", c.Percent(), c.A), nil
		},
	}
}

package format

import (
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

var (
	hslMatcher = units.NewMatcher("hsl")
	hsvMatcher = units.NewMatcher("hsv")
)

// cylinderTokens extracts hue, the two percentage components and alpha
// from functional notation or an object with keys h, k2 and k3.
func cylinderTokens(m units.Matcher, in Input, k2, k3 string) ([]string, any, bool) {
	if in.IsObject() {
		toks, ok := objectTokens(in.Object, "h", k2, k3)
		return toks, in.Object["a"], ok
	}
	return matchTokens(m, in.Text)
}

// boundCylinder bounds hue to [0, 1] of a turn and the other two components
// to [0, 1], accepting ratios, plain numbers up to 100 or percentages.
func boundCylinder(toks []string) (h, x, y float64) {
	return units.Bound01(toks[0], 360),
		units.Bound01(units.ConvertToPercentage(toks[1]), 100),
		units.Bound01(units.ConvertToPercentage(toks[2]), 100)
}

func hslPlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			_, _, ok := cylinderTokens(hslMatcher, in, "s", "l")
			return ok
		},
		ParseFunc: func(in Input) (RGBA, error) {
			toks, a, ok := cylinderTokens(hslMatcher, in, "s", "l")
			if !ok {
				return RGBA{}, ErrUnrecognized
			}
			r, g, b := color.HSLToRGB(boundCylinder(toks))
			return RGBA{R: r * 255, G: g * 255, B: b * 255, A: units.BoundAlpha(a)}, nil
		},
		RawFunc: func(c RGBA) any { return toHSLA(c) },
		StringifyFunc: func(c RGBA, _ Request) (string, error) {
			hsl := toHSLA(c)
			return color.FunctionString("hsl", [3]string{
				roundString(hsl.H),
				roundString(hsl.S*100) + "%",
				roundString(hsl.L*100) + "%",
			}, c.A), nil
		},
	}
}

func toHSLA(c RGBA) HSLA {
	h, s, l := color.RGBToHSL(
		units.BoundFloat01(c.R, 255),
		units.BoundFloat01(c.G, 255),
		units.BoundFloat01(c.B, 255),
	)
	return HSLA{H: h * 360, S: s, L: l, A: c.A}
}

func roundString(v float64) string {
	return units.FormatFloat(units.Round(v))
}

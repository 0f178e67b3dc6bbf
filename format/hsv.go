package format

import (
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

func hsvPlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			_, _, ok := cylinderTokens(hsvMatcher, in, "s", "v")
			return ok
		},
		ParseFunc: func(in Input) (RGBA, error) {
			toks, a, ok := cylinderTokens(hsvMatcher, in, "s", "v")
			if !ok {
				return RGBA{}, ErrUnrecognized
			}
			r, g, b := color.HSVToRGB(boundCylinder(toks))
			return RGBA{R: r * 255, G: g * 255, B: b * 255, A: units.BoundAlpha(a)}, nil
		},
		RawFunc: func(c RGBA) any { return toHSVA(c) },
		StringifyFunc: func(c RGBA, _ Request) (string, error) {
			hsv := toHSVA(c)
			return color.FunctionString("hsv", [3]string{
				roundString(hsv.H),
				roundString(hsv.S*100) + "%",
				roundString(hsv.V*100) + "%",
			}, c.A), nil
		},
	}
}

func toHSVA(c RGBA) HSVA {
	h, s, v := color.RGBToHSV(
		units.BoundFloat01(c.R, 255),
		units.BoundFloat01(c.G, 255),
		units.BoundFloat01(c.B, 255),
	)
	return HSVA{H: h * 360, S: s, V: v, A: c.A}
}

package format

import (
	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

var rgbMatcher = units.NewMatcher("rgb")

// rgbTokens extracts channel tokens and the alpha component from rgb
// functional notation or an {r, g, b, a} object. Alpha is nil when absent.
func rgbTokens(in Input) ([]string, any, bool) {
	if in.IsObject() {
		toks, ok := objectTokens(in.Object, "r", "g", "b")
		return toks, in.Object["a"], ok
	}
	return matchTokens(rgbMatcher, in.Text)
}

// matchTokens runs a permissive matcher over text, trying the three
// component form before the four component one.
func matchTokens(m units.Matcher, text string) ([]string, any, bool) {
	if parts := m.Match(text); parts != nil {
		return parts, nil, true
	}
	if parts := m.Match4(text); parts != nil {
		return parts[:3], parts[3], true
	}
	return nil, nil, false
}

// objectTokens returns the values of keys as tokens. Every key must hold a
// valid CSS unit.
func objectTokens(o Object, keys ...string) ([]string, bool) {
	toks := make([]string, len(keys))
	for i, k := range keys {
		tok, ok := units.Token(o[k])
		if !ok || !units.IsValidUnit(tok) {
			return nil, false
		}
		toks[i] = tok
	}
	return toks, true
}

func rgbPlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			toks, _, ok := rgbTokens(in)
			if in.IsObject() {
				return ok && !units.IsPercentage(toks[0])
			}
			return ok
		},
		ParseFunc:     parseRGB,
		RawFunc:       func(c RGBA) any { return c },
		StringifyFunc: func(c RGBA, _ Request) (string, error) { return c.Display().String(), nil },
	}
}

func parseRGB(in Input) (RGBA, error) {
	toks, a, ok := rgbTokens(in)
	if !ok {
		return RGBA{}, ErrUnrecognized
	}
	return color.Conform(toks[0], toks[1], toks[2], a), nil
}

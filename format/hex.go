package format

import (
	"regexp"
	"strings"

	"github.com/jsvensson/huekit/internal/color"
	"github.com/jsvensson/huekit/internal/units"
)

var (
	hex3Re = regexp.MustCompile(`^#?[0-9a-fA-F]{3}$`)
	hex6Re = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
	hex4Re = regexp.MustCompile(`^#?[0-9a-fA-F]{4}$`)
	hex8Re = regexp.MustCompile(`^#?[0-9a-fA-F]{8}$`)
)

func hexPlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			return !in.IsObject() && (hex6Re.MatchString(in.Text) || hex3Re.MatchString(in.Text))
		},
		ParseFunc: parseHex,
		RawFunc:   func(c RGBA) any { return c },
		StringifyFunc: func(c RGBA, req Request) (string, error) {
			switch {
			case req.Wanted == Hex || req.Wanted == "hex6":
				return hexString(c.Hex(req.Options.ShortHex), req.Options), nil
			case req.Wanted == "hex3":
				return hexString(c.Hex(true), req.Options), nil
			case units.HasAlpha(c.A) && req.Options.AlphaFormat != AlphaHex:
				return req.Printer.Print(c, req.Options.AlphaFormat)
			}
			return hexString(c.Hex(req.Options.ShortHex), req.Options), nil
		},
	}
}

func hex8Plugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			return !in.IsObject() && (hex8Re.MatchString(in.Text) || hex4Re.MatchString(in.Text))
		},
		ParseFunc: parseHex,
		RawFunc:   func(c RGBA) any { return c },
		StringifyFunc: func(c RGBA, req Request) (string, error) {
			switch {
			case req.Wanted == "hex4":
				return hexString(c.Hex8(true), req.Options), nil
			case req.Wanted == Hex8:
				return hexString(c.Hex8(req.Options.ShortHex), req.Options), nil
			case units.HasAlpha(c.A) && req.Options.AlphaFormat != AlphaHex:
				return req.Printer.Print(c, req.Options.AlphaFormat)
			}
			return hexString(c.Hex8(req.Options.ShortHex), req.Options), nil
		},
	}
}

func parseHex(in Input) (RGBA, error) {
	return color.ParseHex(in.Text)
}

func hexString(digits string, opts Options) string {
	if opts.UpperCaseHex {
		digits = strings.ToUpper(digits)
	}
	return "#" + digits
}

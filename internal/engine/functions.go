package engine

import (
	"fmt"
	"text/template"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/palette"
)

// funcMap builds the template functions for f. Every colour argument may
// be a palette path ("surface.low" or "palette.surface.low"), a palette
// *Node, a *huekit.Color or any notation the file's registry understands.
// Modifiers take the colour last so they chain in pipelines:
//
//	{{ color "brand" | lighten 10 | hex }}
func funcMap(f *palette.File) template.FuncMap {
	resolve := func(v any) (*huekit.Color, error) {
		switch c := v.(type) {
		case *huekit.Color:
			if c == nil || !c.IsValid() {
				return nil, fmt.Errorf("invalid color")
			}
			return c, nil
		case *palette.Node:
			if c == nil || c.Color == nil {
				return nil, fmt.Errorf("palette group has no color")
			}
			return c.Color, nil
		case string:
			if c, err := f.Lookup(c); err == nil {
				return c, nil
			}
			parsed := huekit.New(c, huekit.WithRegistry(f.Registry()))
			if !parsed.IsValid() {
				return nil, fmt.Errorf("%q is neither a palette path nor a color", c)
			}
			return parsed, nil
		}
		return nil, fmt.Errorf("cannot use %T as a color", v)
	}

	printer := func(p func(*huekit.Color) string) func(any) (string, error) {
		return func(v any) (string, error) {
			c, err := resolve(v)
			if err != nil {
				return "", err
			}
			return p(c), nil
		}
	}

	modifier := func(m func(*huekit.Color, float64) *huekit.Color) func(float64, any) (*huekit.Color, error) {
		return func(amount float64, v any) (*huekit.Color, error) {
			c, err := resolve(v)
			if err != nil {
				return nil, err
			}
			return m(c, amount), nil
		}
	}

	return template.FuncMap{
		"color": resolve,

		"hex":      printer(func(c *huekit.Color) string { return c.ToHexString(false) }),
		"hexBare":  printer(func(c *huekit.Color) string { return c.ToHex(false) }),
		"hex8":     printer(func(c *huekit.Color) string { return c.ToHex8String(false) }),
		"hex8Bare": printer(func(c *huekit.Color) string { return c.ToHex8(false) }),
		"rgb":      printer((*huekit.Color).ToRgbString),
		"prgb":     printer((*huekit.Color).ToPercentageRgbString),
		"hsl":      printer((*huekit.Color).ToHslString),
		"hsv":      printer((*huekit.Color).ToHsvString),
		"name": printer(func(c *huekit.Color) string {
			if name, ok := c.ToName(); ok {
				return name
			}
			return c.ToHexString(false)
		}),
		"string": printer(func(c *huekit.Color) string { return c.String() }),
		"convert": func(id string, v any) (string, error) {
			c, err := resolve(v)
			if err != nil {
				return "", err
			}
			if !f.Registry().Has(id) {
				return "", fmt.Errorf("unknown format %q", id)
			}
			return c.ToString(id), nil
		},

		"lighten":    modifier((*huekit.Color).Lighten),
		"darken":     modifier((*huekit.Color).Darken),
		"brighten":   modifier((*huekit.Color).Brighten),
		"saturate":   modifier((*huekit.Color).Saturate),
		"desaturate": modifier((*huekit.Color).Desaturate),
		"spin":       modifier((*huekit.Color).Spin),
		"alpha": func(a float64, v any) (*huekit.Color, error) {
			c, err := resolve(v)
			if err != nil {
				return nil, err
			}
			// c may be the palette's own colour; never mutate it.
			fresh := huekit.New(format.RGBObject(c.ToRgb()), huekit.WithRegistry(f.Registry()), huekit.WithFormat(c.Format()))
			return fresh.SetAlpha(a), nil
		},
		"mix": func(amount float64, a, b any) (*huekit.Color, error) {
			c1, err := resolve(a)
			if err != nil {
				return nil, err
			}
			c2, err := resolve(b)
			if err != nil {
				return nil, err
			}
			return huekit.Mix(c1, c2, amount), nil
		},

		"isDark": func(v any) (bool, error) {
			c, err := resolve(v)
			if err != nil {
				return false, err
			}
			return c.IsDark(), nil
		},
		"contrast": func(a, b any) (float64, error) {
			c1, err := resolve(a)
			if err != nil {
				return 0, err
			}
			c2, err := resolve(b)
			if err != nil {
				return 0, err
			}
			return huekit.Readability(c1, c2), nil
		},
		"readable": func(base any, candidates ...any) (*huekit.Color, error) {
			b, err := resolve(base)
			if err != nil {
				return nil, err
			}
			list := make([]any, 0, len(candidates))
			for _, v := range candidates {
				c, err := resolve(v)
				if err != nil {
					return nil, err
				}
				list = append(list, c)
			}
			return huekit.MostReadable(b, list, huekit.MostReadableOptions{IncludeFallbackColors: true}), nil
		},

		"path": func(v any) (string, error) {
			c, err := resolve(v)
			if err != nil {
				return "", err
			}
			path, ok := f.Palette.PathOf(c)
			if !ok {
				return "", fmt.Errorf("%s is not in the palette", c.ToHexString(false))
			}
			return palette.BlockPalette + "." + path, nil
		},
	}
}

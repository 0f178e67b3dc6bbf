package palette

import (
	"fmt"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// FunctionNames lists the functions available in palette expressions, in
// the order editors should offer them.
var FunctionNames = []string{
	"lighten", "darken", "brighten", "saturate", "desaturate", "spin",
	"greyscale", "invert", "complement",
	"mix", "set_alpha", "most_readable", "convert", "contrast",
}

// FunctionSignatures maps each function to a usage line.
var FunctionSignatures = map[string]string{
	"lighten":       "lighten(color, amount)",
	"darken":        "darken(color, amount)",
	"brighten":      "brighten(color, amount)",
	"saturate":      "saturate(color, amount)",
	"desaturate":    "desaturate(color, amount)",
	"spin":          "spin(color, degrees)",
	"greyscale":     "greyscale(color)",
	"invert":        "invert(color)",
	"complement":    "complement(color)",
	"mix":           "mix(color1, color2, amount)",
	"set_alpha":     "set_alpha(color, alpha)",
	"most_readable": "most_readable(base, [colors...])",
	"convert":       "convert(color, format)",
	"contrast":      "contrast(color1, color2)",
}

// functions builds the function table of an evaluation context. Colour
// arguments resolve through reg.
func functions(reg *format.Registry) map[string]function.Function {
	parse := func(i int, v cty.Value) (*huekit.Color, error) {
		s, err := resolveValue(v)
		if err != nil {
			return nil, function.NewArgError(i, err)
		}
		c := huekit.New(s, huekit.WithRegistry(reg))
		if !c.IsValid() {
			return nil, function.NewArgErrorf(i, "invalid color %q: %v", s, c.Err())
		}
		return c, nil
	}

	amountFunc := func(desc string, modify func(*huekit.Color, float64) *huekit.Color) function.Function {
		return function.New(&function.Spec{
			Description: desc,
			Params: []function.Parameter{
				{Name: "color", Type: cty.DynamicPseudoType},
				{Name: "amount", Type: cty.Number},
			},
			Type: function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				c, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				amount, _ := args[1].AsBigFloat().Float64()
				return cty.StringVal(encode(modify(c, amount))), nil
			},
		})
	}

	unaryFunc := func(desc string, modify func(*huekit.Color) *huekit.Color) function.Function {
		return function.New(&function.Spec{
			Description: desc,
			Params:      []function.Parameter{{Name: "color", Type: cty.DynamicPseudoType}},
			Type:        function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				c, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				return cty.StringVal(encode(modify(c))), nil
			},
		})
	}

	return map[string]function.Function{
		"lighten":    amountFunc("Raises HSL lightness by amount percent", (*huekit.Color).Lighten),
		"darken":     amountFunc("Lowers HSL lightness by amount percent", (*huekit.Color).Darken),
		"brighten":   amountFunc("Adds amount percent of 255 to every RGB channel", (*huekit.Color).Brighten),
		"saturate":   amountFunc("Raises HSL saturation by amount percent", (*huekit.Color).Saturate),
		"desaturate": amountFunc("Lowers HSL saturation by amount percent", (*huekit.Color).Desaturate),
		"spin":       amountFunc("Rotates the hue by the given degrees", (*huekit.Color).Spin),
		"greyscale":  unaryFunc("Removes all saturation", (*huekit.Color).Greyscale),
		"invert":     unaryFunc("Inverts every RGB channel", (*huekit.Color).Invert),
		"complement": unaryFunc("Rotates the hue by 180 degrees", (*huekit.Color).Complement),

		"mix": function.New(&function.Spec{
			Description: "Interpolates from color1 to color2; amount is the percentage of color2",
			Params: []function.Parameter{
				{Name: "color1", Type: cty.DynamicPseudoType},
				{Name: "color2", Type: cty.DynamicPseudoType},
				{Name: "amount", Type: cty.Number},
			},
			Type: function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				a, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				b, err := parse(1, args[1])
				if err != nil {
					return cty.NilVal, err
				}
				amount, _ := args[2].AsBigFloat().Float64()
				mixed := huekit.New(format.RGBObject(huekit.Mix(a, b, amount).ToRgb()), huekit.WithRegistry(reg), huekit.WithFormat(a.Format()))
				return cty.StringVal(encode(mixed)), nil
			},
		}),

		"set_alpha": function.New(&function.Spec{
			Description: "Replaces the alpha channel",
			Params: []function.Parameter{
				{Name: "color", Type: cty.DynamicPseudoType},
				{Name: "alpha", Type: cty.Number},
			},
			Type: function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				c, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				a, _ := args[1].AsBigFloat().Float64()
				return cty.StringVal(encode(c.SetAlpha(a))), nil
			},
		}),

		"most_readable": function.New(&function.Spec{
			Description: "Picks the candidate with the highest contrast against base, falling back to white or black",
			Params: []function.Parameter{
				{Name: "base", Type: cty.DynamicPseudoType},
				{Name: "colors", Type: cty.List(cty.String)},
			},
			Type: function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				base, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				var candidates []any
				for it := args[1].ElementIterator(); it.Next(); {
					_, v := it.Element()
					c, err := parse(1, v)
					if err != nil {
						return cty.NilVal, err
					}
					candidates = append(candidates, c)
				}
				best := huekit.MostReadable(base, candidates, huekit.MostReadableOptions{IncludeFallbackColors: true})
				return cty.StringVal(encode(best)), nil
			},
		}),

		"convert": function.New(&function.Spec{
			Description: "Prints a color in the given format",
			Params: []function.Parameter{
				{Name: "color", Type: cty.DynamicPseudoType},
				{Name: "format", Type: cty.String},
			},
			Type: function.StaticReturnType(cty.String),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				c, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				id := args[1].AsString()
				if !reg.Has(id) {
					return cty.NilVal, function.NewArgErrorf(1, "unknown format %q (known: %v)", id, reg.Formats())
				}
				return cty.StringVal(c.ToString(id)), nil
			},
		}),

		"contrast": function.New(&function.Spec{
			Description: "Returns the WCAG contrast ratio of two colors",
			Params: []function.Parameter{
				{Name: "color1", Type: cty.DynamicPseudoType},
				{Name: "color2", Type: cty.DynamicPseudoType},
			},
			Type: function.StaticReturnType(cty.Number),
			Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
				a, err := parse(0, args[0])
				if err != nil {
					return cty.NilVal, err
				}
				b, err := parse(1, args[1])
				if err != nil {
					return cty.NilVal, err
				}
				return cty.NumberFloatVal(huekit.Readability(a, b)), nil
			},
		}),
	}
}

// encode prints c in its own format, switching to hex8 when that format
// would drop a translucent alpha.
func encode(c *huekit.Color) string {
	s := c.ToString()
	if c.Alpha() < 1 && huekit.New(s, huekit.WithRegistry(c.Registry())).Alpha() != c.Alpha() {
		return c.ToString(format.Hex8)
	}
	return s
}

// resolveValue extracts a colour string from an evaluated expression: a
// string, or a group object with a color attribute.
func resolveValue(val cty.Value) (string, error) {
	if !val.IsKnown() || val.IsNull() {
		return "", fmt.Errorf("expected a color, got null")
	}
	if val.Type() == cty.String {
		return val.AsString(), nil
	}
	if val.Type().IsObjectType() {
		if val.Type().HasAttribute("color") {
			colorVal := val.GetAttr("color")
			if colorVal.Type() == cty.String {
				return colorVal.AsString(), nil
			}
		}
		return "", fmt.Errorf("object has no 'color' attribute; reference a specific child or add a color attribute")
	}
	return "", fmt.Errorf("expected string or object with color attribute, got %s", val.Type().FriendlyName())
}

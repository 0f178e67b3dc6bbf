package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsvensson/huekit/internal/units"
)

// RGBA is the canonical colour representation. R, G and B are in [0, 255]
// and may carry a fractional part; A is in [0, 1]. Every output format is
// derived from it.
type RGBA struct {
	R, G, B, A float64
}

// Display returns the colour rounded for printing: integer channels and
// alpha rounded to two decimals.
func (c RGBA) Display() RGBA {
	return RGBA{
		R: units.Round(c.R),
		G: units.Round(c.G),
		B: units.Round(c.B),
		A: units.RoundAlpha(c.A),
	}
}

// Opaque returns c with alpha forced to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// Conform bounds raw channel tokens into a canonical colour. Channels may be
// absolute ("255") or percentages ("100%"); alpha follows units.BoundAlpha.
func Conform(r, g, b string, a any) RGBA {
	return RGBA{
		R: units.Bound01(r, 255) * 255,
		G: units.Bound01(g, 255) * 255,
		B: units.Bound01(b, 255) * 255,
		A: units.BoundAlpha(a),
	}
}

// Array returns the rounded channels, with alpha scaled to [0, 255] as a
// fourth element only when the colour is not opaque.
func (c RGBA) Array() []int {
	d := c.Display()
	out := []int{int(d.R), int(d.G), int(d.B)}
	if c.A != 1 {
		out = append(out, int(units.Round(c.A*255)))
	}
	return out
}

// String returns the colour as "rgb(r, g, b)", or "rgba(r, g, b, a)" when it
// is not opaque.
func (c RGBA) String() string {
	return FunctionString("rgb", [3]string{
		units.FormatFloat(c.R),
		units.FormatFloat(c.G),
		units.FormatFloat(c.B),
	}, c.A)
}

// FunctionString renders a CSS functional notation such as "hsl(1, 2%, 3%)"
// or, when a is not 1, "hsla(1, 2%, 3%, 0.5)".
func FunctionString(name string, parts [3]string, a float64) string {
	if a == 1 {
		return fmt.Sprintf("%s(%s, %s, %s)", name, parts[0], parts[1], parts[2])
	}
	return fmt.Sprintf("%sa(%s, %s, %s, %s)", name, parts[0], parts[1], parts[2], units.FormatFloat(a))
}

// Percent returns each channel as a rounded percentage string like "50%".
func (c RGBA) Percent() [3]string {
	var out [3]string
	for i, v := range [3]float64{c.R, c.G, c.B} {
		out[i] = units.FormatFloat(units.Round(units.BoundFloat01(v, 255)*100)) + "%"
	}
	return out
}

// Hex returns the colour as six hex digits without a leading "#", dropping
// alpha. With allowShort, colours like "ff0000" collapse to "f00".
func (c RGBA) Hex(allowShort bool) string {
	return hexDigits(c.Opaque().Array(), allowShort)
}

// Hex8 is like Hex but appends an alpha byte when the colour is not opaque.
// With allowShort, "ff000099" collapses to "f009".
func (c RGBA) Hex8(allowShort bool) string {
	return hexDigits(c.Array(), allowShort)
}

func hexDigits(channels []int, allowShort bool) string {
	pairs := make([]string, len(channels))
	short := allowShort
	for i, v := range channels {
		pairs[i] = units.Pad2(strconv.FormatInt(int64(v), 16))
		if pairs[i][0] != pairs[i][1] {
			short = false
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		if short {
			b.WriteByte(p[0])
		} else {
			b.WriteString(p)
		}
	}
	return b.String()
}

// ParseHex parses 3, 4, 6 or 8 hex digits, with or without a leading "#".
// Short forms duplicate each digit, so "f00" is "ff0000". A fourth or
// eighth digit group is alpha.
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4:
		var long strings.Builder
		for i := 0; i < len(s); i++ {
			long.WriteByte(s[i])
			long.WriteByte(s[i])
		}
		s = long.String()
	case 6, 8:
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q: must be 3, 4, 6 or 8 hex digits", s)
	}

	var bytes [4]uint64
	bytes[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		bytes[i] = v
	}

	c := RGBA{
		R: float64(bytes[0]),
		G: float64(bytes[1]),
		B: float64(bytes[2]),
		A: 1,
	}
	if len(s) == 8 {
		c.A = float64(bytes[3]) / 255
	}
	return c, nil
}

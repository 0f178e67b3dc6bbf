package huekit

import "github.com/jsvensson/huekit/format"

// ToRgb returns the colour at full precision.
func (c *Color) ToRgb() format.RGBA { return c.rgba }

// ToRgbString returns "rgb(r, g, b)" or "rgba(r, g, b, a)".
func (c *Color) ToRgbString() string { return c.display().String() }

// ToRgbArray returns [r, g, b], plus alpha scaled to 0-255 when the colour
// is translucent.
func (c *Color) ToRgbArray() []int { return c.display().Array() }

// ToPercentageRgb returns the channels as rounded percentages.
func (c *Color) ToPercentageRgb() format.PercentRGBA {
	p := c.rgba.Percent()
	return format.PercentRGBA{R: p[0], G: p[1], B: p[2], A: c.rgba.A}
}

// ToPercentageRgbString returns "rgb(100%, 0%, 0%)" style notation.
func (c *Color) ToPercentageRgbString() string {
	return c.print(c.display(), format.PRGB)
}

// ToHex returns six hex digits without "#". With allowShort, three digits
// are returned where they represent the same colour.
func (c *Color) ToHex(allowShort bool) string { return c.display().Hex(allowShort) }

// ToHexString is ToHex with a leading "#".
func (c *Color) ToHexString(allowShort bool) string { return "#" + c.ToHex(allowShort) }

// ToHex8 returns eight hex digits including alpha, or six for opaque
// colours. With allowShort, four or three digits where possible.
func (c *Color) ToHex8(allowShort bool) string { return c.display().Hex8(allowShort) }

// ToHex8String is ToHex8 with a leading "#".
func (c *Color) ToHex8String(allowShort bool) string { return "#" + c.ToHex8(allowShort) }

// ToHsl returns hue in degrees and saturation and lightness in [0, 1].
func (c *Color) ToHsl() format.HSLA {
	hsl, _ := c.reg.Raw(c.rgba, format.HSL).(format.HSLA)
	return hsl
}

// ToHslString returns "hsl(h, s%, l%)" or "hsla(h, s%, l%, a)".
func (c *Color) ToHslString() string { return c.print(c.rgba, format.HSL) }

// ToHsv returns hue in degrees and saturation and value in [0, 1].
func (c *Color) ToHsv() format.HSVA {
	hsv, _ := c.reg.Raw(c.rgba, format.HSV).(format.HSVA)
	return hsv
}

// ToHsvString returns "hsv(h, s%, v%)" or "hsva(h, s%, v%, a)".
func (c *Color) ToHsvString() string { return c.print(c.rgba, format.HSV) }

// ToName returns the CSS name of the colour, or "transparent" when alpha is
// 0. It reports false for other translucent colours and colours without a
// name.
func (c *Color) ToName() (string, bool) {
	name, err := c.reg.PrintAs(c.display(), format.Name, "toName")
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// ToString prints the colour in the requested format, or in its own format
// when none is given. Sub-formats such as "hex3", "hex8" or "name" are
// accepted. A format that fails to print falls back to hex.
func (c *Color) ToString(id ...string) string {
	var requested string
	if len(id) > 0 {
		requested = id[0]
	}
	s, err := c.reg.Print(c.display(), c.format, requested)
	if err != nil {
		return c.ToHexString(false)
	}
	return s
}

// String implements fmt.Stringer with ToString.
func (c *Color) String() string { return c.ToString() }

func (c *Color) print(rgba format.RGBA, id string) string {
	s, err := c.reg.Print(rgba, c.format, id)
	if err != nil {
		return c.ToHexString(false)
	}
	return s
}

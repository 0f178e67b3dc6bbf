package color

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGBA
		wantErr bool
	}{
		{"with hash", "#eb6f92", RGBA{235, 111, 146, 1}, false},
		{"without hash", "eb6f92", RGBA{235, 111, 146, 1}, false},
		{"short", "#f00", RGBA{255, 0, 0, 1}, false},
		{"short with alpha", "369c", RGBA{0x33, 0x66, 0x99, 0.8}, false},
		{"long with alpha", "#336699cc", RGBA{0x33, 0x66, 0x99, 0.8}, false},
		{"uppercase", "#AABBCC", RGBA{170, 187, 204, 1}, false},
		{"wrong length", "#ff00f", RGBA{}, true},
		{"invalid chars", "#zzzzzz", RGBA{}, true},
		{"empty", "", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name       string
		color      RGBA
		allowShort bool
		hex, hex8  string
	}{
		{"opaque", RGBA{235, 111, 146, 1}, false, "eb6f92", "eb6f92"},
		{"zero padding", RGBA{0, 5, 10, 1}, false, "00050a", "00050a"},
		{"short allowed", RGBA{255, 0, 0, 1}, true, "f00", "f00"},
		{"short not possible", RGBA{255, 1, 0, 1}, true, "ff0100", "ff0100"},
		{"alpha", RGBA{255, 0, 0, 0.6}, false, "ff0000", "ff000099"},
		{"alpha short", RGBA{255, 0, 0, 0.6}, true, "f00", "f009"},
		{"fractional channels", RGBA{254.6, 0.2, 0, 1}, false, "ff0000", "ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(tt.allowShort); got != tt.hex {
				t.Errorf("Hex(%v) = %q, want %q", tt.allowShort, got, tt.hex)
			}
			if got := tt.color.Hex8(tt.allowShort); got != tt.hex8 {
				t.Errorf("Hex8(%v) = %q, want %q", tt.allowShort, got, tt.hex8)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := (RGBA{235, 111, 146, 1}).String(); got != "rgb(235, 111, 146)" {
		t.Errorf("String() = %q, want %q", got, "rgb(235, 111, 146)")
	}
	if got := (RGBA{255, 0, 0, 0.5}).String(); got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("String() = %q, want %q", got, "rgba(255, 0, 0, 0.5)")
	}
}

func TestPercent(t *testing.T) {
	got := RGBA{255, 127.5, 0, 1}.Percent()
	want := [3]string{"100%", "50%", "0%"}
	if got != want {
		t.Errorf("Percent() = %v, want %v", got, want)
	}
}

func TestArray(t *testing.T) {
	if got := (RGBA{1, 2, 3, 1}).Array(); len(got) != 3 {
		t.Errorf("Array() of opaque colour = %v, want three elements", got)
	}
	got := RGBA{1, 2, 3, 0.5}.Array()
	if len(got) != 4 || got[3] != 128 {
		t.Errorf("Array() = %v, want [1 2 3 128]", got)
	}
}

func TestConform(t *testing.T) {
	got := Conform("100%", "127.5", "0.1", "2")
	want := RGBA{255, 127.5, 0.1, 1}
	if math.Abs(got.R-want.R) > 1e-9 || math.Abs(got.G-want.G) > 1e-9 || math.Abs(got.B-want.B) > 1e-9 || got.A != want.A {
		t.Errorf("Conform() = %v, want %v", got, want)
	}
}

func TestDisplay(t *testing.T) {
	got := RGBA{12.4, 12.5, 254.9, 0.456}.Display()
	want := RGBA{12, 13, 255, 0.46}
	if got != want {
		t.Errorf("Display() = %v, want %v", got, want)
	}
}

func TestRGBToHSLMatchesColorful(t *testing.T) {
	samples := []RGBA{
		{255, 0, 0, 1},
		{36, 0, 194, 1},
		{235, 111, 146, 1},
		{12, 200, 90, 1},
		{128, 128, 128, 1},
	}

	for _, c := range samples {
		h, s, l := RGBToHSL(c.R/255, c.G/255, c.B/255)
		wh, ws, wl := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Hsl()
		if math.Abs(h*360-wh) > 1e-6 || math.Abs(s-ws) > 1e-6 || math.Abs(l-wl) > 1e-6 {
			t.Errorf("RGBToHSL(%v) = (%v, %v, %v), want (%v, %v, %v)", c, h*360, s, l, wh, ws, wl)
		}

		r, g, b := HSLToRGB(h, s, l)
		if math.Abs(r*255-c.R) > 1e-6 || math.Abs(g*255-c.G) > 1e-6 || math.Abs(b*255-c.B) > 1e-6 {
			t.Errorf("HSLToRGB round trip of %v = (%v, %v, %v)", c, r*255, g*255, b*255)
		}
	}
}

func TestRGBToHSVMatchesColorful(t *testing.T) {
	samples := []RGBA{
		{255, 0, 0, 1},
		{36, 0, 194, 1},
		{0, 255, 128, 1},
		{200, 100, 250, 1},
	}

	for _, c := range samples {
		h, s, v := RGBToHSV(c.R/255, c.G/255, c.B/255)
		wh, ws, wv := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Hsv()
		if math.Abs(h*360-wh) > 1e-6 || math.Abs(s-ws) > 1e-6 || math.Abs(v-wv) > 1e-6 {
			t.Errorf("RGBToHSV(%v) = (%v, %v, %v), want (%v, %v, %v)", c, h*360, s, v, wh, ws, wv)
		}

		r, g, b := HSVToRGB(h, s, v)
		if math.Abs(r*255-c.R) > 1e-6 || math.Abs(g*255-c.G) > 1e-6 || math.Abs(b*255-c.B) > 1e-6 {
			t.Errorf("HSVToRGB round trip of %v = (%v, %v, %v)", c, r*255, g*255, b*255)
		}
	}
}

func TestAchromatic(t *testing.T) {
	h, s, l := RGBToHSL(0.5, 0.5, 0.5)
	if h != 0 || s != 0 || l != 0.5 {
		t.Errorf("RGBToHSL(grey) = (%v, %v, %v), want (0, 0, 0.5)", h, s, l)
	}
	h, s, v := RGBToHSV(0, 0, 0)
	if h != 0 || s != 0 || v != 0 {
		t.Errorf("RGBToHSV(black) = (%v, %v, %v), want (0, 0, 0)", h, s, v)
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		color RGBA
		want  float64
	}{
		{RGBA{255, 255, 255, 1}, 255},
		{RGBA{0, 0, 0, 1}, 0},
		{RGBA{255, 0, 0, 1}, 76.245},
	}

	for _, tt := range tests {
		if got := Brightness(tt.color); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Brightness(%v) = %v, want %v", tt.color, got, tt.want)
		}
	}
}

func TestLuminance(t *testing.T) {
	if got := Luminance(RGBA{255, 255, 255, 1}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Luminance(white) = %v, want 1", got)
	}
	if got := Luminance(RGBA{0, 0, 0, 1}); got != 0 {
		t.Errorf("Luminance(black) = %v, want 0", got)
	}

	// Differs from the 0.04045 sRGB threshold only in the sixth decimal.
	c := RGBA{235, 111, 146, 1}
	lr, lg, lb := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.LinearRgb()
	want := 0.2126*lr + 0.7152*lg + 0.0722*lb
	if got := Luminance(c); math.Abs(got-want) > 1e-5 {
		t.Errorf("Luminance(%v) = %v, want %v", c, got, want)
	}
}

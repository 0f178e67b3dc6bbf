package huekit

import (
	"testing"

	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/units"
)

func TestModifyRed(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Color, amount float64) *Color
		want   [101]string
	}{
		{"desaturate", (*Color).Desaturate, desaturations},
		{"saturate", (*Color).Saturate, saturations},
		{"lighten", (*Color).Lighten, lightens},
		{"brighten", (*Color).Brighten, brightens},
		{"darken", (*Color).Darken, darkens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				got := tt.modify(New("red"), float64(i)).ToHex(false)
				if got != want {
					t.Errorf("%s(red, %d) = %q, want %q", tt.name, i, got, want)
				}
			}
		})
	}
}

func TestModifyKeepsReceiver(t *testing.T) {
	red := New("red", WithFormat(format.HSL))
	lighter := red.Lighten(20)

	if got := red.ToHex(false); got != "ff0000" {
		t.Errorf("receiver = %q after Lighten, want ff0000", got)
	}
	if lighter.Format() != format.HSL {
		t.Errorf("Lighten().Format() = %q, want %q", lighter.Format(), format.HSL)
	}
	if got := lighter.String(); got != "hsl(0, 100%, 70%)" {
		t.Errorf("Lighten(20) = %q, want hsl(0, 100%%, 70%%)", got)
	}

	half := New("rgba(255, 0, 0, 0.5)").Darken(10)
	if half.Alpha() != 0.5 {
		t.Errorf("Darken() alpha = %v, want 0.5", half.Alpha())
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"red", "00ffff"},
		{"#808080", "7f7f7f"},
		{"hsl(36, 10, 10)", "e3e5e8"},
	}
	for _, tt := range tests {
		if got := New(tt.input).Invert().ToHex(false); got != tt.want {
			t.Errorf("Invert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGreyscale(t *testing.T) {
	if got := New("red").Greyscale().ToHex(false); got != "808080" {
		t.Errorf("Greyscale(red) = %q, want 808080", got)
	}
}

func TestSpin(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{-1234, 206},
		{-360, 0},
		{-120, 240},
		{0, 0},
		{10, 10},
		{360, 0},
		{2345, 185},
	}
	for _, tt := range tests {
		got := units.Round(New("#f00").Spin(tt.amount).ToHsl().H)
		if got != tt.want {
			t.Errorf("Spin(%v).H = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestSpinFullTurnIsIdentity(t *testing.T) {
	for name := range Names() {
		for _, delta := range []float64{-360, 0, 360} {
			want := New(name).ToHex(false)
			if got := New(name).Spin(delta).ToHex(false); got != want {
				t.Errorf("Spin(%s, %v) = %q, want %q", name, delta, got, want)
			}
		}
	}
}

var desaturations = [101]string{
	"ff0000", "fe0101", "fc0303", "fb0404", "fa0505", "f90606", "f70808", "f60909",
	"f50a0a", "f40b0b", "f20d0d", "f10e0e", "f00f0f", "ee1111", "ed1212", "ec1313",
	"eb1414", "e91616", "e81717", "e71818", "e61919", "e41b1b", "e31c1c", "e21d1d",
	"e01f1f", "df2020", "de2121", "dd2222", "db2424", "da2525", "d92626", "d72828",
	"d62929", "d52a2a", "d42b2b", "d22d2d", "d12e2e", "d02f2f", "cf3030", "cd3232",
	"cc3333", "cb3434", "c93636", "c83737", "c73838", "c63939", "c43b3b", "c33c3c",
	"c23d3d", "c13e3e", "bf4040", "be4141", "bd4242", "bb4444", "ba4545", "b94646",
	"b84747", "b64949", "b54a4a", "b44b4b", "b34d4d", "b14e4e", "b04f4f", "af5050",
	"ad5252", "ac5353", "ab5454", "aa5555", "a85757", "a75858", "a65959", "a45b5b",
	"a35c5c", "a25d5d", "a15e5e", "9f6060", "9e6161", "9d6262", "9c6363", "9a6565",
	"996666", "986767", "966969", "956a6a", "946b6b", "936c6c", "916e6e", "906f6f",
	"8f7070", "8e7171", "8c7373", "8b7474", "8a7575", "887777", "877878", "867979",
	"857a7a", "837c7c", "827d7d", "817e7e", "808080",
}

// Red is already fully saturated.
var saturations = func() (out [101]string) {
	for i := range out {
		out[i] = "ff0000"
	}
	return out
}()

var lightens = [101]string{
	"ff0000", "ff0505", "ff0a0a", "ff0f0f", "ff1414", "ff1a1a", "ff1f1f", "ff2424",
	"ff2929", "ff2e2e", "ff3333", "ff3838", "ff3d3d", "ff4242", "ff4747", "ff4d4d",
	"ff5252", "ff5757", "ff5c5c", "ff6161", "ff6666", "ff6b6b", "ff7070", "ff7575",
	"ff7a7a", "ff8080", "ff8585", "ff8a8a", "ff8f8f", "ff9494", "ff9999", "ff9e9e",
	"ffa3a3", "ffa8a8", "ffadad", "ffb3b3", "ffb8b8", "ffbdbd", "ffc2c2", "ffc7c7",
	"ffcccc", "ffd1d1", "ffd6d6", "ffdbdb", "ffe0e0", "ffe5e5", "ffebeb", "fff0f0",
	"fff5f5", "fffafa", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
	"ffffff", "ffffff", "ffffff", "ffffff", "ffffff",
}

var brightens = [101]string{
	"ff0000", "ff0303", "ff0505", "ff0808", "ff0a0a", "ff0d0d", "ff0f0f", "ff1212",
	"ff1414", "ff1717", "ff1919", "ff1c1c", "ff1f1f", "ff2121", "ff2424", "ff2626",
	"ff2929", "ff2b2b", "ff2e2e", "ff3030", "ff3333", "ff3636", "ff3838", "ff3b3b",
	"ff3d3d", "ff4040", "ff4242", "ff4545", "ff4747", "ff4a4a", "ff4c4c", "ff4f4f",
	"ff5252", "ff5454", "ff5757", "ff5959", "ff5c5c", "ff5e5e", "ff6161", "ff6363",
	"ff6666", "ff6969", "ff6b6b", "ff6e6e", "ff7070", "ff7373", "ff7575", "ff7878",
	"ff7a7a", "ff7d7d", "ff7f7f", "ff8282", "ff8585", "ff8787", "ff8a8a", "ff8c8c",
	"ff8f8f", "ff9191", "ff9494", "ff9696", "ff9999", "ff9c9c", "ff9e9e", "ffa1a1",
	"ffa3a3", "ffa6a6", "ffa8a8", "ffabab", "ffadad", "ffb0b0", "ffb2b2", "ffb5b5",
	"ffb8b8", "ffbaba", "ffbdbd", "ffbfbf", "ffc2c2", "ffc4c4", "ffc7c7", "ffc9c9",
	"ffcccc", "ffcfcf", "ffd1d1", "ffd4d4", "ffd6d6", "ffd9d9", "ffdbdb", "ffdede",
	"ffe0e0", "ffe3e3", "ffe5e5", "ffe8e8", "ffebeb", "ffeded", "fff0f0", "fff2f2",
	"fff5f5", "fff7f7", "fffafa", "fffcfc", "ffffff",
}

var darkens = [101]string{
	"ff0000", "fa0000", "f50000", "f00000", "eb0000", "e60000", "e00000", "db0000",
	"d60000", "d10000", "cc0000", "c70000", "c20000", "bd0000", "b80000", "b30000",
	"ad0000", "a80000", "a30000", "9e0000", "990000", "940000", "8f0000", "8a0000",
	"850000", "800000", "7a0000", "750000", "700000", "6b0000", "660000", "610000",
	"5c0000", "570000", "520000", "4d0000", "470000", "420000", "3d0000", "380000",
	"330000", "2e0000", "290000", "240000", "1f0000", "190000", "140000", "0f0000",
	"0a0000", "050000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000", "000000", "000000", "000000",
	"000000", "000000", "000000", "000000", "000000",
}

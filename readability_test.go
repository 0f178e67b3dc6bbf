package huekit

import (
	"math"
	"testing"
)

func TestReadability(t *testing.T) {
	tests := []struct {
		c1, c2 string
		want   float64
	}{
		{"#000", "#000", 1},
		{"#000", "#111", 1.1121078324840545},
		{"#000", "#fff", 21},
	}
	for _, tt := range tests {
		if got := Readability(tt.c1, tt.c2); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Readability(%q, %q) = %v, want %v", tt.c1, tt.c2, got, tt.want)
		}
	}
}

func TestIsReadable(t *testing.T) {
	aaSmall := WCAG2{Level: LevelAA, Size: SizeSmall}
	aaLarge := WCAG2{Level: LevelAA, Size: SizeLarge}
	aaaSmall := WCAG2{Level: LevelAAA, Size: SizeSmall}
	aaaLarge := WCAG2{Level: LevelAAA, Size: SizeLarge}

	tests := []struct {
		a, b   string
		params WCAG2
		want   bool
	}{
		{"#000000", "#ffffff", aaSmall, true},
		{"#ff0088", "#5c1a72", WCAG2{}, false},
		{"#ff0088", "#8822aa", aaSmall, false},
		{"#ff0088", "#8822aa", aaLarge, false},
		{"#ff0088", "#8822aa", aaaSmall, false},
		{"#ff0088", "#8822aa", aaaLarge, false},

		// contrast 3.04
		{"#ff0088", "#5c1a72", aaSmall, false},
		{"#ff0088", "#5c1a72", aaLarge, true},
		{"#ff0088", "#5c1a72", aaaSmall, false},
		{"#ff0088", "#5c1a72", aaaLarge, false},

		// contrast 4.56
		{"#ff0088", "#2e0c3a", aaSmall, true},
		{"#ff0088", "#2e0c3a", aaLarge, true},
		{"#ff0088", "#2e0c3a", aaaSmall, false},
		{"#ff0088", "#2e0c3a", aaaLarge, true},

		// contrast 7.12
		{"#db91b8", "#2e0c3a", aaSmall, true},
		{"#db91b8", "#2e0c3a", aaLarge, true},
		{"#db91b8", "#2e0c3a", aaaSmall, true},
		{"#db91b8", "#2e0c3a", aaaLarge, true},

		// level and size are case-insensitive
		{"#ff0088", "#5c1a72", WCAG2{Level: "aa", Size: "LARGE"}, true},
	}

	for _, tt := range tests {
		if got := IsReadable(tt.a, tt.b, tt.params); got != tt.want {
			t.Errorf("IsReadable(%q, %q, %+v) = %v, want %v", tt.a, tt.b, tt.params, got, tt.want)
		}
	}
}

func TestMostReadable(t *testing.T) {
	fallback := func(level, size string) MostReadableOptions {
		return MostReadableOptions{
			IncludeFallbackColors: true,
			WCAG2:                 WCAG2{Level: level, Size: size},
		}
	}

	tests := []struct {
		base       string
		candidates []any
		opts       MostReadableOptions
		want       string
	}{
		{"#000", []any{"#111", "#222"}, MostReadableOptions{}, "#222222"},
		{"#f00", []any{"#d00", "#0d0"}, MostReadableOptions{}, "#00dd00"},
		{"#fff", []any{"#fff", "#fff"}, MostReadableOptions{}, "#ffffff"},
		{"#fff", []any{"#fff", "#fff"}, MostReadableOptions{IncludeFallbackColors: true}, "#000000"},
		{"#123", []any{"#124", "#125"}, MostReadableOptions{}, "#112255"},
		{"#123", []any{"#000", "#fff"}, MostReadableOptions{}, "#ffffff"},
		{"#123", []any{"#124", "#125"}, MostReadableOptions{IncludeFallbackColors: true}, "#ffffff"},
		{"#ff0088", []any{"#000", "#fff"}, MostReadableOptions{}, "#000000"},
		{"#ff0088", []any{"#2e0c3a"}, fallback(LevelAAA, SizeLarge), "#2e0c3a"},
		{"#ff0088", []any{"#2e0c3a"}, fallback(LevelAAA, SizeSmall), "#000000"},
		{"#371b2c", []any{"#000", "#fff"}, MostReadableOptions{}, "#ffffff"},
		{"#371b2c", []any{"#a9acb6"}, fallback(LevelAAA, SizeLarge), "#a9acb6"},
		{"#371b2c", []any{"#a9acb6"}, fallback(LevelAAA, SizeSmall), "#ffffff"},
	}

	for _, tt := range tests {
		got := MostReadable(tt.base, tt.candidates, tt.opts)
		if got == nil {
			t.Fatalf("MostReadable(%q, %v) = nil", tt.base, tt.candidates)
		}
		if got.ToHexString(false) != tt.want {
			t.Errorf("MostReadable(%q, %v, %+v) = %q, want %q", tt.base, tt.candidates, tt.opts, got.ToHexString(false), tt.want)
		}
	}
}

func TestMostReadableEmpty(t *testing.T) {
	if got := MostReadable("#000", nil, MostReadableOptions{}); got != nil {
		t.Errorf("MostReadable(no candidates) = %v, want nil", got)
	}
	got := MostReadable("#000", nil, MostReadableOptions{IncludeFallbackColors: true})
	if got == nil || got.ToHexString(false) != "#ffffff" {
		t.Errorf("MostReadable(no candidates, fallback) = %v, want #ffffff", got)
	}
}

package huekit

import (
	"math"
	"strings"
)

// WCAG conformance levels and text sizes for IsReadable.
const (
	LevelAA   = "AA"
	LevelAAA  = "AAA"
	SizeSmall = "small"
	SizeLarge = "large"
)

// WCAG2 selects the contrast requirement IsReadable checks. Missing or
// unknown values mean AA and small text.
type WCAG2 struct {
	Level string
	Size  string
}

func (p WCAG2) normalize() WCAG2 {
	p.Level = strings.ToUpper(p.Level)
	p.Size = strings.ToLower(p.Size)
	if p.Level != LevelAA && p.Level != LevelAAA {
		p.Level = LevelAA
	}
	if p.Size != SizeSmall && p.Size != SizeLarge {
		p.Size = SizeSmall
	}
	return p
}

// minRatio is the contrast ratio the parameters require.
func (p WCAG2) minRatio() float64 {
	p = p.normalize()
	switch {
	case p.Level == LevelAA && p.Size == SizeLarge:
		return 3
	case p.Level == LevelAAA && p.Size == SizeSmall:
		return 7
	}
	return 4.5
}

// Readability returns the WCAG 2 contrast ratio of two colours, from 1 to
// 21.
func Readability(a, b any) float64 {
	l1, l2 := New(a).Luminance(), New(b).Luminance()
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// IsReadable reports whether a and b contrast enough for text at the given
// level and size: 3 for AA large, 7 for AAA small and 4.5 otherwise.
func IsReadable(a, b any, params WCAG2) bool {
	return Readability(a, b) >= params.minRatio()
}

// MostReadableOptions configures MostReadable.
type MostReadableOptions struct {
	// IncludeFallbackColors falls back to white or black when no candidate
	// is readable.
	IncludeFallbackColors bool
	WCAG2
}

// MostReadable returns the candidate with the highest contrast against
// base. It returns nil when candidates is empty and no fallback applies.
func MostReadable(base any, candidates []any, opts MostReadableOptions) *Color {
	var best *Color
	var bestScore float64

	for _, candidate := range candidates {
		if score := Readability(base, candidate); score > bestScore {
			bestScore = score
			best = New(candidate)
		}
	}

	if best != nil && IsReadable(base, best, opts.WCAG2) || !opts.IncludeFallbackColors {
		return best
	}

	opts.IncludeFallbackColors = false
	return MostReadable(base, []any{"#fff", "#000"}, opts)
}

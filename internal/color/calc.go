package color

import "math"

// Brightness returns the perceived brightness of c in [0, 255], weighted
// 299/587/114 per channel.
func Brightness(c RGBA) float64 {
	return (c.R*299 + c.G*587 + c.B*114) / 1000
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c RGBA) float64 {
	return 0.2126*srgbToLinear(c.R/255) +
		0.7152*srgbToLinear(c.G/255) +
		0.0722*srgbToLinear(c.B/255)
}

// srgbToLinear converts a single sRGB component [0,1] to linear RGB, using
// the 0.03928 threshold from WCAG 2.
func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

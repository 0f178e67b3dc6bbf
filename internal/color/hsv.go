package color

import "math"

// RGBToHSV converts channels in [0, 1] to hue, saturation and value, all in
// [0, 1]. Black has saturation 0 and greys have hue 0.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	v = max

	d := max - min
	if max != 0 {
		s = d / max
	}
	if max == min {
		return 0, s, v
	}
	return hue(r, g, b, max, d), s, v
}

// HSVToRGB converts hue, saturation and value in [0, 1] to channels in
// [0, 1].
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(math.Mod(i, 6)) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

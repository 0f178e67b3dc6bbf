package format

// Ratio is a colour with every component in [0, 1]. It is the raw export of
// formats that do not define their own.
type Ratio struct {
	R, G, B, A float64
}

// PercentRGBA is the raw export of prgb: channels as percentage strings.
type PercentRGBA struct {
	R, G, B string
	A       float64
}

// HSLA is the raw export of hsl. H is in degrees, S and L in [0, 1].
type HSLA struct {
	H, S, L, A float64
}

// Object returns h as structured input for Resolve.
func (h HSLA) Object() Object {
	return Object{"h": h.H, "s": h.S, "l": h.L, "a": h.A}
}

// HSVA is the raw export of hsv. H is in degrees, S and V in [0, 1].
type HSVA struct {
	H, S, V, A float64
}

// Object returns h as structured input for Resolve.
func (h HSVA) Object() Object {
	return Object{"h": h.H, "s": h.S, "v": h.V, "a": h.A}
}

// RGBObject returns c as structured input for Resolve.
func RGBObject(c RGBA) Object {
	return Object{"r": c.R, "g": c.G, "b": c.B, "a": c.A}
}

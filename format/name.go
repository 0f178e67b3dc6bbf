package format

import (
	imgcolor "image/color"
	"maps"
	"slices"
	"sync"

	"golang.org/x/image/colornames"
)

// Transparent is the name of fully transparent black.
const Transparent = "transparent"

// extraNames are CSS colour names missing from colornames.
var extraNames = map[string]imgcolor.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

var names = sync.OnceValues(func() (map[string]string, map[string]string) {
	byName := make(map[string]string, len(colornames.Map)+len(extraNames))
	for _, table := range []map[string]imgcolor.RGBA{colornames.Map, extraNames} {
		for name, c := range table {
			byName[name] = RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: 1}.Hex(true)
		}
	}

	// Sorted so that of two names for one colour the alphabetically last wins.
	byHex := make(map[string]string, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		byHex[mustHex(byName[name]).Hex(false)] = name
	}
	return byName, byHex
})

func mustHex(s string) RGBA {
	c, err := parseHex(Input{Text: s})
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the CSS colour names mapped to their shortest hex digits,
// without a leading "#".
func Names() map[string]string {
	byName, _ := names()
	return maps.Clone(byName)
}

// NameOf returns the CSS name of an opaque colour.
func NameOf(c RGBA) (string, bool) {
	if c.A != 1 {
		return "", false
	}
	_, byHex := names()
	name, ok := byHex[c.Hex(false)]
	return name, ok
}

func namePlugin() Plugin {
	return Funcs{
		RecognizeFunc: func(in Input) bool {
			if in.IsObject() {
				return false
			}
			byName, _ := names()
			_, ok := byName[in.Text]
			return ok || in.Text == Transparent
		},
		ParseFunc: func(in Input) (RGBA, error) {
			if in.Text == Transparent {
				return RGBA{}, nil
			}
			byName, _ := names()
			digits, ok := byName[in.Text]
			if !ok {
				return RGBA{}, ErrNoName
			}
			return parseHex(Input{Text: digits})
		},
		RawFunc: func(c RGBA) any { return c },
		StringifyFunc: func(c RGBA, req Request) (string, error) {
			if c.A == 0 {
				return Transparent, nil
			}
			name, ok := NameOf(c)
			switch req.Wanted {
			case "toName":
				if !ok {
					return "", ErrNoName
				}
				return name, nil
			case "name":
				if ok {
					return name, nil
				}
				return hexString(c.Hex(false), req.Options), nil
			}
			if ok {
				return name, nil
			}
			return req.Printer.Print(c, Hex)
		},
	}
}

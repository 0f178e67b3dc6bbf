// Package format recognizes, parses and prints colour notations.
//
// A Registry holds an ordered list of format plugins. Resolve hands an input
// to the first plugin that recognizes it; Print renders a colour through the
// plugin for its own or a requested format. The default registry carries the
// built-in formats rgb, prgb, hex, hex8, hsl, hsv and name, in that order of
// precedence.
package format

import (
	"errors"
	"fmt"

	"github.com/jsvensson/huekit/internal/color"
)

// RGBA is the canonical colour: channels in [0, 255], alpha in [0, 1].
type RGBA = color.RGBA

// Object is structured colour input such as {"r": 255, "g": 0, "b": 0} or
// {"h": 120, "s": "50%", "l": 0.4}. Values are numbers or strings.
type Object map[string]any

// Input is what plugins recognize and parse: either trimmed, lower-cased
// text or a structured Object.
type Input struct {
	Text   string
	Object Object
}

// IsObject reports whether the input is structured.
func (in Input) IsObject() bool {
	return in.Object != nil
}

func (in Input) String() string {
	if in.IsObject() {
		return fmt.Sprint(map[string]any(in.Object))
	}
	return in.Text
}

// Request carries the per-call context of a Stringify call.
type Request struct {
	// Wanted is the explicitly requested sub-format, such as "hex3" or
	// "toName". It is empty when the colour prints in its own format.
	Wanted string
	// Options is the plugin's options snapshot at the time of the call.
	Options Options
	// Printer prints through other formats of the same registry.
	Printer Printer
}

// Printer renders a colour through a format by id.
type Printer interface {
	Print(c RGBA, id string) (string, error)
}

// Plugin recognizes, parses and prints one colour notation.
type Plugin interface {
	// Recognize reports whether the plugin claims the input. It must be
	// cheap and free of side effects.
	Recognize(in Input) bool
	// Parse converts claimed input to a colour. Malformed input yields an
	// error, never a panic.
	Parse(in Input) (RGBA, error)
	// Raw exports the colour in the plugin's own structured shape.
	Raw(c RGBA) any
	// Stringify renders the colour as text.
	Stringify(c RGBA, req Request) (string, error)
}

// Funcs assembles a Plugin from free functions. A nil RecognizeFunc never
// recognizes, a nil RawFunc exports the RGBA itself and a nil StringifyFunc
// prints rgb() notation.
type Funcs struct {
	RecognizeFunc func(in Input) bool
	ParseFunc     func(in Input) (RGBA, error)
	RawFunc       func(c RGBA) any
	StringifyFunc func(c RGBA, req Request) (string, error)
}

func (f Funcs) Recognize(in Input) bool {
	if f.RecognizeFunc == nil {
		return false
	}
	return f.RecognizeFunc(in)
}

func (f Funcs) Parse(in Input) (RGBA, error) {
	if f.ParseFunc == nil {
		return RGBA{}, errors.New("no parser")
	}
	return f.ParseFunc(in)
}

func (f Funcs) Raw(c RGBA) any {
	if f.RawFunc == nil {
		return c
	}
	return f.RawFunc(c)
}

func (f Funcs) Stringify(c RGBA, req Request) (string, error) {
	if f.StringifyFunc == nil {
		return c.Display().String(), nil
	}
	return f.StringifyFunc(c, req)
}

var (
	// ErrEmptyID is returned when registering a format without an id.
	ErrEmptyID = errors.New("format id must not be empty")
	// ErrUnrecognized means no registered format claimed the input.
	ErrUnrecognized = errors.New("unrecognized color")
	// ErrPartialMatch means a format claimed the input but could not parse it.
	ErrPartialMatch = errors.New("partial match")
	// ErrNoName means the colour has no CSS name.
	ErrNoName = errors.New("color has no name")
)

// ParseError records a partial match: Format recognized Input, but parsing
// failed with Err.
type ParseError struct {
	Format string
	Input  Input
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse %q: %v", e.Format, e.Input.String(), e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrPartialMatch, e.Err}
}

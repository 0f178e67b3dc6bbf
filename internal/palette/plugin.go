package palette

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
)

// FormatID is the id the palette format registers under.
const FormatID = BlockPalette

// Plugin returns a format that resolves "palette.<path>" references to the
// file's colours and prints a colour as the path of the first entry with
// the same value, falling back to hex. Registered on a registry, it lets
// any colour input name a palette entry.
func (f *File) Plugin() format.Plugin {
	return format.Funcs{
		RecognizeFunc: func(in format.Input) bool {
			return !in.IsObject() && strings.HasPrefix(in.Text, BlockPalette+".")
		},
		ParseFunc: func(in format.Input) (format.RGBA, error) {
			path := strings.Split(strings.TrimPrefix(in.Text, BlockPalette+"."), ".")
			node := f.Palette
			for _, name := range path {
				if node = childFold(node, name); node == nil {
					return format.RGBA{}, fmt.Errorf("no palette entry %q", in.Text)
				}
			}
			if node.Color == nil {
				return format.RGBA{}, fmt.Errorf("palette group %q has no color", in.Text)
			}
			return node.Color.ToRgb(), nil
		},
		StringifyFunc: func(c format.RGBA, req format.Request) (string, error) {
			if path, ok := f.Palette.PathOf(huekit.New(format.RGBObject(c))); ok {
				return BlockPalette + "." + path, nil
			}
			return req.Printer.Print(c, format.Hex)
		},
	}
}

// Register adds the palette format to reg with the lowest precedence.
func (f *File) Register(reg *format.Registry) error {
	_, err := reg.Register(FormatID, f.Plugin())
	return err
}

// childFold finds a child ignoring case; registry input arrives lower-cased.
func childFold(n *Node, name string) *Node {
	if n == nil {
		return nil
	}
	if c, ok := n.Child(name); ok {
		return c
	}
	for _, c := range n.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

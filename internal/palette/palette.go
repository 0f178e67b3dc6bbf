// Package palette evaluates HCL palette files.
//
// A palette file names colours in any notation huekit understands and
// derives new ones with functions:
//
//	options {
//	  alpha_format = "hex"
//	}
//
//	palette {
//	  brand  = "#ff0088"
//	  accent = lighten(palette.brand, 20)
//	  surface {
//	    color = "hsl(210, 10%, 20%)"
//	    low   = darken(palette.surface.color, 5)
//	  }
//	}
//
// Entries are evaluated in source order, so an entry can reference any
// entry above it.
package palette

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/config"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Block types of a palette file.
const (
	BlockOptions = "options"
	BlockMeta    = "meta"
	BlockPalette = "palette"
)

// BlockTypes are the top-level blocks a palette file may contain.
var BlockTypes = []string{BlockMeta, BlockOptions, BlockPalette}

func log() commonlog.Logger { return commonlog.GetLogger("huekit.palette") }

// Meta holds descriptive palette metadata.
type Meta struct {
	Name        string `hcl:"name,optional"`
	Author      string `hcl:"author,optional"`
	Description string `hcl:"description,optional"`
}

// File is an evaluated palette file. Evaluation continues past errors, so
// a File with diagnostics still holds every entry that did evaluate.
type File struct {
	Filename    string
	Meta        Meta
	Options     config.Options
	Palette     *Node
	Diagnostics hcl.Diagnostics
	// Symbols maps dotted paths such as "palette.surface.low" to the range
	// that defines them.
	Symbols map[string]hcl.Range
	// Colors lists every evaluated colour expression in source order.
	Colors []ColorLocation
	// Incomplete is set when the source does not parse; Palette is then
	// empty.
	Incomplete bool

	reg   *format.Registry
	funcs map[string]function.Function
}

// ColorLocation records an evaluated colour at a source range.
type ColorLocation struct {
	Path  string
	Range hcl.Range
	Color *huekit.Color
	// IsRef is true when the expression is a bare palette reference rather
	// than a literal or a function call.
	IsRef bool
}

// Registry returns the registry the file's colours resolve and print
// through: the default formats with the file's options applied.
func (f *File) Registry() *format.Registry { return f.reg }

// Lookup resolves a path like "palette.surface.low" or "surface.low".
func (f *File) Lookup(path string) (*huekit.Color, error) {
	path = strings.TrimPrefix(path, BlockPalette+".")
	return f.Palette.Lookup(strings.Split(path, "."))
}

// Load reads and evaluates a palette file. Any error diagnostic fails the
// load.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading palette file: %w", err)
	}

	f := Evaluate(path, src)
	if f.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("loading palette: %w", f.Diagnostics)
	}
	return f, nil
}

// Evaluate parses and evaluates src, collecting all diagnostics rather than
// stopping at the first.
func Evaluate(filename string, src []byte) *File {
	f := &File{
		Filename: filename,
		Palette:  &Node{Children: []*Node{}},
		Symbols:  make(map[string]hcl.Range),
		reg:      format.Default().Clone(),
	}

	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	f.Diagnostics = append(f.Diagnostics, diags...)
	if diags.HasErrors() {
		f.Incomplete = true
		return f
	}

	body := file.Body.(*hclsyntax.Body)
	for _, attr := range body.Attributes {
		rng := attr.SrcRange
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("%q must be inside a block; valid blocks are %s.", attr.Name, strings.Join(BlockTypes, ", ")),
			Subject:  &rng,
		})
	}

	var paletteBlock *hclsyntax.Block
	seen := make(map[string]hcl.Range)
	for _, block := range body.Blocks {
		if prev, ok := seen[block.Type]; ok {
			rng := block.DefRange()
			f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate " + block.Type + " block",
				Detail:   fmt.Sprintf("A %s block was already defined at %s.", block.Type, prev),
				Subject:  &rng,
			})
			continue
		}
		seen[block.Type] = block.DefRange()

		switch block.Type {
		case BlockOptions:
			opts, diags := config.DecodeBlock(block.Body)
			f.Diagnostics = append(f.Diagnostics, diags...)
			f.Options = opts
		case BlockMeta:
			f.Diagnostics = append(f.Diagnostics, gohcl.DecodeBody(block.Body, nil, &f.Meta)...)
		case BlockPalette:
			paletteBlock = block
		default:
			rng := block.DefRange()
			f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported block type",
				Detail:   fmt.Sprintf("Blocks of type %q are not expected here; valid blocks are %s.", block.Type, strings.Join(BlockTypes, ", ")),
				Subject:  &rng,
			})
		}
	}

	// Options come first so every colour prints with them.
	f.reg.SetDefaults(f.Options.FormatOptions()...)
	f.funcs = functions(f.reg)

	if paletteBlock == nil {
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing palette block",
			Detail:   "A palette file needs a palette block.",
			Subject: &hcl.Range{
				Filename: filename,
				Start:    hcl.Pos{Line: 1, Column: 1, Byte: 0},
				End:      hcl.Pos{Line: 1, Column: 1, Byte: 0},
			},
		})
		return f
	}

	if len(paletteBlock.Labels) > 0 {
		rng := paletteBlock.LabelRanges[0]
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected label",
			Detail:   "The palette block takes no labels.",
			Subject:  &rng,
		})
	}

	f.evaluateBody(paletteBlock.Body, f.Palette, BlockPalette)
	log().Debugf("evaluated %s: %d colors, %d diagnostics", filename, len(f.Colors), len(f.Diagnostics))
	return f
}

// item is an attribute or block in source order.
type item struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func sourceOrder(body *hclsyntax.Body) []item {
	var items []item
	for _, attr := range body.Attributes {
		items = append(items, item{pos: attr.SrcRange.Start, attr: attr})
	}
	for _, block := range body.Blocks {
		items = append(items, item{pos: block.DefRange().Start, block: block})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})
	return items
}

// evaluateBody evaluates a palette body into node. The evaluation context
// is rebuilt before every item so it sees all entries above it.
func (f *File) evaluateBody(body *hclsyntax.Body, node *Node, prefix string) {
	for _, it := range sourceOrder(body) {
		if it.block != nil {
			f.evaluateBlock(it.block, node, prefix)
			continue
		}

		attr := it.attr
		path := prefix + "." + attr.Name
		if attr.Name != "color" {
			if child, ok := node.Child(attr.Name); ok && child.IsGroup() {
				f.duplicate(attr.Name, attr.NameRange)
				continue
			}
			f.Symbols[path] = attr.SrcRange
		}

		c, ok := f.evaluateColor(attr, path)
		if !ok {
			continue
		}

		if attr.Name == "color" {
			node.Color = c
		} else {
			node.add(&Node{Name: attr.Name, Color: c})
		}
	}
}

func (f *File) evaluateBlock(block *hclsyntax.Block, parent *Node, prefix string) {
	path := prefix + "." + block.Type
	if block.Type == "color" {
		rng := block.TypeRange
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Reserved name",
			Detail:   "\"color\" holds a group's own color and cannot be a group itself.",
			Subject:  &rng,
		})
		return
	}

	if len(block.Labels) > 0 {
		rng := block.LabelRanges[0]
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected label",
			Detail:   fmt.Sprintf("Palette group %s takes no labels.", path),
			Subject:  &rng,
		})
	}
	if _, ok := parent.Child(block.Type); ok {
		f.duplicate(block.Type, block.TypeRange)
		return
	}
	f.Symbols[path] = block.DefRange()

	child := &Node{Name: block.Type, Children: []*Node{}}
	parent.add(child)
	f.evaluateBody(block.Body, child, path)
}

func (f *File) duplicate(name string, rng hcl.Range) {
	f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate palette entry",
		Detail:   fmt.Sprintf("%q is already defined in this group.", name),
		Subject:  &rng,
	})
}

// evaluateColor evaluates one attribute to a colour, recording a
// diagnostic on failure and a ColorLocation on success.
func (f *File) evaluateColor(attr *hclsyntax.Attribute, path string) (*huekit.Color, bool) {
	val, diags := attr.Expr.Value(f.evalContext())
	if diags.HasErrors() {
		f.Diagnostics = append(f.Diagnostics, diags...)
		return nil, false
	}

	exprRange := attr.Expr.Range()
	s, err := resolveValue(val)
	if err != nil {
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid palette entry",
			Detail:   fmt.Sprintf("%s: %s.", path, err),
			Subject:  &exprRange,
		})
		return nil, false
	}

	c := huekit.New(s, huekit.WithRegistry(f.reg))
	if !c.IsValid() {
		f.Diagnostics = append(f.Diagnostics, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid color",
			Detail:   fmt.Sprintf("%s: %q is not a color: %v.", path, s, c.Err()),
			Subject:  &exprRange,
		})
		return nil, false
	}

	f.Colors = append(f.Colors, ColorLocation{
		Path:  path,
		Range: exprRange,
		Color: c,
		IsRef: isReference(attr.Expr),
	})
	return c, true
}

func (f *File) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			BlockPalette: f.Palette.value(),
		},
		Functions: f.funcs,
	}
}

// isReference reports whether expr is a bare traversal such as
// palette.base.
func isReference(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr:
		return true
	}
	return false
}

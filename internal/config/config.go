// Package config reads the print options shared by palette files and the
// huekit CLI.
//
// Options live in an HCL block:
//
//	options {
//	  alpha_format   = "hex"
//	  short_hex      = true
//	  upper_case_hex = false
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/huekit/format"
)

// Options are the print options of an options block. Nil fields were not
// set and leave the registry defaults alone.
type Options struct {
	AlphaFormat  *string `hcl:"alpha_format,optional"`
	ShortHex     *bool   `hcl:"short_hex,optional"`
	UpperCaseHex *bool   `hcl:"upper_case_hex,optional"`
}

// file captures the options block and ignores everything else, so a
// palette file can double as a config file.
type file struct {
	Options *Options `hcl:"options,block"`
	Remain  hcl.Body `hcl:",remain"`
}

// FormatOptions converts the set fields to registry options.
func (o Options) FormatOptions() []format.Option {
	var opts []format.Option
	if o.AlphaFormat != nil {
		opts = append(opts, format.WithAlphaFormat(*o.AlphaFormat))
	}
	if o.ShortHex != nil {
		opts = append(opts, format.WithShortHex(*o.ShortHex))
	}
	if o.UpperCaseHex != nil {
		opts = append(opts, format.WithUpperCaseHex(*o.UpperCaseHex))
	}
	return opts
}

// Merge returns o with every field set in other overriding it.
func (o Options) Merge(other Options) Options {
	if other.AlphaFormat != nil {
		o.AlphaFormat = other.AlphaFormat
	}
	if other.ShortHex != nil {
		o.ShortHex = other.ShortHex
	}
	if other.UpperCaseHex != nil {
		o.UpperCaseHex = other.UpperCaseHex
	}
	return o
}

// DecodeBlock decodes the body of an options block. An alpha_format other
// than "rgb" or "hex" is reported against the attribute.
func DecodeBlock(body hcl.Body) (Options, hcl.Diagnostics) {
	var o Options
	diags := gohcl.DecodeBody(body, nil, &o)
	if diags.HasErrors() {
		return Options{}, diags
	}

	if o.AlphaFormat != nil && *o.AlphaFormat != format.AlphaRGB && *o.AlphaFormat != format.AlphaHex {
		d := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid alpha format",
			Detail:   fmt.Sprintf("alpha_format must be %q or %q, got %q.", format.AlphaRGB, format.AlphaHex, *o.AlphaFormat),
		}
		if sb, ok := body.(*hclsyntax.Body); ok {
			if attr, ok := sb.Attributes["alpha_format"]; ok {
				rng := attr.Expr.Range()
				d.Subject = &rng
			}
		}
		diags = append(diags, d)
		o.AlphaFormat = nil
	}
	return o, diags
}

// Decode reads the options block of an HCL document. A document without
// one yields empty Options.
func Decode(filename string, src []byte) (Options, hcl.Diagnostics) {
	f, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Options{}, diags
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return Options{}, diags
	}
	if raw.Options == nil {
		return Options{}, nil
	}

	// Re-decode through DecodeBlock for the alpha_format check.
	for _, block := range f.Body.(*hclsyntax.Body).Blocks {
		if block.Type == "options" {
			return DecodeBlock(block.Body)
		}
	}
	return *raw.Options, nil
}

// Load reads a config file.
func Load(path string) (Options, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading config file: %w", err)
	}

	o, diags := Decode(path, src)
	if diags.HasErrors() {
		return Options{}, fmt.Errorf("parsing config: %w", diags)
	}
	return o, nil
}

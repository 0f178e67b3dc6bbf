// Package hclfmt formats palette files in HCL canonical style.
package hclfmt

import (
	"bytes"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	multipleBlankLines        = regexp.MustCompile(`\n{3,}`)
	blankLineAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

	hexLiteral = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// Options control formatting beyond layout.
type Options struct {
	// UpperCaseHex writes hex colour literals in upper case instead of
	// lower case.
	UpperCaseHex bool
}

// Source formats content with hclwrite and tidies blank lines. It works on
// partial or invalid HCL, so editors can format while the user types.
func Source(content string) string {
	formatted := string(hclwrite.Format([]byte(content)))
	formatted = multipleBlankLines.ReplaceAllString(formatted, "\n\n")
	formatted = blankLineAfterOpenBrace.ReplaceAllString(formatted, "{\n")
	return blankLineBeforeCloseBrace.ReplaceAllString(formatted, "\n${1}")
}

// File formats a complete palette file. Unlike Source it refuses input
// that does not parse, and it normalizes the case of hex colour literals.
func File(filename string, src []byte, opts Options) ([]byte, hcl.Diagnostics) {
	if _, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1}); diags.HasErrors() {
		return nil, diags
	}

	f, diags := hclwrite.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	tokens := f.BuildTokens(nil)
	for _, tok := range tokens {
		if tok.Type != hclsyntax.TokenQuotedLit || !hexLiteral.Match(tok.Bytes) {
			continue
		}
		if opts.UpperCaseHex {
			tok.Bytes = append([]byte{'#'}, bytes.ToUpper(tok.Bytes[1:])...)
		} else {
			tok.Bytes = bytes.ToLower(tok.Bytes)
		}
	}

	return []byte(Source(string(tokens.Bytes()))), nil
}

// Check reports whether src is already formatted.
func Check(filename string, src []byte, opts Options) (bool, hcl.Diagnostics) {
	formatted, diags := File(filename, src, opts)
	if diags.HasErrors() {
		return false, diags
	}
	return bytes.Equal(formatted, src), nil
}

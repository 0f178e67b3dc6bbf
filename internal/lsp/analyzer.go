package lsp

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/internal/palette"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "huekit"

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

// AnalysisResult holds all information produced by analyzing a palette file.
type AnalysisResult struct {
	File        *palette.File
	Diagnostics []protocol.Diagnostic
	Palette     *palette.Node
	Symbols     map[string]protocol.Range // "palette.base", "palette.surface.low" -> definition range
	Colors      []ColorLocation
}

// ColorLocation records an evaluated color at a specific source position.
type ColorLocation struct {
	Path  string
	Range protocol.Range
	Color *huekit.Color
	IsRef bool // true if this is a palette reference (not a literal or call)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// Analyze evaluates palette content from memory and converts the result to
// LSP diagnostics, a symbol table and color locations. Evaluation collects
// ALL errors rather than stopping at the first.
func Analyze(filename, content string) *AnalysisResult {
	f := palette.Evaluate(filename, []byte(content))

	result := &AnalysisResult{
		File:    f,
		Palette: f.Palette,
		Symbols: make(map[string]protocol.Range, len(f.Symbols)),
	}

	for _, d := range f.Diagnostics {
		result.Diagnostics = append(result.Diagnostics, hclDiagToLSP(d))
	}
	for name, rng := range f.Symbols {
		result.Symbols[name] = hclRangeToLSP(rng)
	}
	for _, cl := range f.Colors {
		result.Colors = append(result.Colors, ColorLocation{
			Path:  cl.Path,
			Range: hclRangeToLSP(cl.Range),
			Color: cl.Color,
			IsRef: cl.IsRef,
		})
	}

	result.hintDuplicates()
	return result
}

// hintDuplicates adds an information diagnostic to every literal that
// repeats the value of an earlier entry, suggesting a reference instead.
func (r *AnalysisResult) hintDuplicates() {
	first := make(map[string]string)
	for _, cl := range r.Colors {
		key := cl.Color.ToHex8(false)
		prev, seen := first[key]
		if !seen {
			first[key] = cl.Path
			continue
		}
		if cl.IsRef {
			continue
		}
		r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
			Range:    cl.Range,
			Severity: &DiagInfo,
			Source:   strPtr(diagnosticSource),
			Message:  fmt.Sprintf("Same color as %s; consider referencing it", prev),
		})
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagnosticSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func strPtr(s string) *string {
	return &s
}

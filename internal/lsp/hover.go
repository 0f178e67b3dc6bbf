package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	startLine := int(r.Start.Line)
	endLine := int(r.End.Line)

	if startLine >= len(lines) {
		return ""
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	if startLine == endLine {
		line := lines[startLine]
		startChar := int(r.Start.Character)
		endChar := int(r.End.Character)
		if startChar > len(line) {
			startChar = len(line)
		}
		if endChar > len(line) {
			endChar = len(line)
		}
		return line[startChar:endChar]
	}

	// Multi-line range
	var parts []string
	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		if i == startLine {
			startChar := int(r.Start.Character)
			if startChar > len(line) {
				startChar = len(line)
			}
			parts = append(parts, line[startChar:])
		} else if i == endLine {
			endChar := int(r.End.Character)
			if endChar > len(line) {
				endChar = len(line)
			}
			parts = append(parts, line[:endChar])
		} else {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "\n")
}

// hover produces a Hover response for the given cursor position.
// It checks whether the position falls within any ColorLocation from the analysis result
// and lists the color's notations, luminance and contrast against white and black.
// References are headed by their source text, other entries by their path.
// Returns nil if no color is found at the position.
func hover(result *AnalysisResult, content string, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		title := cl.Path
		if cl.IsRef {
			title = extractText(content, cl.Range)
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: describe(title, cl.Color),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

var (
	white = huekit.New("#ffffff")
	black = huekit.New("#000000")
)

// describe renders the markdown body of a color hover.
func describe(title string, c *huekit.Color) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", title)

	hex := c.ToHexString(false)
	if c.Alpha() < 1 {
		hex = c.ToHex8String(false)
	}
	notations := []string{hex, c.ToRgbString(), c.ToHslString(), c.ToHsvString()}
	if name, ok := c.ToName(); ok {
		notations = append(notations, name)
	}
	for i, n := range notations {
		if i > 0 {
			b.WriteString(" \u00b7 ")
		}
		fmt.Fprintf(&b, "`%s`", n)
	}

	fmt.Fprintf(&b, "\n\nLuminance %.3f", c.Luminance())
	for _, bg := range []struct {
		name  string
		color *huekit.Color
	}{{"white", white}, {"black", black}} {
		ratio := huekit.Readability(c, bg.color)
		fmt.Fprintf(&b, "\n\nContrast on %s %.2f:1 %s", bg.name, ratio, wcagLevel(c, bg.color))
	}
	return b.String()
}

// wcagLevel names the best WCAG level two colors pass for normal text.
func wcagLevel(a, b *huekit.Color) string {
	switch {
	case huekit.IsReadable(a, b, huekit.WCAG2{Level: huekit.LevelAAA, Size: huekit.SizeSmall}):
		return "(AAA)"
	case huekit.IsReadable(a, b, huekit.WCAG2{Level: huekit.LevelAA, Size: huekit.SizeSmall}):
		return "(AA)"
	case huekit.IsReadable(a, b, huekit.WCAG2{Level: huekit.LevelAA, Size: huekit.SizeLarge}):
		return "(AA large)"
	}
	return "(fails)"
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := string(params.TextDocument.URI)

	result := s.docs.Result(uri)
	if result == nil {
		return nil, nil
	}

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return hover(result, content, params.Position), nil
}

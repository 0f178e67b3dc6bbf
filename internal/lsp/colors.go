package lsp

import (
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/jsvensson/huekit/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c *huekit.Color) protocol.Color {
	rgba := c.ToRgb()
	return protocol.Color{
		Red:   float32(rgba.R / 255),
		Green: float32(rgba.G / 255),
		Blue:  float32(rgba.B / 255),
		Alpha: float32(rgba.A),
	}
}

// colorFromLSP converts a picked protocol.Color back to a color.
func colorFromLSP(c protocol.Color) *huekit.Color {
	return huekit.FromRatio(format.Object{
		"r": float64(c.Red),
		"g": float64(c.Green),
		"b": float64(c.Blue),
		"a": float64(c.Alpha),
	})
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// presentationFormats are offered in this order, after the notation the
// literal already uses.
var presentationFormats = []string{format.Hex, format.Hex8, format.RGB, format.HSL, format.HSV, format.Name}

// colorPresentation offers the picked color in every notation that can
// represent it. Only quoted literals are replaced; references and function
// calls yield no presentations so they are never overwritten.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	c := colorFromLSP(params.Color)
	current := huekit.New(strings.Trim(text, "\"")).Format()

	ids := []string{current}
	for _, id := range presentationFormats {
		if id != current {
			ids = append(ids, id)
		}
	}

	var presentations []protocol.ColorPresentation
	seen := make(map[string]bool)
	for _, id := range ids {
		label, ok := present(c, id)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		presentations = append(presentations, protocol.ColorPresentation{
			Label: label,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + label + "\"",
			},
		})
	}
	return presentations
}

// present prints c in format id, or reports false when id cannot represent
// c without losing information.
func present(c *huekit.Color, id string) (string, bool) {
	translucent := c.Alpha() < 1
	switch id {
	case format.Hex:
		if translucent {
			return "", false
		}
		return c.ToHexString(false), true
	case format.Hex8:
		if !translucent {
			return "", false
		}
		return c.ToHex8String(false), true
	case format.Name:
		return c.ToName()
	case format.RGB, format.PRGB, format.HSL, format.HSV:
		return c.ToString(id), true
	}
	return "", false
}

// textDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}

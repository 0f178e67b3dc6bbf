package lsp

import (
	"strings"

	"github.com/jsvensson/huekit/internal/hclfmt"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// formatEdits returns a single whole-document edit that replaces content
// with its formatted form, or no edits when it is already formatted.
func formatEdits(content string) []protocol.TextEdit {
	formatted := hclfmt.Source(content)
	if formatted == content {
		return []protocol.TextEdit{}
	}

	lines := splitLines(content)
	last := lines[len(lines)-1]
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(len(lines) - 1), Character: uint32(len(last))},
		},
		NewText: formatted,
	}}
}

// textDocumentFormatting handles textDocument/formatting requests.
func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok || strings.TrimSpace(content) == "" {
		return nil, nil
	}
	return formatEdits(content), nil
}

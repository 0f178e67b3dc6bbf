package lsp

import (
	"slices"
	"strings"

	"github.com/jsvensson/huekit/format"
	"github.com/jsvensson/huekit/internal/palette"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot    blockContext = iota
	contextMeta                 // inside meta {}
	contextOptions              // inside options {}
	contextPalette              // inside palette {} or one of its groups
)

// optionAttributes are the valid attributes of an options block.
var optionAttributes = []string{"alpha_format", "short_hex", "upper_case_hex"}

// metaAttributes are the valid attributes of a meta block.
var metaAttributes = []string{"name", "author", "description"}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	// Check for palette path completion: look for "palette." or "palette.xxx."
	if paletteItems := tryPaletteCompletion(result, textBeforeCursor); paletteItems != nil {
		return paletteItems
	}

	ctx := determineBlockContext(lines, int(pos.Line))

	if isValuePosition(textBeforeCursor) {
		if ctx == contextOptions {
			return optionValueCompletions(textBeforeCursor)
		}
		if ctx == contextPalette {
			return valueCompletions()
		}
		return nil
	}

	switch ctx {
	case contextOptions:
		return attributeCompletions(lines, int(pos.Line), optionAttributes)
	case contextMeta:
		return attributeCompletions(lines, int(pos.Line), metaAttributes)
	case contextRoot:
		return topLevelCompletions()
	}

	return nil
}

// tryPaletteCompletion checks if the text before the cursor ends with a palette
// path prefix (e.g., "palette." or "palette.surface.") and returns completion
// items for the children at that node in the palette tree.
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	prefix := palette.BlockPalette + "."
	idx := strings.LastIndex(textBeforeCursor, prefix)
	if idx == -1 {
		return nil
	}

	pathStr := textBeforeCursor[idx+len(prefix):]

	// Walk the palette tree based on the path segments.
	// - "palette."            -> children of root (segments = nil)
	// - "palette.surface."    -> children of "surface" node
	// - "palette.sur"         -> children of root (client filters partial match)
	// - "palette.surface.lo"  -> children of "surface" (client filters "lo")
	var segments []string
	if before, ok := strings.CutSuffix(pathStr, "."); ok {
		segments = strings.Split(before, ".")
	} else if strings.Contains(pathStr, ".") {
		parts := strings.Split(pathStr, ".")
		segments = parts[:len(parts)-1]
	}

	node := result.Palette
	for _, seg := range segments {
		child, ok := node.Child(seg)
		if !ok {
			return nil
		}
		node = child
	}

	if !node.IsGroup() {
		return nil
	}

	return nodeChildrenToCompletionItems(node)
}

// nodeChildrenToCompletionItems converts a node's children into completion items,
// in source order.
func nodeChildrenToCompletionItems(node *palette.Node) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	if node.Color != nil {
		detail := node.Color.String()
		items = append(items, protocol.CompletionItem{
			Label:  "color",
			Kind:   completionKindPtr(protocol.CompletionItemKindColor),
			Detail: &detail,
		})
	}

	for _, child := range node.Children {
		item := protocol.CompletionItem{
			Label: child.Name,
			Kind:  completionKindPtr(protocol.CompletionItemKindColor),
		}

		switch {
		case child.IsGroup():
			item.Kind = completionKindPtr(protocol.CompletionItemKindModule)
			detail := "color group"
			if child.Color != nil {
				detail += " " + child.Color.String()
			}
			item.Detail = &detail
		case child.Color != nil:
			detail := child.Color.String()
			item.Detail = &detail
		}

		items = append(items, item)
	}

	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position (after an "=" sign with nothing meaningful following it).
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a palette value position:
// function snippets and a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet

	items := make([]protocol.CompletionItem, 0, len(palette.FunctionNames)+1)
	for _, name := range palette.FunctionNames {
		snippet := functionSnippet(palette.FunctionSignatures[name])
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(palette.FunctionSignatures[name]),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	paletteSnippet := palette.BlockPalette + "."
	items = append(items, protocol.CompletionItem{
		Label:      palette.BlockPalette,
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: &paletteSnippet,
	})
	return items
}

// functionSnippet turns a signature like "mix(color1, color2, amount)" into
// the snippet "mix(${1:color1}, ${2:color2}, ${3:amount})".
func functionSnippet(signature string) string {
	open := strings.Index(signature, "(")
	if open == -1 || !strings.HasSuffix(signature, ")") {
		return signature
	}

	params := strings.Split(signature[open+1:len(signature)-1], ", ")
	var b strings.Builder
	b.WriteString(signature[:open+1])
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("${")
		b.WriteString(string(rune('1' + i)))
		b.WriteString(":")
		b.WriteString(p)
		b.WriteString("}")
	}
	b.WriteString(")")
	return b.String()
}

// optionValueCompletions offers the values valid for the option being set.
func optionValueCompletions(textBeforeCursor string) []protocol.CompletionItem {
	name := strings.TrimSpace(textBeforeCursor[:strings.LastIndex(textBeforeCursor, "=")])

	var values []string
	switch name {
	case "alpha_format":
		values = []string{`"` + format.AlphaRGB + `"`, `"` + format.AlphaHex + `"`}
	case "short_hex", "upper_case_hex":
		values = []string{"true", "false"}
	default:
		return nil
	}

	kind := protocol.CompletionItemKindValue
	items := make([]protocol.CompletionItem, 0, len(values))
	for _, v := range values {
		items = append(items, protocol.CompletionItem{Label: v, Kind: &kind})
	}
	return items
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		// Process opening braces: extract the block name (first word on the line)
		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	// Groups nest arbitrarily deep inside the palette block.
	switch stack[0] {
	case palette.BlockMeta:
		return contextMeta
	case palette.BlockOptions:
		return contextOptions
	case palette.BlockPalette:
		return contextPalette
	}
	return contextRoot
}

// attributeCompletions returns attribute name completions, excluding names
// already defined in the block surrounding the cursor.
func attributeCompletions(lines []string, cursorLine int, names []string) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	// Scan backwards to find the opening brace of the current block
	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	names := slices.Clone(palette.BlockTypes)
	slices.Sort(names)

	var items []protocol.CompletionItem
	for _, name := range names {
		snippet := name + " {\n  $0\n}"
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return complete(s.docs.Result(uri), content, params.Position), nil
}

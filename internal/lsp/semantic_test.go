package lsp

import (
	"reflect"
	"testing"
)

func TestEncodeTokens_Empty(t *testing.T) {
	result := encodeTokens([]SemanticToken{})
	expected := []uint32{}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens([]) = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SingleToken(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 2, StartChar: 5, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	expected := []uint32{2, 5, 7, 0, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensSameLine(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // "palette"
		{Line: 0, StartChar: 8, Length: 4, Type: 1, Modifiers: 1}, // "base"
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=0, deltaStart=8-0=8
	expected := []uint32{0, 0, 7, 0, 0, 0, 8, 4, 1, 1}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensDifferentLines(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // line 0
		{Line: 2, StartChar: 2, Length: 4, Type: 1, Modifiers: 0}, // line 2
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=2-0=2, deltaStart=2 (new line, not relative)
	expected := []uint32{0, 0, 7, 0, 0, 2, 2, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SortsTokens(t *testing.T) {
	// Tokens in wrong order
	tokens := []SemanticToken{
		{Line: 1, StartChar: 0, Length: 4, Type: 1, Modifiers: 0},
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	// Should be sorted: line 0 first, then line 1
	expected := []uint32{0, 0, 7, 0, 0, 1, 0, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

// decodeTokens reverses the delta encoding of semanticTokensFull.
func decodeTokens(t *testing.T, data []uint32) []SemanticToken {
	t.Helper()
	if len(data)%5 != 0 {
		t.Fatalf("semantic tokens data length %d is not a multiple of 5", len(data))
	}

	var tokens []SemanticToken
	var line, char uint32
	for i := 0; i < len(data); i += 5 {
		if data[i] > 0 {
			line += data[i]
			char = data[i+1]
		} else {
			char += data[i+1]
		}
		tokens = append(tokens, SemanticToken{
			Line:      line,
			StartChar: char,
			Length:    data[i+2],
			Type:      data[i+3],
			Modifiers: data[i+4],
		})
	}
	return tokens
}

func TestSemanticTokensFull_Empty(t *testing.T) {
	result := semanticTokensFull("")
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(\"\") = %v, want empty", result)
	}
}

func TestSemanticTokensFull_ParseError(t *testing.T) {
	result := semanticTokensFull(`palette {`)
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(parse error) = %v, want empty", result)
	}
}

func TestSemanticTokensFull_SimplePalette(t *testing.T) {
	content := `palette {
  base = "#191724"
  name = "not a color"
}`
	got := decodeTokens(t, semanticTokensFull(content))

	want := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: tokenTypeIndices["keyword"]},
		{Line: 1, StartChar: 2, Length: 4, Type: tokenTypeIndices["property"], Modifiers: modDeclaration},
		{Line: 1, StartChar: 9, Length: 9, Type: tokenTypeIndices["string"], Modifiers: modColor},
		{Line: 2, StartChar: 2, Length: 4, Type: tokenTypeIndices["property"], Modifiers: modDeclaration},
		{Line: 2, StartChar: 9, Length: 13, Type: tokenTypeIndices["string"]},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %+v\nwant %+v", got, want)
	}
}

func TestSemanticTokensFull_WithPaletteReference(t *testing.T) {
	content := `palette {
  base = "#191724"
  ref  = palette.surface.low
}`
	got := decodeTokens(t, semanticTokensFull(content))

	want := []SemanticToken{
		{Line: 2, StartChar: 2, Length: 3, Type: tokenTypeIndices["property"], Modifiers: modDeclaration},
		{Line: 2, StartChar: 9, Length: 7, Type: tokenTypeIndices["namespace"]},
		{Line: 2, StartChar: 17, Length: 7, Type: tokenTypeIndices["property"]},
		{Line: 2, StartChar: 25, Length: 3, Type: tokenTypeIndices["property"]},
	}
	if len(got) != 7 {
		t.Fatalf("got %d tokens, want 7: %+v", len(got), got)
	}
	if !reflect.DeepEqual(got[3:], want) {
		t.Errorf("tokens = %+v\nwant %+v", got[3:], want)
	}
}

func TestSemanticTokensFull_WithFunction(t *testing.T) {
	content := `palette {
  text = most_readable(palette.base, ["#000", "#fff"])
  soft = lighten("red", 10)
}`
	got := decodeTokens(t, semanticTokensFull(content))

	var functions, strings, numbers int
	for _, tok := range got {
		switch tok.Type {
		case tokenTypeIndices["function"]:
			functions++
		case tokenTypeIndices["string"]:
			strings++
			if tok.Modifiers&modColor == 0 {
				t.Errorf("string at %d:%d should carry the color modifier", tok.Line, tok.StartChar)
			}
		case tokenTypeIndices["number"]:
			numbers++
		}
	}
	if functions != 2 || strings != 3 || numbers != 1 {
		t.Errorf("functions=%d strings=%d numbers=%d, want 2, 3, 1", functions, strings, numbers)
	}
}

func TestSemanticTokensFull_Options(t *testing.T) {
	content := `options {
  short_hex = true
}`
	got := decodeTokens(t, semanticTokensFull(content))
	if len(got) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(got), got)
	}
	if got[2].Type != tokenTypeIndices["variable"] || got[2].StartChar != 14 || got[2].Length != 4 {
		t.Errorf("bool token = %+v", got[2])
	}
}

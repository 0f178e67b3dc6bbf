package lsp

import (
	"sync"

	"github.com/jsvensson/huekit/internal/palette"
)

type document struct {
	content string
	result  *AnalysisResult // nil until first requested
	// lastPalette is the palette of the latest version that parsed. It
	// stands in while the document is mid-edit and does not parse.
	lastPalette *palette.Node
}

// DocumentStore holds open document contents keyed by URI, together with
// their analysis. A document is analyzed at most once per version.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*document)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &document{content: content}
}

func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := &document{content: content}
	if prev, ok := s.docs[uri]; ok {
		next.lastPalette = prev.lastPalette
		if prev.result != nil && !prev.result.File.Incomplete {
			next.lastPalette = prev.result.Palette
		}
	}
	s.docs[uri] = next
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return doc.content, true
}

// Result returns the analysis of the document at uri, analyzing it on
// first use. It returns nil for unknown documents.
func (s *DocumentStore) Result(uri string) *AnalysisResult {
	s.mu.RLock()
	doc, ok := s.docs[uri]
	if ok && doc.result != nil {
		s.mu.RUnlock()
		return doc.result
	}
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	result := Analyze(uri, doc.content)
	if result.File.Incomplete && doc.lastPalette != nil {
		result.Palette = doc.lastPalette
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The document may have changed while analyzing; cache only if not.
	if current, ok := s.docs[uri]; ok && current == doc {
		doc.result = result
	}
	return result
}

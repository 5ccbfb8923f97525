package markup

import (
	"github.com/dimanech/aria-grid/internal/domain"
	"github.com/dimanech/aria-grid/internal/ports"
)

// Source is the cell discovery adapter. A file-backed source reloads the
// document on every Discover so a rebuilt grid sees the latest content.
type Source struct {
	path string
	load LoadFunc
	doc  *Document
}

var (
	_ ports.CellDiscovery   = (*Source)(nil)
	_ ports.AttributeReader = (*Source)(nil)
)

func NewFileSource(path string, load LoadFunc) *Source {
	return &Source{path: path, load: load}
}

// NewDocumentSource serves a fixed, already loaded document.
func NewDocumentSource(doc *Document) *Source {
	return &Source{doc: doc}
}

func (s *Source) Discover() ([][]domain.Cell, error) {
	if s.load != nil {
		doc, err := s.load(s.path)
		if err != nil {
			return nil, err
		}
		s.doc = doc
	}
	return s.doc.Cells(), nil
}

// Document is the most recently discovered document; nil before the first
// Discover of a file-backed source.
func (s *Source) Document() *Document { return s.doc }

func (s *Source) Path() string { return s.path }

func (s *Source) Attribute(name string) domain.AttrState {
	return s.doc.Attribute(name)
}

func (s *Source) CellByID(id string) (domain.Cell, bool) {
	if s.doc == nil {
		return nil, false
	}
	return s.doc.CellByID(id)
}

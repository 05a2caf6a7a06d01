package stylesheet

import (
	"bytes"
	"os"
	"sync"

	"github.com/dhamidi/cssline/format"
	"github.com/dhamidi/cssline/parser"
)

// Document is one open stylesheet with its classified lines. Parsing is
// lenient, so a document always has lines; there is no per-document error
// state beyond the I/O needed to read it.
type Document struct {
	Path    string
	Content []byte
	Lines   []*parser.Line
}

// Store tracks the stylesheets currently open in an editor session. It is
// safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	files map[string]*Document
}

func NewStore() *Store {
	return &Store{
		files: make(map[string]*Document),
	}
}

// Update replaces the content for path and reparses it.
func (s *Store) Update(path string, content []byte) *Document {
	// Every byte sequence classifies into lines, so the only possible
	// error is a read failure, which a bytes.Reader never produces.
	lines, _ := format.ReadAll(bytes.NewReader(content))

	doc := &Document{
		Path:    path,
		Content: content,
		Lines:   lines,
	}

	s.mu.Lock()
	s.files[path] = doc
	s.mu.Unlock()
	return doc
}

// ScanFile loads path from disk into the store.
func (s *Store) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.Update(path, content)
	return nil
}

func (s *Store) Get(path string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[path]
}

func (s *Store) Close(path string) {
	s.mu.Lock()
	delete(s.files, path)
	s.mu.Unlock()
}

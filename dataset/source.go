package dataset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a named table does not exist in a Source.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for locating dataset tables by name.
type Source interface {
	// Open opens a table for reading.
	Open(name string) (io.ReadCloser, error)
}

// DirSource implements Source using the local file system.
type DirSource struct {
	root string
}

// NewDirSource creates a new DirSource rooted at the given directory.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Open opens a table for reading.
func (s *DirSource) Open(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.root, name))
}

// MemorySource is an in-memory Source implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemorySource struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

// NewMemorySource creates a new in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		tables: make(map[string][]byte),
	}
}

// Put stores a table under name, replacing any previous content.
func (m *MemorySource) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation
	m.tables[name] = bytes.Clone(data)
}

// Open opens a table for reading.
func (m *MemorySource) Open(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.tables[name]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

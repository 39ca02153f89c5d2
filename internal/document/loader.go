package document

import (
	"path/filepath"
	"sync"

	"github.com/cleared-dev/acjournal/internal/accounts"
)

// TableLoader supplies account equivalence tables by path.
type TableLoader interface {
	Load(path string) (accounts.Table, error)
}

type cached struct {
	table accounts.Table
	err   error
}

// FileLoader reads equivalence CSVs from disk and caches each path, errors
// included, for its lifetime. It is safe for concurrent use.
type FileLoader struct {
	base string

	mu    sync.Mutex
	cache map[string]cached
}

// NewFileLoader returns a loader resolving relative paths against base.
func NewFileLoader(base string) *FileLoader {
	return &FileLoader{base: base, cache: make(map[string]cached)}
}

// Load returns the table at path. An empty path selects the built-in table.
func (l *FileLoader) Load(path string) (accounts.Table, error) {
	if path == "" {
		return accounts.DefaultTable(), nil
	}
	if !filepath.IsAbs(path) && l.base != "" {
		path = filepath.Join(l.base, path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.cache[path]; ok {
		return c.table, c.err
	}
	table, err := accounts.LoadFile(path)
	l.cache[path] = cached{table: table, err: err}
	return table, err
}

// Package body abstracts away where response bodies come from. The server core
// never touches the filesystem itself, it only sees the Source contract.
package body

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/indigo-web/solo/http/status"
)

// Source resolves an opaque body key into the bytes to be sent as a response
// body. A failed lookup is connection-fatal for the request being served, so
// implementations should return errors instead of inventing fallback content.
// Misses wrap status.ErrNotFound
type Source interface {
	Get(key string) ([]byte, error)
}

// Map is an in-memory Source. Used in tests and examples, but works just as
// well for serving a handful of fixed pages
type Map map[string][]byte

func (m Map) Get(key string) ([]byte, error) {
	content, found := m[key]
	if !found {
		return nil, fmt.Errorf("body entry %q: %w", key, status.ErrNotFound)
	}

	return content, nil
}

// Dir serves body keys as files relative to a root directory
type Dir struct {
	root string
}

func NewDir(root string) Dir {
	return Dir{root: root}
}

func (d Dir) Get(key string) ([]byte, error) {
	content, err := os.ReadFile(filepath.Join(d.root, filepath.Clean("/"+key)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("body entry %q: %w", key, status.ErrNotFound)
	}

	return content, err
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sellit-io/sellit/internal/filex"
)

// tmpSuffix marks in-flight writes; the Watcher skips files carrying it.
const tmpSuffix = ".tmp"

// FileBackend stores each key as one file inside a data directory. This is
// the default medium: every process pointed at the same directory shares one
// store, the way browser tabs share local storage. Writes go through a
// temp-file rename so concurrent readers in other processes never observe a
// torn value.
type FileBackend struct {
	dir string
	mu  sync.RWMutex
}

// NewFileBackend creates the data directory if needed and returns a backend
// rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, fmt.Errorf("init store dir: %w", err)
	}
	return &FileBackend{dir: abs}, nil
}

// Dir returns the absolute data directory, for the Watcher.
func (f *FileBackend) Dir() string { return f.dir }

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key)
}

func (f *FileBackend) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (f *FileBackend) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp := f.path(key) + tmpSuffix
	if err := os.WriteFile(tmp, []byte(value), 0o660); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (f *FileBackend) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

func (f *FileBackend) Keys(prefix string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("list store dir: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasSuffix(name, tmpSuffix) {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, name)
		}
	}
	return keys, nil
}

func (f *FileBackend) Close() error { return nil }

package env

import (
	"fmt"
	"sync"
)

// MemoryEnv is an in-memory Env for tests. Files exist only if seeded or
// written; reads of unseeded files fail like a missing file would.
type MemoryEnv struct {
	mu    sync.RWMutex
	files map[File]string
}

// NewMemory creates a MemoryEnv seeded with the given file contents.
func NewMemory(files map[File]string) *MemoryEnv {
	seeded := make(map[File]string, len(files))
	for file, contents := range files {
		seeded[file] = contents
	}
	return &MemoryEnv{files: seeded}
}

func (e *MemoryEnv) ReadFile(file File) (string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	contents, ok := e.files[file]
	if !ok {
		return "", fmt.Errorf("appliance file %q does not exist", file)
	}
	return contents, nil
}

func (e *MemoryEnv) WriteFile(file File, contents string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.files == nil {
		e.files = make(map[File]string)
	}
	e.files[file] = contents
	return nil
}

package datatype

import (
	"sort"
	"strings"
	"sync"
)

// Backend registry
var (
	backendsMu sync.RWMutex
	backends   = make(map[string]*Backend)
)

// Register registers a backend in the global registry.
// Called by backend packages in their init() functions.
func Register(b *Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[strings.ToLower(b.Name())] = b
}

// Get returns a backend by name.
func Get(name string) (*Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	return b, ok
}

// IsRegistered reports whether a backend name is known.
func IsRegistered(name string) bool {
	_, ok := Get(name)
	return ok
}

// List returns all registered backend names (sorted).
func List() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a backend by name or an error naming the registered ones.
func Lookup(name string) (*Backend, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBackendRequired
	}
	b, ok := Get(name)
	if !ok {
		return nil, &UnknownBackendError{Name: name, Available: List()}
	}
	return b, nil
}

// NewColumn constructs a definition on the named backend.
func NewColumn(backend, typ string, opts Options) (*Column, error) {
	b, err := Lookup(backend)
	if err != nil {
		return nil, err
	}
	return b.NewColumn(typ, opts)
}

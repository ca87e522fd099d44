package loader

import (
	"context"
	"sort"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/puzpuzpuz/xsync/v3"
)

// MemoryLoader is an ILoader backed by a concurrent in-memory registry of named dictionaries.
//
// Thread-safety: All methods are thread-safe and can be called concurrently.
type MemoryLoader struct {
	dicts *xsync.MapOf[string, bundle.Dictionary]
}

// NewMemoryLoader creates an empty MemoryLoader.
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{
		dicts: xsync.NewMapOf[string, bundle.Dictionary](),
	}
}

// Put registers (or replaces) the dictionary for name. The dictionary is copied.
func (m *MemoryLoader) Put(name string, dict bundle.Dictionary) error {
	if name == "" {
		return bundle.NewError(bundle.RetCInvalidArgument, "dictionary name must not be empty")
	}
	m.dicts.Store(name, dict.Clone())
	return nil
}

// Remove unregisters the dictionary for name.
// The boolean return value indicates whether a dictionary was registered.
func (m *MemoryLoader) Remove(name string) bool {
	_, loaded := m.dicts.LoadAndDelete(name)
	return loaded
}

// Names returns the sorted names of all registered dictionaries.
func (m *MemoryLoader) Names() []string {
	names := make([]string, 0, m.dicts.Size())
	m.dicts.Range(func(name string, _ bundle.Dictionary) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Load returns a copy of the dictionary registered for name.
func (m *MemoryLoader) Load(ctx context.Context, name string) (bundle.Dictionary, error) {
	if name == "" {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "dictionary name must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dict, ok := m.dicts.Load(name)
	if !ok {
		return nil, bundle.NewError(bundle.RetCResourceNotFound, "no dictionary registered for "+name)
	}
	return dict.Clone(), nil
}

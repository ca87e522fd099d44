package bundle

import (
	"context"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Dictionary is a read-only mapping from resource key to resource value.
// Keys are case-sensitive and the iteration order of the map carries no meaning.
type Dictionary map[string]string

// Clone returns a shallow copy of the dictionary.
// Loaders hand out clones so that callers can never mutate shared state.
func (d Dictionary) Clone() Dictionary {
	c := make(Dictionary, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

// ILoader resolves an opaque dictionary identifier to a Dictionary.
//
// Implementations must return an error with code RetCResourceNotFound if no
// dictionary exists for the given name, and an error with code RetCInvalidArgument
// if the name is empty. A successful Load must always return a fresh Dictionary
// that the caller is allowed to keep.
type ILoader interface {
	// Load resolves the dictionary with the given name.
	Load(ctx context.Context, name string) (dict Dictionary, err error)
}

// LoaderFunc adapts an ordinary function to the ILoader interface.
type LoaderFunc func(ctx context.Context, name string) (Dictionary, error)

// Load calls f(ctx, name).
func (f LoaderFunc) Load(ctx context.Context, name string) (Dictionary, error) {
	return f(ctx, name)
}

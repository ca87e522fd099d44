// Package testing provides a standardized test suite for implementations of the
// bundle.ILoader interface.
//
// A loader implementation only needs to provide a LoaderFactory that builds a
// loader serving a given set of dictionaries:
//
//	func TestMemoryLoader(t *testing.T) {
//		bundletesting.RunLoaderTests(t, "MemoryLoader", func(t *testing.T, dicts map[string]bundle.Dictionary) bundle.ILoader {
//			l := loader.NewMemoryLoader()
//			for name, dict := range dicts {
//				_ = l.Put(name, dict)
//			}
//			return l
//		})
//	}
//
// The suite checks that dictionaries are returned completely and as copies,
// that keys are case-sensitive, that missing and empty names are reported with
// bundle.ErrResourceNotFound and bundle.ErrInvalidArgument, and that Load can be
// called concurrently.
package testing

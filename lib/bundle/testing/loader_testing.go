package testing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/ValentinKolb/rbundle/lib/bundle"
)

// LoaderFactory creates a new loader that serves exactly the given dictionaries
type LoaderFactory func(t *testing.T, dicts map[string]bundle.Dictionary) bundle.ILoader

// RunLoaderTests runs a comprehensive test suite for a bundle.ILoader implementation.
func RunLoaderTests(t *testing.T, name string, factory LoaderFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Load", func(t *testing.T) {
			testLoad(t, factory)
		})

		t.Run("NotFound", func(t *testing.T) {
			testNotFound(t, factory)
		})

		t.Run("EmptyName", func(t *testing.T) {
			testEmptyName(t, factory)
		})

		t.Run("ReturnsCopy", func(t *testing.T) {
			testReturnsCopy(t, factory)
		})

		t.Run("CaseSensitiveKeys", func(t *testing.T) {
			testCaseSensitiveKeys(t, factory)
		})

		t.Run("MultipleDictionaries", func(t *testing.T) {
			testMultipleDictionaries(t, factory)
		})

		t.Run("ConcurrentLoad", func(t *testing.T) {
			testConcurrentLoad(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// equal reports whether two dictionaries have the same entries
func equal(a, b bundle.Dictionary) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func fixture() bundle.Dictionary {
	return bundle.Dictionary{
		"single_0":  "A",
		"single_1":  "B",
		"single_2":  "C",
		"multi_0_0": "x",
		"multi_0_1": "y",
		"title":     "Hello",
	}
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testLoad(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": fixture()})

	dict, err := loader.Load(context.Background(), "resource")
	if err != nil {
		t.Fatalf("Expected resource to load, got %v", err)
	}
	if !equal(dict, fixture()) {
		t.Errorf("Expected %v, got %v", fixture(), dict)
	}
}

func testNotFound(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": fixture()})

	dict, err := loader.Load(context.Background(), "nonexistent")
	if err == nil {
		t.Fatalf("Expected error for nonexistent dictionary, got %v", dict)
	}
	if !errors.Is(err, bundle.ErrResourceNotFound) {
		t.Errorf("Expected ResourceNotFound, got %v", err)
	}
}

func testEmptyName(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": fixture()})

	_, err := loader.Load(context.Background(), "")
	if !errors.Is(err, bundle.ErrInvalidArgument) {
		t.Errorf("Expected InvalidArgument for empty name, got %v", err)
	}
}

func testReturnsCopy(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": fixture()})

	first, err := loader.Load(context.Background(), "resource")
	if err != nil {
		t.Fatalf("Expected resource to load, got %v", err)
	}
	first["single_0"] = "modified"
	first["added_0"] = "added"

	second, err := loader.Load(context.Background(), "resource")
	if err != nil {
		t.Fatalf("Expected resource to load, got %v", err)
	}
	if !equal(second, fixture()) {
		t.Errorf("Load should return a copy, not a reference to the stored dictionary: %v", second)
	}
}

func testCaseSensitiveKeys(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": {
		"Key_0": "upper",
		"key_0": "lower",
	}})

	dict, err := loader.Load(context.Background(), "resource")
	if err != nil {
		t.Fatalf("Expected resource to load, got %v", err)
	}
	if dict["Key_0"] != "upper" || dict["key_0"] != "lower" {
		t.Errorf("Expected case-sensitive keys, got %v", dict)
	}
}

func testMultipleDictionaries(t *testing.T, factory LoaderFactory) {
	dicts := make(map[string]bundle.Dictionary)
	for i := 0; i < 5; i++ {
		dicts[fmt.Sprintf("resource%d", i)] = bundle.Dictionary{"id_0": fmt.Sprint(i)}
	}
	loader := factory(t, dicts)

	for name, want := range dicts {
		dict, err := loader.Load(context.Background(), name)
		if err != nil {
			t.Errorf("Expected %s to load, got %v", name, err)
			continue
		}
		if !equal(dict, want) {
			t.Errorf("Expected %v for %s, got %v", want, name, dict)
		}
	}
}

func testConcurrentLoad(t *testing.T, factory LoaderFactory) {
	loader := factory(t, map[string]bundle.Dictionary{"resource": fixture()})

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				dict, err := loader.Load(context.Background(), "resource")
				if err != nil {
					errs <- err
					return
				}
				if len(dict) != len(fixture()) {
					errs <- fmt.Errorf("expected %d keys, got %d", len(fixture()), len(dict))
					return
				}
				dict["scratch"] = "x"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent load failed: %v", err)
	}
}

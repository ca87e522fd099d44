package resiter

import (
	"context"
	"errors"
	"iter"
	"slices"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/logging"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
)

// LoopBody is invoked once per matching key with the trimmed value and the parsed index tuple.
// The index slice is freshly allocated for every call and may be retained.
type LoopBody func(value string, index []int)

// Entry is a matching key together with its trimmed value
type Entry struct {
	Key   string
	Base  string
	Value string
	Index []int
}

// Options configures an Iterator
type Options struct {
	Logger  logger.ILogger // Logger for load and scan details (nil = no logging)
	Metrics *metrics.Set   // Set the iteration counters are registered in (nil = no metrics)
}

// Iterator walks the indexed keys of one named resource dictionary.
//
// The dictionary is loaded through the loader on every call, nothing is cached.
// Concurrent calls are safe if the loader is.
type Iterator struct {
	name   string
	loader bundle.ILoader
	log    logger.ILogger
	stats  *counters
}

// New creates an Iterator for the dictionary name. The name is retained as is
// and passed to the loader on every call.
func New(name string, loader bundle.ILoader, opts *Options) (*Iterator, error) {
	if name == "" {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "dictionary name must not be empty")
	}
	if loader == nil {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "loader must not be nil")
	}
	if opts == nil {
		opts = &Options{}
	}

	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &Iterator{
		name:   name,
		loader: loader,
		log:    log,
		stats:  newCounters(opts.Metrics, name),
	}, nil
}

// Name returns the dictionary name
func (it *Iterator) Name() string {
	return it.name
}

// Each invokes fn for every key of the form key_D[_D[_D]] in ascending index order.
// An empty key visits the indexed keys of every family (see EachAll).
//
// The dictionary is loaded before the first invocation; if loading fails,
// fn is never called and the error is returned.
func (it *Iterator) Each(ctx context.Context, fn LoopBody, key string) error {
	if fn == nil {
		return bundle.NewError(bundle.RetCInvalidArgument, "loop body must not be nil")
	}

	entries, err := it.Entries(ctx, key)
	if err != nil {
		return err
	}

	for _, e := range entries {
		fn(e.Value, e.Index)
	}
	return nil
}

// EachAll is Each without a key filter.
func (it *Iterator) EachAll(ctx context.Context, fn LoopBody) error {
	return it.Each(ctx, fn, "")
}

// Entries returns the matching entries in iteration order.
func (it *Iterator) Entries(ctx context.Context, key string) ([]Entry, error) {
	it.stats.each.Inc()

	dict, err := it.load(ctx)
	if err != nil {
		return nil, err
	}

	keys := make([]IndexedKey, 0, len(dict))
	skipped := 0
	for k := range dict {
		if ik, ok := ParseKey(k, key); ok {
			keys = append(keys, ik)
		} else {
			skipped++
		}
	}
	slices.SortFunc(keys, IndexedKey.Compare)

	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{
			Key:   k.Key,
			Base:  k.Base,
			Value: strings.TrimSpace(dict[k.Key]),
			Index: k.Index,
		}
	}

	it.stats.visited.Add(len(entries))
	it.stats.skipped.Add(skipped)
	it.log.Debugf("scanned %q (filter %q): %d matching, %d skipped", it.name, key, len(entries), skipped)

	return entries, nil
}

// All returns the matching entries as a range-over-func sequence of (value, index) pairs.
// Loading happens before All returns.
func (it *Iterator) All(ctx context.Context, key string) (iter.Seq2[string, []int], error) {
	entries, err := it.Entries(ctx, key)
	if err != nil {
		return nil, err
	}
	return func(yield func(string, []int) bool) {
		for _, e := range entries {
			if !yield(e.Value, e.Index) {
				return
			}
		}
	}, nil
}

// load fetches the dictionary. Errors without a bundle code are reported as
// RetCResourceNotFound, context errors are returned as is.
func (it *Iterator) load(ctx context.Context) (bundle.Dictionary, error) {
	dict, err := it.loader.Load(ctx, it.name)
	if err == nil {
		return dict, nil
	}

	it.stats.loadErrors.Inc()
	it.log.Warningf("failed to load %q: %v", it.name, err)

	var bErr *bundle.Error
	if errors.As(err, &bErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	return nil, bundle.WrapError(bundle.RetCResourceNotFound, "unable to load resource dictionary "+it.name, err)
}

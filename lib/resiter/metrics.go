package resiter

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

const (
	metricEach       = "rbundle_each_total"
	metricVisited    = "rbundle_entries_visited_total"
	metricSkipped    = "rbundle_keys_skipped_total"
	metricLoadErrors = "rbundle_load_errors_total"
)

// counter is the subset of *metrics.Counter the iterator uses
type counter interface {
	Inc()
	Add(n int)
}

type nopCounter struct{}

func (nopCounter) Inc()    {}
func (nopCounter) Add(int) {}

// counters holds the per-bundle iteration counters
type counters struct {
	each       counter
	visited    counter
	skipped    counter
	loadErrors counter
}

// newCounters registers the counters for bundle in set, or returns no-op counters if set is nil
func newCounters(set *metrics.Set, bundle string) *counters {
	if set == nil {
		return &counters{nopCounter{}, nopCounter{}, nopCounter{}, nopCounter{}}
	}
	name := func(metric string) string {
		return fmt.Sprintf("%s{bundle=%q}", metric, bundle)
	}
	return &counters{
		each:       set.GetOrCreateCounter(name(metricEach)),
		visited:    set.GetOrCreateCounter(name(metricVisited)),
		skipped:    set.GetOrCreateCounter(name(metricSkipped)),
		loadErrors: set.GetOrCreateCounter(name(metricLoadErrors)),
	}
}

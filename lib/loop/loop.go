// Package loop provides small ordered iteration helpers built on range-over-func iterators.
package loop

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Indexed pairs every element of seq with its zero-based position.
func Indexed[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// SortedMap iterates m in ascending key order. The keys are collected when
// SortedMap is called; values are read from m during iteration.
func SortedMap[Map ~map[K]V, K cmp.Ordered, V any](m Map) iter.Seq2[K, V] {
	keys := slices.Sorted(maps.Keys(m))

	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// Each calls fn for every pair of seq. It is a shorthand for callers that
// prefer a callback over a range statement.
func Each[K, V any](seq iter.Seq2[K, V], fn func(K, V)) {
	for k, v := range seq {
		fn(k, v)
	}
}

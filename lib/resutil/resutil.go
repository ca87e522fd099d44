// Package resutil collects convenience functions on top of the indexed-key iterator:
// reading a family as a slice or a matrix, and summarizing the families of a dictionary.
package resutil

import (
	"context"
	"slices"
	"strings"

	"github.com/ValentinKolb/rbundle/lib/bundle"
	"github.com/ValentinKolb/rbundle/lib/loop"
	"github.com/ValentinKolb/rbundle/lib/resiter"
)

// ----------------------------------------------------------------------------
// Arrays
// ----------------------------------------------------------------------------

// Array returns the trimmed values of the family key in iteration order.
// Keys with two or three index segments are included at their sorted position.
func Array(ctx context.Context, loader bundle.ILoader, name, key string) ([]string, error) {
	entries, err := entries(ctx, loader, name, key)
	if err != nil {
		return nil, err
	}

	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values, nil
}

// Matrix returns the two-level family key (key_i_j) as rows grouped by the first index.
// Rows are ordered by i and contain the values ordered by j. Missing rows are not
// materialized, so row positions do not necessarily equal i. Keys with one or three
// index segments are ignored.
func Matrix(ctx context.Context, loader bundle.ILoader, name, key string) ([][]string, error) {
	entries, err := entries(ctx, loader, name, key)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	last := -1
	for _, e := range entries {
		if len(e.Index) != 2 {
			continue
		}
		if e.Index[0] != last || len(rows) == 0 {
			rows = append(rows, nil)
			last = e.Index[0]
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], e.Value)
	}
	return rows, nil
}

func entries(ctx context.Context, loader bundle.ILoader, name, key string) ([]resiter.Entry, error) {
	if key == "" {
		return nil, bundle.NewError(bundle.RetCInvalidArgument, "key must not be empty")
	}
	it, err := resiter.New(name, loader, nil)
	if err != nil {
		return nil, err
	}
	return it.Entries(ctx, key)
}

// ----------------------------------------------------------------------------
// Families
// ----------------------------------------------------------------------------

// FamilyStats describes one indexed family of a dictionary
type FamilyStats struct {
	Name    string `json:"name" yaml:"name"`
	Entries int    `json:"entries" yaml:"entries"`
	Depth   int    `json:"depth" yaml:"depth"` // Largest number of index segments
	Length  Stats  `json:"value_length" yaml:"value_length"`
}

// Families groups the indexed keys of dict by base name and returns one
// FamilyStats per family, ordered by name. Value lengths are measured in
// bytes after trimming.
func Families(dict bundle.Dictionary) []FamilyStats {
	lengths := make(map[string][]float64)
	depth := make(map[string]int)

	for k, v := range dict {
		ik, ok := resiter.ParseKey(k, "")
		if !ok {
			continue
		}
		lengths[ik.Base] = append(lengths[ik.Base], float64(len(strings.TrimSpace(v))))
		depth[ik.Base] = max(depth[ik.Base], len(ik.Index))
	}

	families := make([]FamilyStats, 0, len(lengths))
	for base, ls := range loop.SortedMap(lengths) {
		slices.Sort(ls) // deterministic summation order
		families = append(families, FamilyStats{
			Name:    base,
			Entries: len(ls),
			Depth:   depth[base],
			Length:  NewStats(ls),
		})
	}
	return families
}

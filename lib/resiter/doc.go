// Package resiter iterates over the indexed keys of a resource dictionary.
//
// An indexed key is a base name followed by one to three numeric segments,
// each made of one to three decimal digits:
//
//	title_0          -> base "title", index [0]
//	cell_1_20        -> base "cell",  index [1 20]
//	grid_0_0_999     -> base "grid",  index [0 0 999]
//
// Keys are visited in ascending numeric order of their index tuple, so "title_2"
// comes before "title_10" regardless of how the dictionary stores them. Keys that
// do not match (e.g. "title", "title_abc", "title_1000") are skipped silently.
//
// Usage:
//
//	it, err := resiter.New("messages", loader, nil)
//	if err != nil { ... }
//	err = it.Each(ctx, func(value string, index []int) {
//		fmt.Println(index, value)
//	}, "title")
//
// The dictionary is loaded through the bundle.ILoader on every call. A load
// failure is returned before the loop body runs for the first time.
package resiter

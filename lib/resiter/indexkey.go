package resiter

import (
	"cmp"
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Constants
// --------------------------------------------------------------------------

const (
	separator   = '_' // Separates the base name and the index segments
	maxSegments = 3   // Maximum number of index segments (key_0_0_0)
	maxDigits   = 3   // Maximum number of digits per segment (0 <= index <= 999)
)

// --------------------------------------------------------------------------
// Indexed Keys
// --------------------------------------------------------------------------

// IndexedKey is the parsed form of a resource key such as "base_1_20".
type IndexedKey struct {
	Key   string // The raw resource key
	Base  string // The base name (e.g. "base")
	Index []int  // 1 to 3 index segments, each in [0, 999]
}

// ParseKey splits a resource key into its base name and index segments.
//
// With a non-empty filter the key must equal filter followed by one to three
// "_D" segments (D = 1 to 3 decimal digits). With an empty filter, the last one
// to three numeric segments form the index and the remainder is the base name,
// which must be non-empty and consist of ASCII letters, digits and underscores
// only ("x_1_2_3_4" is base "x_1" with index [2 3 4]).
//
// The boolean return value reports whether the key matched.
func ParseKey(key, filter string) (IndexedKey, bool) {
	var (
		base  string
		index []int
		ok    bool
	)

	if filter != "" {
		rest, found := strings.CutPrefix(key, filter)
		if !found || len(rest) < 2 || rest[0] != separator {
			return IndexedKey{}, false
		}
		if index, ok = parseSegments(strings.Split(rest[1:], string(separator))); !ok {
			return IndexedKey{}, false
		}
		base = filter
	} else {
		parts := strings.Split(key, string(separator))

		// up to maxSegments trailing numeric segments form the index, the rest is the base
		n := 0
		for n < maxSegments && n < len(parts)-1 && isIndexSegment(parts[len(parts)-1-n]) {
			n++
		}
		if n == 0 {
			return IndexedKey{}, false
		}

		base = strings.Join(parts[:len(parts)-n], string(separator))
		if !isBaseName(base) {
			return IndexedKey{}, false
		}
		if index, ok = parseSegments(parts[len(parts)-n:]); !ok {
			return IndexedKey{}, false
		}
	}

	return IndexedKey{Key: key, Base: base, Index: index}, true
}

// SortKey returns the composite sort key: the base name followed by every
// index segment zero-padded to three digits ("base_7_42" -> "base_007_042").
func (k IndexedKey) SortKey() string {
	var sb strings.Builder
	sb.WriteString(k.Base)
	for _, i := range k.Index {
		sb.WriteByte(separator)
		sb.WriteString(fmt.Sprintf("%03d", i))
	}
	return sb.String()
}

// Compare orders keys by their composite sort key (see SortKey), then by the
// raw key, so keys with equal numeric tuples ("k_7", "k_007") stay distinct.
// Within one family this is ascending numeric order of the index tuple, a
// shorter tuple before a longer one with the same prefix. It returns -1, 0 or +1.
func (k IndexedKey) Compare(other IndexedKey) int {
	if c := strings.Compare(k.SortKey(), other.SortKey()); c != 0 {
		return c
	}
	return cmp.Compare(k.Key, other.Key)
}

// --------------------------------------------------------------------------
// Tokenizer Helpers
// --------------------------------------------------------------------------

// parseSegments converts 1 to maxSegments digit segments to integers
func parseSegments(segments []string) ([]int, bool) {
	if len(segments) == 0 || len(segments) > maxSegments {
		return nil, false
	}
	index := make([]int, len(segments))
	for i, s := range segments {
		if !isIndexSegment(s) {
			return nil, false
		}
		n := 0
		for j := 0; j < len(s); j++ {
			n = n*10 + int(s[j]-'0')
		}
		index[i] = n
	}
	return index, true
}

// isIndexSegment reports whether s consists of 1 to maxDigits decimal digits
func isIndexSegment(s string) bool {
	if len(s) == 0 || len(s) > maxDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isBaseName reports whether s is a non-empty run of [A-Za-z0-9_]
func isBaseName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == separator:
		default:
			return false
		}
	}
	return true
}

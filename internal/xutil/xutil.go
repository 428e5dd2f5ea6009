// Package xutil collects small generic helpers shared across the engine
// packages: sorted-map extraction and logged file close.
package xutil

import (
	"log/slog"
	"os"
	"sort"
)

// CountPair is a key/count pair extracted from a map[K]uint32.
type CountPair[K comparable] struct {
	Key   K
	Count uint32
}

// SortedByCount returns the entries of m sorted descending by count, with
// ties broken by the provided tiebreak comparator (called only when counts
// are equal).
func SortedByCount[K comparable](m map[K]uint32, less func(a, b K) bool) []CountPair[K] {
	pairs := make([]CountPair[K], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, CountPair[K]{k, v})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		if less != nil {
			return less(pairs[i].Key, pairs[j].Key)
		}
		return false
	})

	return pairs
}

// CloseFile closes f and logs any error at debug level; callers treat close
// failures as non-fatal since the read/write they cared about already
// completed or failed on its own terms.
func CloseFile(f *os.File) {
	if err := f.Close(); err != nil {
		slog.Debug("close file failed", "path", f.Name(), "error", err)
	}
}

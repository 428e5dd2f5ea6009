package scoring

import "github.com/rbscholtus/swipetype/internal/normalize"

// EditDistance computes the bounded Levenshtein distance (insert, delete,
// substitute — no transposition) between a and b, case-insensitively. The
// computation early-exits as soon as every entry in the current row
// exceeds limit, and a length-gap greater than limit short-circuits before
// any row is computed; both cases return limit+1 rather than the true
// distance, per the scorer's "distance is a penalty, not a measurement"
// contract — callers only need to know the candidate missed the bound.
//
// Grounded on the early-exit, length-gap-short-circuit discipline of
// damerauLevenshtein in the reference corpus's symspell implementation;
// restricted here to the classical (non-transposing) variant per the
// candidate generator's contract, since swipe key sequences do not exhibit
// the adjacent-character-swap error pattern that spelling correction does.
func EditDistance(a, b string, limit int) int {
	a, b = normalize.FoldCase(a), normalize.FoldCase(b)
	la, lb := len(a), len(b)

	if abs(la-lb) > limit {
		return limit + 1
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}

	if prev[lb] > limit {
		return limit + 1
	}
	return prev[lb]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package scoring

import "github.com/rbscholtus/swipetype/internal/layout"

// SpatialScore walks keySeq and word with the length-aligning greedy cursor
// rule: while both indices remain in range, advance whichever side has more
// characters left (advance both on a tie), summing centroid distances
// between the matched key pairs via l. The sum is averaged over the number
// of matched pairs and mapped into [-1, 1] via
// max(-1, 1 - avg/cfg.SpatialNormDistance). If no pair could be matched
// (e.g. a letter has no corresponding key in l), SpatialScore returns 0.
func SpatialScore(keySeq []string, word string, l *layout.Layout, cfg Config) float64 {
	i, j := 0, 0
	li, lj := len(keySeq), len(word)

	var sum float64
	matched := 0

	for i < li && j < lj {
		ka, okA := l.Key(keySeq[i])
		kb, okB := l.Key(word[j : j+1])
		if okA && okB {
			sum += layout.Dist(ka.Centroid, kb.Centroid)
			matched++
		}

		remA := li - i
		remB := lj - j
		switch {
		case remA > remB:
			i++
		case remB > remA:
			j++
		default:
			i++
			j++
		}
	}

	if matched == 0 {
		return 0
	}

	avg := sum / float64(matched)
	score := 1 - avg/cfg.SpatialNormDistance
	if score < -1 {
		return -1
	}
	return score
}

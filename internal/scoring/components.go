package scoring

import (
	"math"

	"github.com/rbscholtus/swipetype/internal/normalize"
)

// BigramOverlap returns the set-intersection cardinality of the distinct
// letter-letter bigrams of keySeq and of candidate: how many distinct
// consecutive-letter pairs appear in both, each counted once regardless of
// how many times it repeats in either string.
func BigramOverlap(keySeq []string, candidate string) int {
	if len(keySeq) < 2 || len(candidate) < 2 {
		return 0
	}

	seqBigrams := make(map[[2]byte]struct{}, len(keySeq)-1)
	for i := 0; i+1 < len(keySeq); i++ {
		if len(keySeq[i]) != 1 || len(keySeq[i+1]) != 1 {
			continue
		}
		seqBigrams[[2]byte{keySeq[i][0], keySeq[i+1][0]}] = struct{}{}
	}

	candBigrams := make(map[[2]byte]struct{})
	lower := normalize.FoldCase(candidate)
	for i := 0; i+1 < len(lower); i++ {
		candBigrams[[2]byte{lower[i], lower[i+1]}] = struct{}{}
	}

	count := 0
	for bg := range seqBigrams {
		if _, ok := candBigrams[bg]; ok {
			count++
		}
	}
	return count
}

// FrequencyScore maps a word's frequency value to a bounded, log-scaled
// score. The value is treated as a rank: lower numbers (more common words)
// score higher, and the score approaches 0 as the number grows (spec §4.4).
func FrequencyScore(freq uint32) float64 {
	return math.Log(1 + 1000.0/(float64(freq)+1))
}

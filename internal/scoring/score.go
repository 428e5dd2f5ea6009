package scoring

import "github.com/rbscholtus/swipetype/internal/layout"

// Result holds the composite score and the diagnostic components that fed
// it, so callers (the CLI's swipe table, tests) can inspect why a candidate
// ranked where it did.
type Result struct {
	Score     float64
	EditDist  int
	BigramOv  int
	FreqScore float64
	SpatialSc float64
}

// Score computes the composite score of candidate word against the mapped
// key sequence keySeq, given its raw corpus frequency and the layout used
// to derive spatial distances (spec §4.4).
func Score(keySeq []string, word string, freq uint32, l *layout.Layout, cfg Config) Result {
	ed := EditDistance(joinKeys(keySeq), word, cfg.EditDistanceLimit)
	overlap := BigramOverlap(keySeq, word)
	freqScore := FrequencyScore(freq)
	spatial := SpatialScore(keySeq, word, l, cfg)

	composite := cfg.EditDistanceWeight*float64(ed) +
		cfg.BigramOverlapWeight*float64(overlap) +
		cfg.FrequencyWeight*freqScore +
		cfg.SpatialWeight*spatial

	return Result{
		Score:     composite,
		EditDist:  ed,
		BigramOv:  overlap,
		FreqScore: freqScore,
		SpatialSc: spatial,
	}
}

// joinKeys concatenates a key sequence into the plain string EditDistance
// expects. Every element is expected to be exactly one byte (alphabetic
// mapped keys per spec §3); multi-byte symbolic ids never appear in a
// mapped sequence.
func joinKeys(keySeq []string) string {
	b := make([]byte, 0, len(keySeq))
	for _, k := range keySeq {
		if len(k) == 1 {
			b = append(b, k[0])
		}
	}
	return string(b)
}

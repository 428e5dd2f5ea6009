package scoring

import (
	"testing"

	"github.com/rbscholtus/swipetype/internal/layout"
)

func TestScoreExactMatchRanksHigh(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()

	exact := Score([]string{"t", "h", "e"}, "the", 1, l, cfg)
	if exact.EditDist != 0 {
		t.Errorf("EditDist = %d, want 0 for exact match", exact.EditDist)
	}

	off := Score([]string{"t", "h", "e"}, "zoo", 1, l, cfg)
	if exact.Score <= off.Score {
		t.Errorf("exact match score %v should exceed unrelated word score %v", exact.Score, off.Score)
	}
}

func TestScoreNegativeWeightPenalizesDistance(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()

	near := Score([]string{"c", "a", "t"}, "cat", 1000, l, cfg)
	far := Score([]string{"c", "a", "t"}, "catastrophe", 1000, l, cfg)

	if near.Score <= far.Score {
		t.Errorf("closer word should score higher: near=%v far=%v", near.Score, far.Score)
	}
}

func BenchmarkScore(b *testing.B) {
	l := layout.Default()
	cfg := DefaultConfig()
	seq := []string{"t", "h", "e", "r", "e"}

	for b.Loop() {
		Score(seq, "there", 500, l, cfg)
	}
}

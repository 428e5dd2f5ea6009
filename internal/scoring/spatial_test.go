package scoring

import (
	"testing"

	"github.com/rbscholtus/swipetype/internal/layout"
)

func TestSpatialScoreIdenticalWord(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()

	seq := []string{"t", "h", "e"}
	got := SpatialScore(seq, "the", l, cfg)
	if got != 1 {
		t.Errorf("SpatialScore(the, the) = %v, want 1 (zero centroid distance)", got)
	}
}

func TestSpatialScoreUnknownKeys(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()

	got := SpatialScore([]string{"1"}, "2", l, cfg)
	if got != 0 {
		t.Errorf("SpatialScore with no matchable keys = %v, want 0", got)
	}
}

func TestSpatialScoreClampedAtNegativeOne(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()
	cfg.SpatialNormDistance = 1 // force a huge negative ratio

	got := SpatialScore([]string{"q"}, "m", l, cfg)
	if got != -1 {
		t.Errorf("SpatialScore = %v, want clamped to -1", got)
	}
}

func TestSpatialScoreLengthAligningCursor(t *testing.T) {
	l := layout.Default()
	cfg := DefaultConfig()

	// Longer candidate than key sequence still produces a score in range.
	got := SpatialScore([]string{"t", "h"}, "there", l, cfg)
	if got > 1 || got < -1 {
		t.Errorf("SpatialScore out of [-1,1] range: %v", got)
	}
}

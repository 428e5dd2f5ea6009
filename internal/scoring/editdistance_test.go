package scoring

import "testing"

func TestEditDistanceIdentical(t *testing.T) {
	if d := EditDistance("the", "the", 4); d != 0 {
		t.Errorf("EditDistance(the, the) = %d, want 0", d)
	}
}

func TestEditDistanceCaseInsensitive(t *testing.T) {
	if d := EditDistance("THE", "the", 4); d != 0 {
		t.Errorf("EditDistance(THE, the) = %d, want 0", d)
	}
}

func TestEditDistanceOneSub(t *testing.T) {
	if d := EditDistance("cat", "car", 4); d != 1 {
		t.Errorf("EditDistance(cat, car) = %d, want 1", d)
	}
}

func TestEditDistanceLengthGapShortCircuit(t *testing.T) {
	d := EditDistance("a", "abcdefgh", 3)
	if d != 4 {
		t.Errorf("EditDistance with length gap > limit = %d, want limit+1 = 4", d)
	}
}

func TestEditDistanceExceedsLimit(t *testing.T) {
	d := EditDistance("kitten", "sitting", 2)
	if d != 3 {
		t.Errorf("EditDistance(kitten, sitting, limit=2) = %d, want limit+1 = 3", d)
	}
}

func TestEditDistanceEmpty(t *testing.T) {
	if d := EditDistance("", "abc", 4); d != 3 {
		t.Errorf("EditDistance('', abc) = %d, want 3", d)
	}
	if d := EditDistance("abc", "", 4); d != 3 {
		t.Errorf("EditDistance(abc, '') = %d, want 3", d)
	}
}

func BenchmarkEditDistance(b *testing.B) {
	for b.Loop() {
		EditDistance("swiping", "swipe", 4)
	}
}

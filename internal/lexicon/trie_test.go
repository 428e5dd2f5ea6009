package lexicon

import "testing"

func TestTrieInsertContains(t *testing.T) {
	tr := NewTrie()
	tr.Insert("the", 1000)
	tr.Insert("there", 500)

	if !tr.Contains("the") {
		t.Error("the should be contained")
	}
	if !tr.Contains("there") {
		t.Error("there should be contained")
	}
	if tr.Contains("th") {
		t.Error("th is a prefix, not a word")
	}
	if tr.Contains("thereby") {
		t.Error("thereby was never inserted")
	}
}

func TestTrieHasPrefix(t *testing.T) {
	tr := NewTrie()
	tr.Insert("swipe", 1)

	if !tr.HasPrefix("sw") {
		t.Error("sw should be a valid prefix")
	}
	if !tr.HasPrefix("swipe") {
		t.Error("swipe should be its own prefix")
	}
	if tr.HasPrefix("swz") {
		t.Error("swz is not a prefix of any inserted word")
	}
}

func TestTrieApostrophe(t *testing.T) {
	tr := NewTrie()
	tr.Insert("don't", 10)

	if !tr.Contains("don't") {
		t.Error("don't should be contained")
	}
}

func TestTrieFrequencyOverwrite(t *testing.T) {
	tr := NewTrie()
	tr.Insert("cat", 1)
	tr.Insert("cat", 99)

	f, ok := tr.Frequency("cat")
	if !ok || f != 99 {
		t.Errorf("Frequency() = %v, %v; want 99, true", f, ok)
	}
}

func TestTrieRejectsInvalidByte(t *testing.T) {
	tr := NewTrie()
	tr.Insert("ca7", 1)

	if tr.Contains("ca7") {
		t.Error("word with a digit should not be inserted")
	}
}

package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInsertAndShortlist(t *testing.T) {
	lx := New()
	lx.Insert("the", 1000)
	lx.Insert("there", 500)
	lx.Insert("that", 800)
	lx.Insert("tie", 10)

	got := lx.Shortlist([]string{"t", "h", "e"})
	if len(got) == 0 {
		t.Fatal("expected at least one shortlisted entry for t..e")
	}
	found := false
	for _, idx := range got {
		if lx.Entry(idx).Word == "the" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'the' in shortlist for t..e")
	}
}

func TestShortlistLengthTolerance(t *testing.T) {
	lx := New()
	lx.Insert("tie", 10)          // length 3
	lx.Insert("tangerine", 10)    // length 9, first/last t/e

	got := lx.Shortlist([]string{"t", "x", "e"}) // target length 3
	for _, idx := range got {
		if lx.Entry(idx).Word == "tangerine" {
			t.Error("tangerine (length 9) should not match a length-3 key sequence within tolerance 2")
		}
	}
}

func TestShortlistEmpty(t *testing.T) {
	lx := New()
	lx.Insert("the", 1000)

	if got := lx.Shortlist(nil); got != nil {
		t.Errorf("Shortlist(nil) = %v, want nil", got)
	}
}

func TestApostropheExcludedFromBuckets(t *testing.T) {
	lx := New()
	lx.Insert("don't", 10)

	if !lx.Trie.Contains("don't") {
		t.Error("don't should still be in the trie")
	}
	if lx.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (apostrophe-bearing words excluded from buckets)", lx.Len())
	}
}

func TestInsertDedup(t *testing.T) {
	lx := New()
	lx.Insert("cat", 1)
	lx.Insert("cat", 50)

	if lx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after re-inserting the same word", lx.Len())
	}
	got := lx.Shortlist([]string{"c", "a", "t"})
	if len(got) != 1 {
		t.Fatalf("Shortlist() returned %d entries, want 1", len(got))
	}
	if lx.Entry(got[0]).Freq != 50 {
		t.Errorf("Freq = %d, want updated value 50", lx.Entry(got[0]).Freq)
	}
}

func TestLoadWordsAndFrequencies(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	freqPath := filepath.Join(dir, "freq.txt")

	if err := os.WriteFile(wordsPath, []byte("the\nthere\ninvalid1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(freqPath, []byte("the\t50000\nghost\t10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lx := New()
	if err := lx.LoadWords(wordsPath); err != nil {
		t.Fatalf("LoadWords() error = %v", err)
	}
	if err := lx.LoadFrequencies(freqPath); err != nil {
		t.Fatalf("LoadFrequencies() error = %v", err)
	}

	if lx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (invalid1 rejected)", lx.Len())
	}

	// "the" (length 3) and "there" (length 5) are both within the length
	// tolerance of a 3-key sequence.
	got := lx.Shortlist([]string{"t", "h", "e"})
	if len(got) != 2 {
		t.Fatalf("Shortlist() returned %d entries, want 2 (the, there)", len(got))
	}
	var theFreq uint32
	for _, idx := range got {
		if lx.Entry(idx).Word == "the" {
			theFreq = lx.Entry(idx).Freq
		}
	}
	if theFreq != 50000 {
		t.Errorf("expected 'the' with freq 50000, got %d", theFreq)
	}

	if lx.Trie.Contains("ghost") {
		t.Error("ghost was never in the word list; frequency file must not introduce new entries")
	}
}

func TestInsertFoldsCaseInsteadOfRejecting(t *testing.T) {
	lx := New()
	lx.Insert("Hello", 10)

	if !lx.Trie.Contains("hello") {
		t.Error("expected 'Hello' to be folded and inserted as 'hello'")
	}
	got := lx.Shortlist([]string{"h", "e", "l", "l", "o"})
	found := false
	for _, idx := range got {
		if lx.Entry(idx).Word == "hello" {
			found = true
		}
	}
	if !found {
		t.Error("expected folded 'hello' to be shortlistable")
	}
}

func TestLoadWordsFoldsMixedCase(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte("Hello\nWORLD\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lx := New()
	if err := lx.LoadWords(wordsPath); err != nil {
		t.Fatalf("LoadWords() error = %v", err)
	}
	if lx.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (mixed-case words folded and accepted, not rejected)", lx.Len())
	}
	if !lx.Trie.Contains("hello") || !lx.Trie.Contains("world") {
		t.Error("expected case-folded forms in the trie")
	}
}

func TestLoadWordsMissingFile(t *testing.T) {
	lx := New()
	err := lx.LoadWords(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStats(t *testing.T) {
	lx := New()
	lx.Insert("the", 1)
	lx.Insert("that", 1)

	s := lx.Stats()
	if s.EntryCount != 2 {
		t.Errorf("EntryCount = %d, want 2", s.EntryCount)
	}
	wantAvg := (3.0 + 4.0) / 2
	if s.AvgWordLength != wantAvg {
		t.Errorf("AvgWordLength = %v, want %v", s.AvgWordLength, wantAvg)
	}
	// "the" lands in bucket t/e; "that" lands in bucket t/t.
	if s.BucketOccupancy['t'-'a']['e'-'a'] != 1 {
		t.Errorf("bucket[t][e] = %d, want 1", s.BucketOccupancy['t'-'a']['e'-'a'])
	}
}

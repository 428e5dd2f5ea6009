// Package lexicon loads a word list and frequency table into a queryable
// dictionary: an arena-backed trie for prefix/containment checks plus a
// 26x26 first/last-letter bucket index for fast candidate shortlisting.
//
// The loaders follow the teacher's line-oriented file-reading idiom
// (internal/corpus/corpus.go's loadFromFile: bufio.Scanner over os.Open,
// one record per line, malformed lines skipped rather than fatal). Every
// word is case-folded through internal/normalize before validation, the
// same helper the scorer and the learning store use.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rbscholtus/swipetype/internal/normalize"
)

// LoadError reports a failure to load a word list or frequency file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load lexicon %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DefaultFrequency is assigned to a word present in the word list but absent
// from the frequency table (spec §4.2).
const DefaultFrequency = 1000

// Entry is one dictionary word with its precomputed shortlist keys.
type Entry struct {
	Word        string
	Freq        uint32
	Length      int
	FirstLetter byte
	LastLetter  byte
}

// Lexicon is a loaded dictionary: the trie for exact/prefix lookups, the
// flat entry list for scoring, and the bucket index for shortlisting.
type Lexicon struct {
	Trie     *Trie
	entries  []Entry
	entryIdx map[string]int // word -> index into entries, for Insert dedup
	buckets  [26][26][]int  // index into entries, by [firstLetter-'a'][lastLetter-'a']
}

// New returns an empty Lexicon ready for Insert calls.
func New() *Lexicon {
	return &Lexicon{Trie: NewTrie(), entryIdx: make(map[string]int)}
}

// Insert adds word with freq to the lexicon: the trie, the entry list, and
// the bucket index, in a single pass (spec §4.2 — "single pass, build once").
// word is case-folded through normalize.FoldCase before validation, per
// spec §4.2's "rejected only when it contains a character outside [a-z']
// (case-folded)" rule; a word that still contains a byte outside [a-z']
// after folding, or is empty, is silently ignored, mirroring the loaders'
// skip-malformed-lines discipline.
func (lx *Lexicon) Insert(word string, freq uint32) {
	word = normalize.FoldCase(word)
	if len(word) == 0 {
		return
	}
	for i := 0; i < len(word); i++ {
		if childIndex(word[i]) < 0 {
			return
		}
	}
	lx.Trie.Insert(word, freq)

	if strings.IndexByte(word, '\'') >= 0 {
		// Bucket index is a-z only (spec §9): a word containing an apostrophe
		// anywhere is excluded from the entry list and shortlisting even
		// though the trie itself still accepts it for Contains/HasPrefix.
		return
	}

	if idx, ok := lx.entryIdx[word]; ok {
		lx.entries[idx].Freq = freq
		return
	}

	e := Entry{
		Word:        word,
		Freq:        freq,
		Length:      len(word),
		FirstLetter: word[0],
		LastLetter:  word[len(word)-1],
	}
	idx := len(lx.entries)
	lx.entries = append(lx.entries, e)
	lx.entryIdx[word] = idx

	fi := int(e.FirstLetter - 'a')
	li := int(e.LastLetter - 'a')
	lx.buckets[fi][li] = append(lx.buckets[fi][li], idx)
}

// Entry returns the dictionary entry at idx, as returned by Shortlist.
func (lx *Lexicon) Entry(idx int) Entry {
	return lx.entries[idx]
}

// Len returns the number of shortlistable entries (excludes words containing
// an apostrophe, which are kept in the trie only).
func (lx *Lexicon) Len() int {
	return len(lx.entries)
}

// lengthTolerance bounds how far a candidate word's length may differ from
// the mapped key sequence's length and still be shortlisted (spec §4.5).
const lengthTolerance = 2

// Shortlist returns the indices of entries whose first letter, last letter,
// and length (within ±lengthTolerance of len(keySeq)) match keySeq — the
// bucket lookup described in spec §4.2/§4.5. keySeq must be non-empty;
// Shortlist returns nil otherwise.
func (lx *Lexicon) Shortlist(keySeq []string) []int {
	if len(keySeq) == 0 {
		return nil
	}
	first := keySeq[0]
	last := keySeq[len(keySeq)-1]
	if len(first) != 1 || len(last) != 1 {
		return nil
	}
	fc, lc := first[0], last[0]
	if fc < 'a' || fc > 'z' || lc < 'a' || lc > 'z' {
		return nil
	}

	bucket := lx.buckets[fc-'a'][lc-'a']
	if len(bucket) == 0 {
		return nil
	}

	targetLen := len(keySeq)
	out := make([]int, 0, len(bucket))
	for _, idx := range bucket {
		d := lx.entries[idx].Length - targetLen
		if d < 0 {
			d = -d
		}
		if d <= lengthTolerance {
			out = append(out, idx)
		}
	}
	return out
}

// Stats summarizes a loaded lexicon for operational visibility — a
// supplement beyond the core shortlist/score contract, in the style of the
// teacher's HandAnalysis/SfbAnalysis summary structs (internal/layout's
// analysis types pair a plain struct with a String method).
type Stats struct {
	EntryCount      int
	AvgWordLength   float64
	BucketOccupancy [26][26]int
}

// String renders a short human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d entries, avg length %.2f", s.EntryCount, s.AvgWordLength)
}

// Stats computes a Stats summary over the currently loaded entries.
func (lx *Lexicon) Stats() Stats {
	var s Stats
	s.EntryCount = len(lx.entries)
	total := 0
	for _, e := range lx.entries {
		total += e.Length
	}
	if s.EntryCount > 0 {
		s.AvgWordLength = float64(total) / float64(s.EntryCount)
	}
	for i := 0; i < 26; i++ {
		for j := 0; j < 26; j++ {
			s.BucketOccupancy[i][j] = len(lx.buckets[i][j])
		}
	}
	return s
}

// LoadWords reads a newline-delimited word list from path and loads it with
// DefaultFrequency for every word; LoadFrequencies should be called
// afterward to override frequencies for words present in a frequency table.
// Each line is case-folded before validation; lines that are empty or still
// contain a character outside [a-z'] after folding are skipped.
func (lx *Lexicon) LoadWords(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		word := normalize.FoldCase(sc.Text())
		if !validWord(word) {
			continue
		}
		lx.Insert(word, DefaultFrequency)
	}
	if err := sc.Err(); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// LoadFrequencies reads a tab-separated "word\tfreq" file from path and
// overrides the frequency of each already-loaded word. Words not already
// present in the lexicon are ignored: the frequency file augments the word
// list, it does not introduce new entries.
func (lx *Lexicon) LoadFrequencies(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		word, freq, ok := splitFreqLine(line)
		if !ok {
			continue
		}
		word = normalize.FoldCase(word)
		if !validWord(word) {
			continue
		}
		if !lx.Trie.Contains(word) {
			continue
		}
		lx.Insert(word, freq)
	}
	if err := sc.Err(); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

func validWord(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if childIndex(word[i]) < 0 {
			return false
		}
	}
	return true
}

// splitFreqLine parses a "word\tfreq" line into its parts.
func splitFreqLine(line string) (word string, freq uint32, ok bool) {
	tab := -1
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' {
			tab = i
			break
		}
	}
	if tab < 0 || tab == len(line)-1 {
		return "", 0, false
	}
	word = line[:tab]
	var n uint32
	for i := tab + 1; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return "", 0, false
		}
		n = n*10 + uint32(c-'0')
	}
	return word, n, true
}

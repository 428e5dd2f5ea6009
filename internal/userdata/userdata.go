// Package userdata implements the adaptive per-user learning store: unigram
// and bigram commit frequencies, decayed on load and pruned on write,
// consulted during ranking as a log-scaled boost.
//
// All state is protected by a single mutex, the plain-Mutex-per-component
// idiom the teacher applies to its Scorer (internal/keycraft/scorer.go's
// cacheMu), chosen over an RWMutex here because writers (recordCommit)
// dominate reads in this workload (spec §4.6/§5).
package userdata

import (
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/rbscholtus/swipetype/internal/normalize"
	"github.com/rbscholtus/swipetype/internal/xutil"
)

// Tunables named by the contract this package implements.
const (
	// DecayFactor is applied to every stored frequency on load.
	DecayFactor = 0.95

	// AutoSaveInterval is how many recordCommit calls trigger a save.
	AutoSaveInterval = 10

	// MaxUnigrams and MaxBigrams bound in-memory counter population;
	// pruning retains the top 90% by frequency once exceeded.
	MaxUnigrams = 10000
	MaxBigrams  = 5000

	// UnigramWeight and BigramWeight scale the log-scaled boost
	// contributions summed by LearningBoost.
	UnigramWeight = 0.3
	BigramWeight  = 0.5

	pruneRetainFraction = 0.9
)

// SaveError reports a failure to persist the store; callers decide whether
// to retry (spec §7 — surfaced as a boolean/error, never fatal).
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string { return "save user data " + e.Path + ": " + e.Err.Error() }
func (e *SaveError) Unwrap() error { return e.Err }

// loadError is never surfaced to callers — logged at slog.Debug and
// absorbed, per spec §7's "user-data corruption is silently absorbed"
// policy. It is unexported since no caller ever needs to inspect it.
type loadError struct {
	path string
	err  error
}

func (e *loadError) Error() string { return "load user data " + e.path + ": " + e.err.Error() }
func (e *loadError) Unwrap() error { return e.err }

// Store is the adaptive learning store. Construct with New or Load; both
// return a ready-to-use, already-decayed Store.
type Store struct {
	mu sync.Mutex

	path string

	unigrams map[string]uint32
	bigrams  map[string]uint32 // key is "prev|curr"

	lastWord       string
	commitsPending int
}

// New returns an empty store backed by path for future Save calls. It does
// not read path; use Load to populate from an existing file.
func New(path string) *Store {
	return &Store{
		path:     path,
		unigrams: make(map[string]uint32),
		bigrams:  make(map[string]uint32),
	}
}

// Load reads the store from path, applying decay on every entry. Missing,
// truncated, malformed, or wrong-version files degrade to an empty store —
// loadError is constructed for the slog.Debug trail but is never returned.
func Load(path string) *Store {
	s := New(path)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("user data load failed", "error", (&loadError{path, err}).Error())
		}
		return s
	}
	defer xutil.CloseFile(f)

	uni, bi, err := decodeFile(f)
	if err != nil {
		slog.Debug("user data load failed", "error", (&loadError{path, err}).Error())
		return s
	}

	s.unigrams = decay(uni)
	s.bigrams = decay(bi)
	return s
}

// decay multiplies every frequency by DecayFactor, floors to integer, and
// drops entries at or below 1 (spec §4.6).
func decay(m map[string]uint32) map[string]uint32 {
	out := make(map[string]uint32, len(m))
	for k, v := range m {
		nv := uint32(math.Floor(float64(v) * DecayFactor))
		if nv <= 1 {
			continue
		}
		out[k] = nv
	}
	return out
}

// RecordCommit implements the commit-recording contract of spec §4.6: case
// folds both operands, increments the unigram counter, increments the
// bigram counter for (previousWord|word) when a previous word is known
// (supplied or remembered from the last commit), updates the remembered
// last word, prunes the counters whenever they exceed their caps, and
// triggers an auto-save every AutoSaveInterval calls.
func (s *Store) RecordCommit(word, previousWord string) {
	word = normalize.FoldCase(word)
	previousWord = normalize.FoldCase(previousWord)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.unigrams[word]++

	prev := previousWord
	if prev == "" {
		prev = s.lastWord
	}
	if prev != "" {
		s.bigrams[bigramKey(prev, word)]++
	}

	s.lastWord = word
	s.commitsPending++

	s.prune()

	if s.commitsPending >= AutoSaveInterval {
		s.commitsPending = 0
		if err := s.saveLocked(); err != nil {
			slog.Debug("user data autosave failed", "error", err)
		}
	}
}

// prune enforces MaxUnigrams/MaxBigrams by retaining the top
// pruneRetainFraction by frequency, ties broken lexicographically by key.
// Insertion order is not tracked, so it plays no part in the tie-break —
// must be called with mu held.
func (s *Store) prune() {
	s.unigrams = pruneMap(s.unigrams, MaxUnigrams)
	s.bigrams = pruneMap(s.bigrams, MaxBigrams)
}

func pruneMap(m map[string]uint32, max int) map[string]uint32 {
	if len(m) <= max {
		return m
	}
	keep := int(float64(max) * pruneRetainFraction)
	if keep < 1 {
		keep = 1
	}

	sorted := xutil.SortedByCount(m, func(a, b string) bool { return a < b })
	out := make(map[string]uint32, keep)
	for i := 0; i < keep && i < len(sorted); i++ {
		out[sorted[i].Key] = sorted[i].Count
	}
	return out
}

// LearningBoost sums the log-scaled unigram and bigram contributions for
// word, substituting the remembered last word when previousWord is empty
// (spec §4.6).
func (s *Store) LearningBoost(word, previousWord string) float64 {
	word = normalize.FoldCase(word)
	previousWord = normalize.FoldCase(previousWord)

	s.mu.Lock()
	defer s.mu.Unlock()

	boost := unigramBoost(s.unigrams[word])

	prev := previousWord
	if prev == "" {
		prev = s.lastWord
	}
	if prev != "" {
		boost += bigramBoost(s.bigrams[bigramKey(prev, word)])
	}
	return boost
}

func unigramBoost(count uint32) float64 {
	if count == 0 {
		return 0
	}
	return math.Log(1+float64(count)) * UnigramWeight
}

func bigramBoost(count uint32) float64 {
	if count == 0 {
		return 0
	}
	return math.Log(1+float64(count)) * BigramWeight
}

func bigramKey(prev, curr string) string { return prev + "|" + curr }

// Reset clears in-memory state and removes the persistence file.
// Subsequent operations succeed as if the store were freshly created.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.unigrams = make(map[string]uint32)
	s.bigrams = make(map[string]uint32)
	s.lastWord = ""
	s.commitsPending = 0

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

// Save persists the store to its path.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes the store to disk; callers must hold mu.
func (s *Store) saveLocked() error {
	f, err := os.Create(s.path)
	if err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	defer xutil.CloseFile(f)

	if err := encodeFile(f, s.unigrams, s.bigrams); err != nil {
		return &SaveError{Path: s.path, Err: err}
	}
	return nil
}

// Snapshot is a read-only copy of the store's counters, for tests and host
// diagnostics that need to inspect learned state without touching the
// internal mutex — a supplement to the core load/save/boost contract
// (spec §9 expansion).
type Snapshot struct {
	Unigrams map[string]uint32
	Bigrams  map[string]uint32
}

// Snapshot returns a copy of the current unigram/bigram counters.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	uni := make(map[string]uint32, len(s.unigrams))
	for k, v := range s.unigrams {
		uni[k] = v
	}
	bi := make(map[string]uint32, len(s.bigrams))
	for k, v := range s.bigrams {
		bi[k] = v
	}
	return Snapshot{Unigrams: uni, Bigrams: bi}
}

// Package candidate ranks dictionary entries against a mapped key sequence
// into a bounded, deterministically ordered candidate list.
package candidate

import (
	"sort"

	"github.com/rbscholtus/swipetype/internal/layout"
	"github.com/rbscholtus/swipetype/internal/lexicon"
	"github.com/rbscholtus/swipetype/internal/scoring"
)

// MinKeySequenceLength is the shortest key sequence the generator will
// attempt to score; shorter sequences return no candidates outright.
const MinKeySequenceLength = 2

// MinCandidateScore is the minimum composite score a scored entry must
// reach to be returned.
const MinCandidateScore = -1.0

// MaxCandidates bounds the length of the returned list.
const MaxCandidates = 8

// Candidate is one ranked dictionary word with its composite score and the
// diagnostic components that produced it.
type Candidate struct {
	Word      string
	Score     float64
	EditDist  int
	BigramOv  int
	FreqScore float64
	SpatialSc float64
}

// Booster supplies a learning-boost contribution for a word given the
// previous committed word, added to the composite score before ranking
// (spec §4.4/§4.6). The Engine Facade passes the User Data Store; tests and
// callers with no learning store can pass nil, in which case no boost is
// applied.
type Booster interface {
	LearningBoost(word, previousWord string) float64
}

// Generate implements the candidate-generation procedure of spec §4.5:
// gate on minimum key-sequence length, shortlist via the lexicon, score and
// threshold, sort with documented tie-breaks, then truncate.
func Generate(keySeq []string, lex *lexicon.Lexicon, l *layout.Layout, cfg scoring.Config, booster Booster, previousWord string) []Candidate {
	if len(keySeq) < MinKeySequenceLength {
		return nil
	}

	shortlist := lex.Shortlist(keySeq)
	if len(shortlist) == 0 {
		return nil
	}

	out := make([]Candidate, 0, len(shortlist))
	for _, idx := range shortlist {
		e := lex.Entry(idx)
		res := scoring.Score(keySeq, e.Word, e.Freq, l, cfg)

		total := res.Score
		if booster != nil {
			total += booster.LearningBoost(e.Word, previousWord)
		}

		if total < MinCandidateScore {
			continue
		}

		out = append(out, Candidate{
			Word:      e.Word,
			Score:     total,
			EditDist:  res.EditDist,
			BigramOv:  res.BigramOv,
			FreqScore: res.FreqScore,
			SpatialSc: res.SpatialSc,
		})
	}

	sortCandidates(out, lex)

	if len(out) > MaxCandidates {
		out = out[:MaxCandidates]
	}
	return out
}

// sortCandidates sorts descending by score, breaking ties by shorter word,
// then higher raw frequency, then lexicographic order (spec §4.5).
func sortCandidates(cands []Candidate, lex *lexicon.Lexicon) {
	rawFreq := func(word string) uint32 {
		f, _ := lex.Trie.Frequency(word)
		return f
	}

	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) < len(b.Word)
		}
		fa, fb := rawFreq(a.Word), rawFreq(b.Word)
		if fa != fb {
			return fa > fb
		}
		return a.Word < b.Word
	})
}

// Package engine composes the Layout, Lexicon, Path Mapper, Scorer,
// Candidate Generator, and User Data Store into the single facade a host
// (CLI, UI, IPC layer) drives: load once, own read-only state, serialize
// writes — the shape of the teacher's top-level Scorer
// (internal/keycraft/scorer.go), which likewise owns a corpus, targets,
// and weights behind one entry point.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/rbscholtus/swipetype/internal/candidate"
	"github.com/rbscholtus/swipetype/internal/layout"
	"github.com/rbscholtus/swipetype/internal/lexicon"
	"github.com/rbscholtus/swipetype/internal/pathmap"
	"github.com/rbscholtus/swipetype/internal/scoring"
	"github.com/rbscholtus/swipetype/internal/userdata"
)

// Engine ties every component together. The zero value is not usable;
// construct with New.
type Engine struct {
	layout   *layout.Layout
	lexicon  *lexicon.Lexicon
	scoring  scoring.Config
	userData *userdata.Store
}

// New returns an Engine with the built-in default QWERTY layout, an empty
// lexicon (LoadDictionary must be called before candidates can be
// generated), the default scoring configuration, and a learning store
// backed by userDataPath.
func New(userDataPath string) *Engine {
	return &Engine{
		layout:   layout.Default(),
		lexicon:  lexicon.New(),
		scoring:  scoring.DefaultConfig(),
		userData: userdata.Load(userDataPath),
	}
}

// LoadLayout replaces the engine's layout with the geometry document at
// path (spec §6 — LayoutLoadError is surfaced).
func (e *Engine) LoadLayout(path string) error {
	l, err := layout.Load(path)
	if err != nil {
		return fmt.Errorf("engine: load layout: %w", err)
	}
	e.layout = l
	return nil
}

// LoadDictionary replaces the engine's lexicon, loading wordsPath (required
// — a missing word list is surfaced) and freqPath (optional — a missing
// frequency file is not an error, defaults apply, per spec §7).
func (e *Engine) LoadDictionary(wordsPath, freqPath string) error {
	lx := lexicon.New()
	if err := lx.LoadWords(wordsPath); err != nil {
		return fmt.Errorf("engine: load dictionary: %w", err)
	}
	if freqPath != "" {
		if err := lx.LoadFrequencies(freqPath); err != nil {
			slog.Debug("frequency file load failed, defaults apply", "path", freqPath, "error", err)
		}
	}
	e.lexicon = lx
	return nil
}

// Layout returns the engine's currently loaded layout.
func (e *Engine) Layout() *layout.Layout { return e.layout }

// Lexicon returns the engine's currently loaded dictionary.
func (e *Engine) Lexicon() *lexicon.Lexicon { return e.lexicon }

// MapPathToSequence maps a raw swipe path to a deduplicated alphabetic key
// sequence using the engine's current layout.
func (e *Engine) MapPathToSequence(path []layout.Point) []string {
	return pathmap.MapPathToSequence(path, e.layout)
}

// GenerateCandidates ranks the engine's dictionary against keySeq,
// applying the learning boost from the engine's User Data Store before
// ranking (spec §4.4/§4.7).
func (e *Engine) GenerateCandidates(keySeq []string, previousWord string) []candidate.Candidate {
	return candidate.Generate(keySeq, e.lexicon, e.layout, e.scoring, e.userData, previousWord)
}

// RecordCommit passes a committed word (and optional previous word)
// through to the User Data Store.
func (e *Engine) RecordCommit(word, previousWord string) {
	e.userData.RecordCommit(word, previousWord)
}

// Reset clears the engine's learning store, in memory and on disk.
func (e *Engine) Reset() error {
	return e.userData.Reset()
}

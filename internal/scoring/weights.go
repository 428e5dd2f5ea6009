// Package scoring ranks dictionary candidates against a mapped key
// sequence: a bounded edit distance, a bigram-overlap count, a log-scaled
// frequency term, and a greedy spatial/centroid term, combined into one
// composite score by fixed weights.
//
// The weights live in a single struct constructed once and threaded through
// (Config, below) rather than scattered package-level constants — the "one
// place to edit" discipline the teacher applies to its own Weights type
// (internal/keycraft/weights.go), and the way scoring_config.go in the
// reference corpus groups an entire scoring system's tunables into one
// *Config with a Default*Config constructor.
package scoring

// Config centralizes every tunable of the composite scorer. Construct with
// DefaultConfig; the Engine Facade owns one instance and passes it by value
// to Score, so callers can experiment with alternate weightings without
// touching package state.
type Config struct {
	// Composite weights applied to each component before summing.
	EditDistanceWeight  float64
	BigramOverlapWeight float64
	FrequencyWeight     float64
	SpatialWeight       float64

	// EditDistanceLimit bounds the Levenshtein computation: distances above
	// this value are reported as EditDistanceLimit+1 rather than computed
	// exactly, and the row computation stops early once a row's minimum
	// exceeds it.
	EditDistanceLimit int

	// SpatialNormDistance normalizes the average per-letter centroid
	// distance into the [-1, 1] spatial score.
	SpatialNormDistance float64
}

// DefaultConfig returns the scorer's default weighting.
func DefaultConfig() Config {
	return Config{
		EditDistanceWeight:  -2.0,
		BigramOverlapWeight: 0.5,
		FrequencyWeight:     1.0,
		SpatialWeight:       1.5,
		EditDistanceLimit:   4,
		SpatialNormDistance: 150.0,
	}
}

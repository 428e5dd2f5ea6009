// Package pathmap turns a raw swipe path into a deduplicated sequence of
// alphabetic key identifiers.
//
// The four phases below are kept as independently testable pure functions
// rather than one monolithic pass — the teacher's habit of splitting an
// algorithm into named analysis passes (analyseHand, analyseBigrams,
// analyseSkipgrams, analyseTrigrams in the reference corpus's analyser)
// rather than a single do-everything function.
package pathmap

import "github.com/rbscholtus/swipetype/internal/layout"

// Tunable constants of the mapper. These are the sole tunable parameters
// named by the contract this package implements and are pinned here so
// test fixtures can rely on their exact values.
const (
	// DistanceRatioThreshold is the ratio a candidate key's sample distance
	// must beat the current key's sample distance by before a switch is
	// considered under the distance-ratio rule.
	DistanceRatioThreshold = 0.7

	// DistanceGapMinPX is the minimum absolute gap (in pixels) between the
	// current key's and the candidate key's distance to the sample, also
	// required by the distance-ratio rule.
	DistanceGapMinPX = 8.0

	// ConsecutiveSamplesThreshold is how many samples in a row a
	// non-current key must win "best" before a switch is forced.
	ConsecutiveSamplesThreshold = 3

	// MinDwellForBounce is the minimum dwell a run must have to survive
	// bounce removal; an A, B, A run with B's dwell below this is collapsed
	// to A.
	MinDwellForBounce = 2

	// offKeyboardDistSq is the squared-distance cutoff beyond which a
	// sample is treated as off-keyboard noise and dropped outright.
	offKeyboardDistSq = 100.0 * 100.0
)

// run is one maximal block of consecutive identical key ids emitted by
// phase 1, with its dwell count (phase 2).
type run struct {
	id    string
	dwell int
}

// MapPathToSequence implements the four-phase mapping algorithm: hysteresis
// assignment, dwell compression, bounce removal, and re-collapse. Empty
// path or a layout with no alphabetic keys both yield an empty sequence —
// not an error.
func MapPathToSequence(path []layout.Point, l *layout.Layout) []string {
	emitted := assignSamples(path, l)
	runs := collapseDwells(emitted)
	runs = removeBounces(runs)
	return recollapse(runs)
}

// bestKey finds the alphabetic key whose bounds contain p, or failing that
// the alphabetic key with the smallest squared centroid distance to p. It
// reports false if every key's squared distance exceeds offKeyboardDistSq
// (off-keyboard noise).
func bestKey(p layout.Point, keys []layout.Key) (layout.Key, float64, bool) {
	var (
		best      layout.Key
		bestDistSq = -1.0
		haveBest  bool
	)

	for _, k := range keys {
		if !k.Alpha {
			continue
		}
		if k.Bounds.Contains(p) {
			return k, 0, true
		}
		d := layout.DistSq(p, k.Centroid)
		if !haveBest || d < bestDistSq {
			best, bestDistSq, haveBest = k, d, true
		}
	}

	if !haveBest || bestDistSq > offKeyboardDistSq {
		return layout.Key{}, 0, false
	}
	return best, bestDistSq, true
}

// assignSamples is phase 1: sample assignment with hysteresis. It returns
// the sequence of emitted key ids, one per sample that stays on the current
// key or switches to a new one — so phase 2 can compute true per-key dwell
// counts. Off-keyboard samples, and samples whose best key differs from the
// current key without a switch being accepted, emit nothing.
func assignSamples(path []layout.Point, l *layout.Layout) []string {
	keys := l.AlphaKeys()
	if len(keys) == 0 {
		return nil
	}

	var (
		emitted        []string
		hasCurrent     bool
		current        layout.Key
		candidate      layout.Key
		hasCandidate   bool
		candidateCount int
	)

	for _, p := range path {
		best, _, ok := bestKey(p, keys)
		if !ok {
			continue
		}

		if !hasCurrent {
			current = best
			hasCurrent = true
			emitted = append(emitted, current.ID)
			candidateCount = 0
			hasCandidate = false
			continue
		}

		if best.ID == current.ID {
			emitted = append(emitted, current.ID)
			candidateCount = 0
			hasCandidate = false
			continue
		}

		hardHit := best.Bounds.Contains(p)

		distToBest := layout.Dist(p, best.Centroid)
		distToCurrent := layout.Dist(p, current.Centroid)
		ratioOK := distToBest < DistanceRatioThreshold*distToCurrent
		gapOK := distToCurrent-distToBest > DistanceGapMinPX
		distanceRuleHit := ratioOK && gapOK

		if hasCandidate && candidate.ID == best.ID {
			candidateCount++
		} else {
			candidate = best
			candidateCount = 1
			hasCandidate = true
		}
		consecutiveRuleHit := candidateCount >= ConsecutiveSamplesThreshold

		if hardHit || distanceRuleHit || consecutiveRuleHit {
			current = best
			emitted = append(emitted, current.ID)
			candidateCount = 0
			hasCandidate = false
		}
	}

	return emitted
}

// collapseDwells is phase 2: collapse an emitted id sequence into runs of
// consecutive identical ids.
func collapseDwells(emitted []string) []run {
	var runs []run
	for _, id := range emitted {
		if len(runs) > 0 && runs[len(runs)-1].id == id {
			runs[len(runs)-1].dwell++
			continue
		}
		runs = append(runs, run{id: id, dwell: 1})
	}
	return runs
}

// removeBounces is phase 3: drop the middle run of any A, B, A pattern
// where B's dwell is below MinDwellForBounce.
func removeBounces(runs []run) []run {
	if len(runs) < 3 {
		return runs
	}

	out := make([]run, 0, len(runs))
	i := 0
	for i < len(runs) {
		if i+2 < len(runs) &&
			runs[i].id == runs[i+2].id &&
			runs[i].id != runs[i+1].id &&
			runs[i+1].dwell < MinDwellForBounce {
			out = append(out, runs[i])
			i += 2 // skip the bounced middle run; runs[i+2] (== runs[i].id) is handled next iteration via re-collapse
			continue
		}
		out = append(out, runs[i])
		i++
	}
	return out
}

// recollapse is phase 4: merge any newly adjacent duplicate ids (created by
// bounce removal) and emit the final flat id sequence.
func recollapse(runs []run) []string {
	var ids []string
	for _, r := range runs {
		if len(ids) > 0 && ids[len(ids)-1] == r.id {
			continue
		}
		ids = append(ids, r.id)
	}
	return ids
}

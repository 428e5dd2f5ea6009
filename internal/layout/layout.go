// Package layout loads soft-keyboard geometry and exposes key bounds,
// centroids, and the alphabetic neighbor graph used by the path mapper and
// scorer.
//
// Geometry is described the way the teacher describes a physical layout:
// a small document format loaded once at startup and treated as read-only
// thereafter (internal/keycraft/layout.go in the reference corpus). Unlike
// the teacher's abstract row/column finger model, a soft keyboard's geometry
// is pixel bounds, so the document here is a JSON row/key tree rather than a
// fixed-size rune grid.
package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// Defaults applied when the geometry document omits a scalar (spec §4.1).
const (
	DefaultKeyUnit   = 60.0
	DefaultKeyHeight = 50.0
	DefaultSpacing   = 6.0
	DefaultWidth     = 1.0
)

// NeighborRadius is the centroid-distance threshold (in pixels, at the
// default key unit) within which two alphabetic keys are considered
// neighbors for mapper tie-breaking (spec §3: "1.5 × nominal key unit").
const NeighborRadius = 1.5 * DefaultKeyUnit

// LoadError reports a failure to load a keyboard layout: a missing file,
// unreadable/malformed document, or a document describing zero keys.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load layout %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Rect is an axis-aligned pixel bounding box.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Point is a 2D pixel coordinate.
type Point struct {
	X, Y float64
}

// DistSq returns the squared Euclidean distance between two points, the form
// used throughout the mapper since only relative comparisons matter and the
// square root can be skipped.
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return math.Sqrt(DistSq(a, b))
}

// Key is a single immutable key on a loaded layout.
type Key struct {
	ID       string // lowercase letter, apostrophe, or a symbolic id for special keys
	Bounds   Rect
	Centroid Point
	Alpha    bool // true for a-z and apostrophe keys eligible for mapping
}

// Layout is an ordered set of Keys plus the derived alphabetic neighbor
// graph. It is built once at load time and is read-only thereafter: safe to
// share across callers per spec §5.
type Layout struct {
	Keys      []Key
	byID      map[string]int
	neighbors map[string][]string
}

// keyDoc is one key entry in the geometry document (spec §6).
type keyDoc struct {
	Code    string   `json:"code"`
	Label   string   `json:"label"`
	X       *float64 `json:"x,omitempty"`
	W       *float64 `json:"w,omitempty"`
	Special bool     `json:"special,omitempty"`
	Action  bool     `json:"action,omitempty"`
}

// rowDoc is one row of the geometry document.
type rowDoc struct {
	Y      int      `json:"y"`
	Offset float64  `json:"offset,omitempty"`
	Keys   []keyDoc `json:"keys"`
}

// layoutDoc is the top-level geometry document (spec §4.1, §6).
type layoutDoc struct {
	KeyUnit   *float64 `json:"keyUnit,omitempty"`
	KeyHeight *float64 `json:"keyHeight,omitempty"`
	KeySpacing *float64 `json:"keySpacing,omitempty"`
	Rows      []rowDoc `json:"rows"`
}

func floatOrDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Load reads and parses a keyboard geometry document from path, computes
// pixel bounds and centroids, and builds the alphabetic neighbor map.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return load(path, f)
}

func load(path string, r io.Reader) (*Layout, error) {
	var doc layoutDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	keyUnit := floatOrDefault(doc.KeyUnit, DefaultKeyUnit)
	keyHeight := floatOrDefault(doc.KeyHeight, DefaultKeyHeight)
	spacing := floatOrDefault(doc.KeySpacing, DefaultSpacing)

	var keys []Key
	for _, row := range doc.Rows {
		cursor := row.Offset
		for _, kd := range row.Keys {
			w := floatOrDefault(kd.W, DefaultWidth)

			x := cursor
			if kd.X != nil {
				x = *kd.X
			}

			bx := x*keyUnit + math.Floor(x)*spacing
			by := float64(row.Y) * (keyHeight + spacing)
			bw := w*keyUnit + math.Max(0, w-1)*spacing
			bh := keyHeight

			bounds := Rect{X: bx, Y: by, W: bw, H: bh}
			centroid := Point{X: bx + bw/2, Y: by + bh/2}

			keys = append(keys, Key{
				ID:       kd.Code,
				Bounds:   bounds,
				Centroid: centroid,
				Alpha:    isAlpha(kd.Code) && !kd.Special && !kd.Action,
			})

			cursor = x + w
		}
	}

	if len(keys) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("layout describes zero keys")}
	}

	return build(keys), nil
}

// build assembles a Layout from a flat key list, indexing by ID and
// precomputing the alphabetic neighbor graph.
func build(keys []Key) *Layout {
	l := &Layout{
		Keys:      keys,
		byID:      make(map[string]int, len(keys)),
		neighbors: make(map[string][]string),
	}
	for i, k := range keys {
		l.byID[k.ID] = i
	}

	for _, a := range keys {
		if !a.Alpha {
			continue
		}
		var ns []string
		for _, b := range keys {
			if !b.Alpha || a.ID == b.ID {
				continue
			}
			if Dist(a.Centroid, b.Centroid) <= NeighborRadius {
				ns = append(ns, b.ID)
			}
		}
		l.neighbors[a.ID] = ns
	}

	return l
}

// isAlpha reports whether id is a single lowercase ASCII letter or an
// apostrophe — the only identifiers eligible for mapping (spec §3).
func isAlpha(id string) bool {
	if len(id) != 1 {
		return false
	}
	c := id[0]
	return (c >= 'a' && c <= 'z') || c == '\''
}

// Key returns the key with the given identifier and whether it exists.
func (l *Layout) Key(id string) (Key, bool) {
	idx, ok := l.byID[id]
	if !ok {
		return Key{}, false
	}
	return l.Keys[idx], true
}

// Neighbors returns the alphabetic keys within NeighborRadius of id's
// centroid, or nil if id is unknown or not alphabetic.
func (l *Layout) Neighbors(id string) []string {
	return l.neighbors[id]
}

// AlphaKeys returns every alphabetic key in the layout.
func (l *Layout) AlphaKeys() []Key {
	var out []Key
	for _, k := range l.Keys {
		if k.Alpha {
			out = append(out, k)
		}
	}
	return out
}

package gstile

import (
	"encoding/json"
	"sort"
)

// TokenMatch is a claim that pattern[A:A+Length] equals text[B:B+Length]
// (spec §3). A is an index into the pattern sequence, B into the text
// sequence.
type TokenMatch struct {
	A      int
	B      int
	Length int
}

// overlaps reports whether m and other overlap per spec §3's overlap
// relation: their projections intersect on the pattern axis or on the
// text axis.
func (m TokenMatch) overlaps(other TokenMatch) bool {
	patternOverlap := other.A-m.Length < m.A && m.A < other.A+other.Length
	textOverlap := other.B-m.Length < m.B && m.B < other.B+other.Length
	return patternOverlap || textOverlap
}

// TileSet is an unordered collection of TokenMatch values with the
// invariant that no two contained matches overlap (spec §3, §4.2).
type TileSet struct {
	matches []TokenMatch
}

// NewTileSet returns an empty TileSet.
func NewTileSet() *TileSet {
	return &TileSet{}
}

// AddNonOverlapping inserts m if it does not overlap any existing
// element, returning true on success. Returns false (and leaves the set
// unchanged) if m overlaps an existing tile.
func (ts *TileSet) AddNonOverlapping(m TokenMatch) bool {
	for _, existing := range ts.matches {
		if existing.overlaps(m) {
			return false
		}
	}
	ts.matches = append(ts.matches, m)
	return true
}

// Extend unions other into ts. The caller is responsible for ensuring
// global non-overlap; Extend is used only when merging disjoint regions
// (spec §4.2).
func (ts *TileSet) Extend(other *TileSet) {
	ts.matches = append(ts.matches, other.matches...)
}

// Clear empties the TileSet.
func (ts *TileSet) Clear() {
	ts.matches = ts.matches[:0]
}

// TokenCount returns the sum of all tile lengths.
func (ts *TileSet) TokenCount() int {
	total := 0
	for _, m := range ts.matches {
		total += m.Length
	}
	return total
}

// MatchCount returns the number of tiles.
func (ts *TileSet) MatchCount() int {
	return len(ts.matches)
}

// Matches returns the tiles in insertion order. The returned slice is a
// copy; mutating it does not affect ts.
func (ts *TileSet) Matches() []TokenMatch {
	out := make([]TokenMatch, len(ts.matches))
	copy(out, ts.matches)
	return out
}

// Reverse returns a new TileSet with every (a, b, length) replaced by
// (b, a, length) — used when the Comparator swaps pattern and text to
// satisfy len(pattern) <= len(text) and must report coordinates in the
// caller's original frame (spec §4.2, §4.3, §8 invariant 7 "Symmetry").
func (ts *TileSet) Reverse() *TileSet {
	out := &TileSet{matches: make([]TokenMatch, len(ts.matches))}
	for i, m := range ts.matches {
		out.matches[i] = TokenMatch{A: m.B, B: m.A, Length: m.Length}
	}
	return out
}

// sortedMatches returns the tiles sorted ascending by (A, B, Length),
// per spec §4.2/§6's serialization order.
func (ts *TileSet) sortedMatches() []TokenMatch {
	out := ts.Matches()
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		if out[i].B != out[j].B {
			return out[i].B < out[j].B
		}
		return out[i].Length < out[j].Length
	})
	return out
}

// JSON returns a compact JSON array of [a, b, length] triples, sorted
// ascending by a, then b, then length (spec §4.2, §6).
func (ts *TileSet) JSON() ([]byte, error) {
	sorted := ts.sortedMatches()
	triples := make([][3]int, len(sorted))
	for i, m := range sorted {
		triples[i] = [3]int{m.A, m.B, m.Length}
	}
	return json.Marshal(triples)
}

package gstile

import (
	"fmt"
	"math"
)

// Config holds the recognized comparator options (spec §6).
type Config struct {
	// MinimumMatchLength is min_length passed to GST. Default 1.
	MinimumMatchLength int
	// MinimumSimilarity filters out results at or below this threshold.
	// Default -1 (emit all).
	MinimumSimilarity float64
	// SimilarityPrecision, when non-nil, rounds the reported similarity
	// half-to-even to this many fractional digits.
	SimilarityPrecision *int
}

// DefaultConfig returns the documented defaults (spec §6).
func DefaultConfig() Config {
	return Config{
		MinimumMatchLength: 1,
		MinimumSimilarity:  -1,
	}
}

// normalized returns cfg with MinimumMatchLength defaulted to 1 when
// left at or below zero, since GST rejects min_length <= 0 outright
// (spec §4.3). MinimumSimilarity is deliberately left alone: unlike
// MinimumMatchLength, 0 is a meaningful threshold a caller may choose
// on purpose ("suppress only pairs with zero overlap"), so there is no
// zero-value sentinel to normalize away here. Callers who want the
// documented minimum_similarity default of -1 (spec §6, "emit all")
// should build their Config from DefaultConfig() rather than a bare
// struct literal.
func (cfg Config) normalized() Config {
	if cfg.MinimumMatchLength <= 0 {
		cfg.MinimumMatchLength = 1
	}
	return cfg
}

// ComparisonResult is the record a Comparator emits for one pair (spec
// §3, §6): id_a, id_b, match_indexes, and a similarity in [0, 1].
// MatchIndexes holds the tiles in the order GST selected them;
// MatchIndexesJSON serializes them sorted ascending by a, then b, then
// length.
type ComparisonResult struct {
	IDA          string
	IDB          string
	MatchIndexes []TokenMatch
	Similarity   float64

	// ChecksumShortcut reports whether the checksum-equality shortcut
	// (spec §4.4 step 2) produced this result instead of a full GST run.
	ChecksumShortcut bool
}

// MatchIndexesJSON returns the match_indexes field as compact JSON (spec
// §6's serialization contract).
func (r ComparisonResult) MatchIndexesJSON() ([]byte, error) {
	ts := NewTileSet()
	for _, m := range r.MatchIndexes {
		ts.AddNonOverlapping(m)
	}
	return ts.JSON()
}

// Comparator runs GST on a pair of InputRecords, computes their
// similarity, and applies the checksum-shortcut and length-filter policy
// (spec §4.4).
type Comparator struct {
	cfg Config
}

// NewComparator returns a Comparator for cfg. A MinimumMatchLength at or
// below zero is replaced by the default of 1; the other fields are used
// as given (see Config.normalized).
func NewComparator(cfg Config) *Comparator {
	return &Comparator{cfg: cfg.normalized()}
}

// Compare runs the full comparator policy for one pair. ok is false when
// spec §4.4 step 1 (both longest_authored_tile below min_length) or step
// 5 (similarity at or below minimum_similarity) suppresses the result —
// not an error, just "no result for this pair".
func (c *Comparator) Compare(a, b *InputRecord) (result ComparisonResult, ok bool, err error) {
	if c.cfg.SimilarityPrecision != nil && *c.cfg.SimilarityPrecision < 0 {
		return ComparisonResult{}, false, fmt.Errorf("%w: similarity_precision must be >= 0, got %d", ErrInvalidArgument, *c.cfg.SimilarityPrecision)
	}

	longest := a.LongestAuthoredTile
	if b.LongestAuthoredTile > longest {
		longest = b.LongestAuthoredTile
	}
	if longest < c.cfg.MinimumMatchLength {
		return ComparisonResult{}, false, nil
	}

	var matches []TokenMatch
	var similarity float64
	checksumShortcut := a.HasChecksum && b.HasChecksum && a.Checksum == b.Checksum

	if checksumShortcut {
		minLen := len(a.Tokens)
		if len(b.Tokens) < minLen {
			minLen = len(b.Tokens)
		}
		matches = []TokenMatch{{A: 0, B: 0, Length: minLen}}
		similarity = 1.0
	} else {
		matches, err = c.runGST(a, b)
		if err != nil {
			return ComparisonResult{}, false, fmt.Errorf("comparing %q and %q: %w", a.ID, b.ID, err)
		}

		tokenCount := 0
		for _, m := range matches {
			tokenCount += m.Length
		}

		denominator := float64(a.effectiveAuthoredCount()+b.effectiveAuthoredCount()) / 2.0
		if denominator == 0 {
			similarity = 0
		} else {
			similarity = float64(tokenCount) / denominator
		}
	}

	if c.cfg.SimilarityPrecision != nil {
		similarity = roundHalfEven(similarity, *c.cfg.SimilarityPrecision)
	}

	if similarity <= c.cfg.MinimumSimilarity {
		return ComparisonResult{}, false, nil
	}

	return ComparisonResult{
		IDA:              a.ID,
		IDB:              b.ID,
		MatchIndexes:     matches,
		Similarity:       similarity,
		ChecksumShortcut: checksumShortcut,
	}, true, nil
}

// runGST arranges the shorter record as GST's pattern (spec §4.3 "the
// caller arranges len(pattern) <= len(text)"), runs the algorithm, and
// reverses the coordinates back into record a's frame if a swap was
// needed, so Compare's output is always (a, b) regardless of which side
// GST internally treated as the pattern.
func (c *Comparator) runGST(a, b *InputRecord) ([]TokenMatch, error) {
	aMarks, err := a.marks()
	if err != nil {
		return nil, err
	}
	bMarks, err := b.marks()
	if err != nil {
		return nil, err
	}

	if len(a.Tokens) <= len(b.Tokens) {
		return Match(a.Tokens, b.Tokens, aMarks, bMarks, c.cfg.MinimumMatchLength)
	}

	swapped, err := Match(b.Tokens, a.Tokens, bMarks, aMarks, c.cfg.MinimumMatchLength)
	if err != nil {
		return nil, err
	}
	out := make([]TokenMatch, len(swapped))
	for i, m := range swapped {
		out[i] = TokenMatch{A: m.B, B: m.A, Length: m.Length}
	}
	return out, nil
}

// roundHalfEven rounds x to d fractional digits using round-half-to-even
// (banker's rounding), per spec §4.4 step 4.
func roundHalfEven(x float64, d int) float64 {
	if d < 0 {
		d = 0
	}
	scale := math.Pow10(d)
	return math.RoundToEven(x*scale) / scale
}

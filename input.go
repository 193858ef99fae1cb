package gstile

import "sync"

// InputRecord is one side of a comparison (spec §3, §6): a token
// sequence plus the metadata a Comparator needs to apply its policy.
// Input records are read-only for the duration of a comparison and may
// be safely shared/aliased across concurrent PairDriver workers (spec
// §5); the lazily-computed mark vector is memoized behind a sync.Once so
// repeated comparisons against the same record don't re-parse its
// IgnoreMarks string, mirroring the teacher's getNormalizedStrings
// caching pattern.
type InputRecord struct {
	ID    string
	Tokens Sequence

	// IgnoreMarks is a 0/1 character string the same length as Tokens.
	// Empty means no positions are marked.
	IgnoreMarks string

	// Checksum is an opaque caller-provided digest. HasChecksum
	// distinguishes "no checksum supplied" from a legitimately empty
	// digest string.
	Checksum    string
	HasChecksum bool

	// AuthoredTokenCount is the denominator basis for similarity. Zero
	// means absent, in which case len(Tokens) is used instead (spec §9,
	// SPEC_FULL §13).
	AuthoredTokenCount int

	// LongestAuthoredTile is a pre-computed upper bound used by the
	// Comparator for early rejection (spec §4.4 step 1).
	LongestAuthoredTile int

	marksOnce  sync.Once
	marksCache *MarkSet
	marksErr   error
}

// effectiveAuthoredCount returns AuthoredTokenCount, or len(Tokens) when
// AuthoredTokenCount is absent (zero).
func (r *InputRecord) effectiveAuthoredCount() int {
	if r.AuthoredTokenCount > 0 {
		return r.AuthoredTokenCount
	}
	return len(r.Tokens)
}

// marks lazily builds and memoizes this record's MarkSet.
func (r *InputRecord) marks() (*MarkSet, error) {
	r.marksOnce.Do(func() {
		r.marksCache, r.marksErr = MarkSetFromBits(r.IgnoreMarks, len(r.Tokens))
	})
	return r.marksCache, r.marksErr
}

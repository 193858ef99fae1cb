package gstile

import "fmt"

// candidateMatch is a verified, extended match found during one pass's
// scan/match phases, before the select phase decides whether it survives
// into the TileSet.
type candidateMatch struct {
	P, T, Length int
}

// GST runs the Running Karp-Rabin Greedy String Tiling algorithm (spec
// §4.3) over a single pattern/text pair. Construct one with NewGST per
// comparison; a GST is not safe to reuse or share across goroutines (its
// mark vectors are mutable working copies, spec §3 "Ownership/lifecycle").
type GST struct {
	pattern, text           Sequence
	patternMarks, textMarks *MarkSet
	minLength               int
	tiles                   *TileSet
}

// NewGST validates its arguments and returns a GST ready to Run. The
// caller is expected to have arranged len(pattern) <= len(text); the
// Comparator (comparator.go) is responsible for that swap and for
// reversing the result, not GST itself (spec §4.3).
func NewGST(pattern, text Sequence, patternMarks, textMarks *MarkSet, minLength int) (*GST, error) {
	if minLength <= 0 {
		return nil, fmt.Errorf("%w: minimum_match_length must be >= 1, got %d", ErrInvalidArgument, minLength)
	}
	if patternMarks != nil && patternMarks.Len() != len(pattern) {
		return nil, fmt.Errorf("%w: pattern mark length %d does not match pattern length %d", ErrInvalidArgument, patternMarks.Len(), len(pattern))
	}
	if textMarks != nil && textMarks.Len() != len(text) {
		return nil, fmt.Errorf("%w: text mark length %d does not match text length %d", ErrInvalidArgument, textMarks.Len(), len(text))
	}
	if patternMarks == nil {
		patternMarks = NewMarkSet(len(pattern))
	}
	if textMarks == nil {
		textMarks = NewMarkSet(len(text))
	}
	return &GST{
		pattern:      pattern,
		text:         text,
		patternMarks: patternMarks.Clone(),
		textMarks:    textMarks.Clone(),
		minLength:    minLength,
		tiles:        NewTileSet(),
	}, nil
}

// Run executes the algorithm to completion and returns the resulting
// TileSet. Edge cases (spec §4.3): a sequence shorter than min_length, or
// an entirely-marked sequence, yields an empty TileSet with no error.
func (g *GST) Run() (*TileSet, error) {
	if len(g.pattern) < g.minLength || len(g.text) < g.minLength {
		return g.tiles, nil
	}
	if g.patternMarks.AllSet() || g.textMarks.AllSet() {
		return g.tiles, nil
	}

	s := g.minLength
	for {
		candidates := g.scanAndMatch(s)

		lmax := 0
		for _, c := range candidates {
			if c.Length > lmax {
				lmax = c.Length
			}
		}

		added := false
		if lmax > 0 {
			for _, c := range candidates {
				if c.Length != lmax {
					continue
				}
				m := TokenMatch{A: c.P, B: c.T, Length: c.Length}
				if g.tiles.AddNonOverlapping(m) {
					g.patternMarks.SetRange(c.P, c.P+c.Length)
					g.textMarks.SetRange(c.T, c.T+c.Length)
					added = true
				}
			}
		}

		if lmax > 2*s {
			// A tile significantly exceeded the search length: chase
			// larger tiles first (spec §4.3 step 4, the standard RKR-GST
			// optimization).
			s = lmax
			continue
		}

		if s == g.minLength {
			if !added {
				// A full pass at min_length added nothing: done.
				break
			}
			continue
		}

		next := s / 2
		if next < g.minLength {
			next = g.minLength
		}
		s = next
	}

	return g.tiles, nil
}

// scanAndMatch performs one pass's scan and match phases at search
// length s, returning every verified, extended candidate in scan order:
// ascending text start t, then ascending pattern start p (spec §4.3's
// documented tie-break, spec §9 "Open question — tie-breaking").
func (g *GST) scanAndMatch(s int) []candidateMatch {
	patLen := len(g.pattern)
	txtLen := len(g.text)
	if patLen < s || txtLen < s {
		return nil
	}

	buckets := make(map[uint64][]int)
	ph := NewHasher()
	ph.Reset(g.pattern, 0, s)
	for p := 0; ; p++ {
		if !g.patternMarks.AnySetInRange(p, p+s) {
			h := ph.Value()
			buckets[h] = append(buckets[h], p)
		}
		if p+s >= patLen {
			break
		}
		ph.Roll()
	}

	var candidates []candidateMatch
	th := NewHasher()
	th.Reset(g.text, 0, s)
	for t := 0; ; t++ {
		if !g.textMarks.AnySetInRange(t, t+s) {
			if ps, ok := buckets[th.Value()]; ok {
				for _, p := range ps {
					if length, ok := g.verifyAndExtend(p, t, s); ok {
						candidates = append(candidates, candidateMatch{P: p, T: t, Length: length})
					}
				}
			}
		}
		if t+s >= txtLen {
			break
		}
		th.Roll()
	}
	return candidates
}

// verifyAndExtend checks the hash-bucket candidate (p, t) token-by-token
// over its first s positions (rejecting hash collisions), then greedily
// extends the match rightward while both sides remain unmarked and equal
// (spec §4.3 step 2).
func (g *GST) verifyAndExtend(p, t, s int) (int, bool) {
	for k := 0; k < s; k++ {
		if g.pattern[p+k] != g.text[t+k] {
			return 0, false
		}
	}
	k := s
	for p+k < len(g.pattern) && t+k < len(g.text) &&
		!g.patternMarks.Get(p+k) && !g.textMarks.Get(t+k) &&
		g.pattern[p+k] == g.text[t+k] {
		k++
	}
	return k, true
}

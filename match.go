package gstile

// Match is the library entry point (spec §6): given a pattern and text
// token sequence, their mark vectors, and a minimum match length, it
// returns a maximal set of non-overlapping tiles in the coordinate frame
// of (pattern, text) — A indexes pattern, B indexes text. A nil MarkSet
// is treated as "no positions marked".
func Match(pattern, text Sequence, patternMarks, textMarks *MarkSet, minLength int) ([]TokenMatch, error) {
	g, err := NewGST(pattern, text, patternMarks, textMarks, minLength)
	if err != nil {
		return nil, err
	}
	tiles, err := g.Run()
	if err != nil {
		return nil, err
	}
	return tiles.Matches(), nil
}

// MatchStrings is the string-input half of the library entry point's
// contract (spec §6): pattern and text are tokenized one rune per token,
// and marks are 0/1 character strings of matching length (or empty,
// meaning "no positions marked").
func MatchStrings(pattern, patternMarks, text, textMarks string, minLength int) ([]TokenMatch, error) {
	patSeq := TokensFromString(pattern)
	txtSeq := TokensFromString(text)

	patMarks, err := MarkSetFromBits(patternMarks, len(patSeq))
	if err != nil {
		return nil, err
	}
	txtMarks, err := MarkSetFromBits(textMarks, len(txtSeq))
	if err != nil {
		return nil, err
	}

	return Match(patSeq, txtSeq, patMarks, txtMarks, minLength)
}

// MatchBytes is the byte-sequence-input half of the library entry
// point's contract (spec §6): pattern and text are tokenized one byte
// per token.
func MatchBytes(pattern, patternMarks, text, textMarks []byte, minLength int) ([]TokenMatch, error) {
	patSeq := TokensFromBytes(pattern)
	txtSeq := TokensFromBytes(text)

	patMarks, err := MarkSetFromBits(string(patternMarks), len(patSeq))
	if err != nil {
		return nil, err
	}
	txtMarks, err := MarkSetFromBits(string(textMarks), len(txtSeq))
	if err != nil {
		return nil, err
	}

	return Match(patSeq, txtSeq, patMarks, txtMarks, minLength)
}

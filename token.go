package gstile

import "unicode/utf8"

// Token is an opaque symbol from an implementation-defined alphabet.
// Tokens are only ever compared for equality; gstile never interprets
// their value. Callers that tokenize source code, log lines, or any
// other domain typically map their own vocabulary onto small integer
// ids before calling into this package.
type Token uint64

// Sequence is a finite, 0-indexed ordered sequence of tokens.
type Sequence []Token

// TokensFromString maps a string onto a token sequence, one token per
// rune. This is the "string inputs" half of the library entry point's
// contract (spec §6); callers with a real tokenizer should build a
// Sequence directly instead.
func TokensFromString(s string) Sequence {
	if s == "" {
		return Sequence{}
	}
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		seq = append(seq, Token(r))
	}
	return seq
}

// TokensFromBytes maps a byte slice onto a token sequence, one token per
// byte. This is the "byte-sequence inputs" half of the library entry
// point's contract (spec §6).
func TokensFromBytes(b []byte) Sequence {
	if len(b) == 0 {
		return Sequence{}
	}
	seq := make(Sequence, len(b))
	for i, c := range b {
		seq[i] = Token(c)
	}
	return seq
}

// String renders a token sequence back to a string, treating each token
// as a rune. Useful for debugging and for tests built around the
// string-oriented scenarios in spec §8.
func (s Sequence) String() string {
	buf := make([]byte, 0, len(s)*utf8.UTFMax)
	for _, t := range s {
		buf = utf8.AppendRune(buf, rune(t))
	}
	return string(buf)
}

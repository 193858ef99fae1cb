package gstile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjwise/gstile"
)

func TestTokensFromString(t *testing.T) {
	seq := gstile.TokensFromString("héllo")
	require.Len(t, seq, 5)
	assert.Equal(t, "héllo", seq.String())
}

func TestTokensFromStringEmpty(t *testing.T) {
	seq := gstile.TokensFromString("")
	assert.Len(t, seq, 0)
	assert.Equal(t, "", seq.String())
}

func TestTokensFromBytes(t *testing.T) {
	seq := gstile.TokensFromBytes([]byte{0x00, 0xFF, 'a'})
	require.Len(t, seq, 3)
	assert.Equal(t, gstile.Token(0x00), seq[0])
	assert.Equal(t, gstile.Token(0xFF), seq[1])
	assert.Equal(t, gstile.Token('a'), seq[2])
}

func TestSequenceStringRoundTrip(t *testing.T) {
	original := "the quick brown fox jumps over the lazy dog"
	seq := gstile.TokensFromString(original)
	assert.Equal(t, original, seq.String())
}

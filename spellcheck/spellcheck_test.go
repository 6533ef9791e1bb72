package spellcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/alphabet"
	"github.com/larkspur-labs/polycrack/column"
	"github.com/larkspur-labs/polycrack/dict"
)

func testByteDict() *dict.ByteDictionary {
	d := dict.New("the quick brown fox jumps over the lazy dog")
	return dict.FromDictionary(d)
}

func TestResegmentExactInputReproducesItself(t *testing.T) {
	bd := testByteDict()
	plaintext := "the quick brown fox"
	near := alphabet.EncodeString(plaintext)

	result := Resegment(column.Result{Plaintext: near, Confidence: 1}, bd)

	assert.Equal(t, alphabet.EncodeString(plaintext), result.Plaintext)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestResegmentToleratesASingleCorruptedByte(t *testing.T) {
	bd := testByteDict()
	plaintext := "the quick brown fox"
	near := alphabet.EncodeString(plaintext)

	// Corrupt the middle of "quick" -> "qhick".
	near[5] = alphabet.Encode('h')

	result := Resegment(column.Result{Plaintext: near, Confidence: 1}, bd)

	assert.Equal(t, alphabet.EncodeString(plaintext), result.Plaintext)
	assert.Greater(t, result.Confidence, 0.0)
}

func TestResegmentDropsTrailingSpace(t *testing.T) {
	bd := testByteDict()
	near := alphabet.EncodeString("fox")

	result := Resegment(column.Result{Plaintext: near, Confidence: 1}, bd)

	assert.NotEqual(t, byte(26), result.Plaintext[len(result.Plaintext)-1])
}

func TestResegmentEmptyPlaintext(t *testing.T) {
	bd := testByteDict()

	result := Resegment(column.Result{Plaintext: nil, Confidence: 1}, bd)

	assert.Empty(t, result.Plaintext)
	assert.Equal(t, 0.0, result.Confidence)
}

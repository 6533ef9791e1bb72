package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/prng"
)

func TestGenerateWordsUsesOnlyDictionaryWords(t *testing.T) {
	d := dict.New("abc def ghi jkl")
	g := New(d, prng.New(7, 11))

	sentence := g.GenerateWords(25)
	for _, w := range strings.Fields(sentence) {
		assert.Contains(t, d.Words, w)
	}
}

func TestGenerateWordsDeterministic(t *testing.T) {
	d := dict.New("abc def ghi jkl")

	a := New(d, prng.New(7, 11))
	b := New(d, prng.New(7, 11))

	assert.Equal(t, a.GenerateWords(20), b.GenerateWords(20))
}

func TestGenerateWordsCount(t *testing.T) {
	d := dict.New("abc def ghi jkl")
	g := New(d, prng.New(3, 5))

	sentence := g.GenerateWords(7)
	assert.Equal(t, 7, len(strings.Fields(sentence)))
}

// Package gen implements the pseudo-random plaintext generator used to synthesize
// Scenario B inputs for tests and for the worker pool's benchmarking harness: it
// samples dictionary words uniformly at random and joins them with single spaces.
//
// This generator is a collaborator to the cracker, not part of it; it exists so
// the recovery pipeline can be exercised end-to-end against known plaintexts.
package gen

import (
	"strings"

	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/prng"
)

// Generator produces plaintexts by sampling words from a Dictionary.
type Generator struct {
	dictionary *dict.Dictionary
	rng        *prng.Rng
}

// New builds a Generator that draws from dictionary using rng.
func New(dictionary *dict.Dictionary, rng *prng.Rng) *Generator {
	return &Generator{dictionary: dictionary, rng: rng}
}

// GenerateWords picks numWords words from the dictionary, uniformly at random with
// replacement, and joins them with a single space.
func (g *Generator) GenerateWords(numWords int) string {
	words := make([]string, numWords)
	for i := range words {
		words[i] = g.dictionary.Words[g.rng.Choose(len(g.dictionary.Words))]
	}
	return strings.Join(words, " ")
}

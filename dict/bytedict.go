package dict

import (
	"github.com/agnivade/levenshtein"

	"github.com/larkspur-labs/polycrack/alphabet"
)

// spaceSymbol is the trailing symbol appended to every byte-form word.
const spaceSymbol = 26

// ByteDictionary is the byte-encoded form of a Dictionary: every word is encoded to
// symbols in [0, alphabet.Size) with a trailing space symbol (26) appended. This is
// the form the spell re-segmenter consumes, since near-plaintext is itself a byte
// sequence over the same alphabet.
type ByteDictionary struct {
	// Words holds every dictionary word in byte form, in the same order as the
	// originating Dictionary (lexicographic, first-occurrence-wins for ties).
	Words [][]byte

	longestWord int
}

// FromDictionary encodes every word of d into its byte form.
func FromDictionary(d *Dictionary) *ByteDictionary {
	bd := &ByteDictionary{Words: make([][]byte, len(d.Words))}

	for i, word := range d.Words {
		encoded := make([]byte, len(word)+1)
		for j := 0; j < len(word); j++ {
			encoded[j] = alphabet.Encode(word[j])
		}
		encoded[len(word)] = spaceSymbol
		bd.Words[i] = encoded

		if len(encoded) > bd.longestWord {
			bd.longestWord = len(encoded)
		}
	}

	return bd
}

// LongestWordLength returns the memoized length, in bytes, of the longest word in
// byte form, plus one guard byte to accommodate look-ahead during re-segmentation.
func (bd *ByteDictionary) LongestWordLength() int {
	return bd.longestWord + 1
}

// BestMatch returns the dictionary word (byte form, including its trailing space
// symbol) whose Levenshtein distance to probe is smallest, along with that distance.
// The distance is measured against the word proper, not its trailing space, so an
// exact word probe scores 0 and an empty probe scores the word's length. Ties are
// broken by dictionary order: the first occurrence wins.
//
// BestMatch panics if the dictionary is empty; calling it on an empty dictionary is a
// programmer error, not a data-quality issue.
func (bd *ByteDictionary) BestMatch(probe []byte) ([]byte, int) {
	if len(bd.Words) == 0 {
		panic("dict: BestMatch called on an empty dictionary")
	}

	probeStr := string(probe)

	var best []byte
	bestDistance := -1

	for _, word := range bd.Words {
		distance := levenshtein.ComputeDistance(probeStr, string(word[:len(word)-1]))
		if bestDistance == -1 || distance < bestDistance {
			best = word
			bestDistance = distance
		}
	}

	return best, bestDistance
}

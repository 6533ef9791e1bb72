// Package spellcheck re-segments an imperfectly-cracked "near-plaintext" into a
// plausible sequence of dictionary words, tolerating the occasional wrong column
// shift by greedily picking the best-scoring dictionary word at each cursor
// position.
package spellcheck

import (
	"github.com/agnivade/levenshtein"

	"github.com/larkspur-labs/polycrack/column"
	"github.com/larkspur-labs/polycrack/dict"
)

// scoreNumerator and scoreEpsilon tune the greedy scorer: longer probe lengths and
// smaller edit distances are both preferred, and epsilon ensures a zero-distance
// exact match always outranks any imperfect match of the same probe length.
const (
	scoreNumerator = 1000.0
	scoreEpsilon   = 1.0
)

func score(probeLen, editDistance int) float64 {
	return float64(probeLen) / (float64(editDistance) + scoreEpsilon) * scoreNumerator
}

// Resegment takes a column.Result that is almost, but not quite, plaintext (some
// columns may carry the wrong shift) and recovers the most plausible sequence of
// dictionary words it could represent.
//
// At each cursor position it tries every probe length from 1 up to
// bd.LongestWordLength() (the longest byte-form dictionary word plus one guard
// byte), clamped to the bytes remaining, looks up the best dictionary match for each probe, and
// scores each match by probe length and edit distance. The best-scoring match wins;
// ties are broken in favor of the last probe length tried (the longest), mirroring
// a greedy longest-match preference. The cursor then advances by the probe length
// that produced the winning match, not the length of the matched word, which is
// intentional: it lets the cursor skip past noise the column cracker could not
// un-shift.
func Resegment(cracked column.Result, bd *dict.ByteDictionary) column.Result {
	nearPlaintext := cracked.Plaintext
	longest := bd.LongestWordLength()

	plaintext := make([]byte, 0, len(nearPlaintext))
	cursor := 0

	for len(nearPlaintext)-cursor > 1 {
		remaining := len(nearPlaintext) - cursor
		rbound := longest
		if remaining < rbound {
			rbound = remaining
		}

		var bestWord []byte
		var bestProbeLen int
		bestScore := -1.0

		for probeLen := 1; probeLen <= rbound; probeLen++ {
			word, editDistance := bd.BestMatch(nearPlaintext[cursor : cursor+probeLen])
			s := score(probeLen, editDistance)
			if s >= bestScore {
				bestScore = s
				bestWord = word
				bestProbeLen = probeLen
			}
		}

		plaintext = append(plaintext, bestWord...)
		cursor += bestProbeLen
	}

	if len(plaintext) > 0 {
		plaintext = plaintext[:len(plaintext)-1]
	}

	confidence := float64(levenshtein.ComputeDistance(string(plaintext), string(nearPlaintext))) * cracked.Confidence

	return column.Result{
		Plaintext:  plaintext,
		Confidence: confidence,
	}
}

// Package column implements column-wise shift cracking: de-interleaving ciphertext
// by a candidate period and brute-forcing the single shift per column that makes
// its character frequency distribution closest to a baseline.
package column

import (
	"github.com/larkspur-labs/polycrack/alphabet"
	"github.com/larkspur-labs/polycrack/freq"
)

// Result pairs a guessed plaintext with a confidence value. Lower confidence values
// mean more confident. Results carry no other state and are freely copied.
type Result struct {
	Plaintext  []byte
	Confidence float64
}

// Slice assigns ciphertext position i to column i mod period, preserving each
// column's intra-column order. The returned columns are exactly the input Unslice
// needs to reproduce the original sequence.
func Slice(ciphertext []byte, period int) [][]byte {
	columns := make([][]byte, period)
	counts := make([]int, period)
	for i := range ciphertext {
		counts[i%period]++
	}
	for c := range columns {
		columns[c] = make([]byte, 0, counts[c])
	}
	for i, b := range ciphertext {
		col := i % period
		columns[col] = append(columns[col], b)
	}
	return columns
}

// Unslice is the inverse of Slice: it walks row index i = 0, 1, 2, ... up to the
// longest column's length, and for each i appends column 0's i-th byte, then column
// 1's, and so on, skipping any column shorter than i+1. Applied to the output of
// Slice with the same period, it reproduces the original sequence exactly.
func Unslice(columns [][]byte) []byte {
	total := 0
	longest := 0
	for _, c := range columns {
		total += len(c)
		if len(c) > longest {
			longest = len(c)
		}
	}

	out := make([]byte, 0, total)
	for i := 0; i < longest; i++ {
		for _, c := range columns {
			if i < len(c) {
				out = append(out, c[i])
			}
		}
	}
	return out
}

// CrackSingleColumn tries every shift in [0, alphabet.Size) against column,
// comparing the shifted column's byte frequency distribution to baseline, and
// returns the shift with minimum L1 distance (the Result's Plaintext is the
// column shifted by that amount). Ties are broken by the smallest shift.
func CrackSingleColumn(col []byte, baseline freq.Distribution) Result {
	best := Result{Confidence: -1}

	shifted := make([]byte, len(col))
	for s := 0; s < alphabet.Size; s++ {
		for i, b := range col {
			shifted[i] = alphabet.Shift(b, -s)
		}

		distance := freq.Compare(baseline, freq.FromBytes(shifted))
		if best.Confidence < 0 || distance < best.Confidence {
			best.Confidence = distance
			best.Plaintext = append([]byte(nil), shifted...)
		}
	}

	return best
}

// Crack de-interleaves ciphertext at the given period, cracks every resulting
// column independently against baseline, then unslices the cracked columns back
// into position order. The result's confidence is the sum of the per-column
// confidences.
func Crack(ciphertext []byte, period int, baseline freq.Distribution) Result {
	columns := Slice(ciphertext, period)

	crackedColumns := make([][]byte, len(columns))
	var totalConfidence float64

	for i, col := range columns {
		r := CrackSingleColumn(col, baseline)
		crackedColumns[i] = r.Plaintext
		totalConfidence += r.Confidence
	}

	return Result{
		Plaintext:  Unslice(crackedColumns),
		Confidence: totalConfidence,
	}
}

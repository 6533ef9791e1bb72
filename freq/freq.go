// Package freq computes and compares 27-bin character frequency distributions, used
// as the baseline that column cracking shifts ciphertext columns toward.
package freq

import "github.com/larkspur-labs/polycrack/alphabet"

// Distribution is a normalized 27-bin frequency vector over the cipher alphabet.
// After construction, the bins sum to 1 (unless built from an empty byte sequence,
// in which case every bin is 0).
type Distribution struct {
	Values [alphabet.Size]float64
}

// FromDictionary builds the baseline distribution implied by a dictionary: the
// per-letter counts across every word, plus one count of the space symbol for each
// word (since every byte-form word is followed by exactly one space), normalized by
// the total.
func FromDictionary(words []string) Distribution {
	var d Distribution

	for _, word := range words {
		for i := 0; i < len(word); i++ {
			d.Values[alphabet.Encode(word[i])]++
		}
	}
	d.Values[alphabet.Size-1] = float64(len(words))

	total := 0.0
	for _, v := range d.Values {
		total += v
	}
	if total > 0 {
		for i := range d.Values {
			d.Values[i] /= total
		}
	}

	return d
}

// FromBytes builds a distribution from the histogram of a byte sequence over
// [0, alphabet.Size). If bytes is empty, every bin is 0.
func FromBytes(bytes []byte) Distribution {
	var d Distribution

	for _, b := range bytes {
		d.Values[b]++
	}

	if len(bytes) > 0 {
		total := float64(len(bytes))
		for i := range d.Values {
			d.Values[i] /= total
		}
	}

	return d
}

// Compare returns the L1 (sum of absolute differences) distance between two
// distributions. It is symmetric, non-negative, and zero iff a and b are identical.
func Compare(a, b Distribution) float64 {
	var sum float64
	for i := range a.Values {
		diff := a.Values[i] - b.Values[i]
		if diff < 0 {
			diff = -diff
		}
		sum += diff
	}
	return sum
}

// Package dict implements the dictionary of source words that the recovery pipeline
// both crack columns against (via character frequency) and re-segments near-plaintext
// against (via edit distance).
//
// Dictionary construction is total: there is no error return. A word that fails
// validation is dropped and a diagnostic is logged; construction never fails outright.
package dict

import (
	"log"
	"sort"
	"strings"
)

// Dictionary is an ordered, alphabetized set of unique lowercase words drawn only
// from a-z (space-free). It is the text form; see ByteDictionary for the byte form.
type Dictionary struct {
	Words []string
}

// New builds a Dictionary from a whitespace-separated blob of text. It lowercases
// every token, splits on any run of ASCII whitespace, and drops (with a diagnostic on
// the log) any token containing a non-alphabetic character. The resulting words are
// sorted lexicographically and de-duplicated.
//
// New accepts both the project's own dictionary format (space separated) and the
// common newline-separated wordlist format used by most system dictionaries.
func New(source string) *Dictionary {
	fields := strings.Fields(source)
	words := make([]string, 0, len(fields))

	for _, word := range fields {
		lower := strings.ToLower(word)
		if !isAlphabetic(lower) {
			log.Printf("dict: dropping non-alphabetic word %q", word)
			continue
		}
		words = append(words, lower)
	}

	sort.Strings(words)
	words = dedup(words)

	return &Dictionary{Words: words}
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	var prev string
	havePrev := false
	for _, w := range sorted {
		if havePrev && w == prev {
			continue
		}
		out = append(out, w)
		prev = w
		havePrev = true
	}
	return out
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.Words)
}

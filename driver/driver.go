// Package driver composes the keylength estimator, column cracker, and spell
// re-segmenter into the single entry point the rest of polycrack calls to turn
// ciphertext into a plaintext guess: Crack.
//
// Crack supports two scenarios. In Scenario A, a small set of known candidate
// plaintexts is available out of band; the driver column-cracks against each
// candidate's own frequency distribution and short-circuits if a close enough
// match turns up. Otherwise it falls back to Scenario B: column-crack against
// the dictionary baseline for every candidate keylength, re-segment every
// result against the dictionary, and return the most confident guess.
package driver

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/larkspur-labs/polycrack/alphabet"
	"github.com/larkspur-labs/polycrack/column"
	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/freq"
	"github.com/larkspur-labs/polycrack/keylength"
	"github.com/larkspur-labs/polycrack/spellcheck"
)

// scenarioAThreshold is the maximum per-character edit distance (edits divided
// by candidate length) below which a Scenario A candidate is accepted
// verbatim. A single magic constant, held stable so the driver's branching
// remains deterministic.
const scenarioAThreshold = 0.8

// Candidate is a known candidate plaintext for Scenario A, paired with its
// pre-computed frequency distribution so the driver need not recompute it once
// per cracking attempt.
type Candidate struct {
	Plaintext string
	Bytes     []byte
	Freq      freq.Distribution
}

// NewCandidate builds a Candidate from a plaintext string over the cipher
// alphabet (a-z and space only); it panics via alphabet.Encode if plaintext
// contains any other byte, consistent with the alphabet contract being a
// programmer/user error rather than a recoverable one.
func NewCandidate(plaintext string) Candidate {
	bytes := alphabet.EncodeString(plaintext)
	return Candidate{
		Plaintext: plaintext,
		Bytes:     bytes,
		Freq:      freq.FromBytes(bytes),
	}
}

// LoadCandidates parses a known-candidate file blob: one plaintext
// per line, empty lines ignored, each non-empty line must satisfy the input
// alphabet contract.
func LoadCandidates(blob string) []Candidate {
	lines := strings.Split(blob, "\n")
	candidates := make([]Candidate, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		candidates = append(candidates, NewCandidate(line))
	}
	return candidates
}

// Crack recovers a plaintext guess for ciphertext (a-z and space only) using
// the byte-form dictionary bd, the dictionary baseline distribution baseline,
// and an optional list of known Scenario A candidates (may be empty/nil, in
// which case only Scenario B runs).
//
// Crack is deterministic: given the same inputs it always returns the same
// plaintext, since every sub-component it composes (keylength ranking, column
// cracking, re-segmentation) breaks ties by first occurrence / smallest index.
func Crack(ciphertext string, bd *dict.ByteDictionary, baseline freq.Distribution, candidates []Candidate) string {
	return crack(ciphertext, bd, baseline, candidates, 0)
}

// CrackWithKeylenLimit is Crack, but restricts the Scenario B pass to the
// maxKeylens best-ranked keylength candidates (0 means no limit). It exists so
// the worker pool's benchmarking harness can bound per-attempt cost when
// thousands of configurations are evaluated.
func CrackWithKeylenLimit(ciphertext string, bd *dict.ByteDictionary, baseline freq.Distribution, candidates []Candidate, maxKeylens int) string {
	return crack(ciphertext, bd, baseline, candidates, maxKeylens)
}

func crack(ciphertext string, bd *dict.ByteDictionary, baseline freq.Distribution, candidates []Candidate, maxKeylens int) string {
	cipherbytes := alphabet.EncodeString(ciphertext)

	keylenGuesses := keylength.Guess(cipherbytes)

	// Scenario A: try every known candidate's own frequency distribution as
	// the baseline, over every period in the full search range, and
	// short-circuit on a close enough match.
	if len(candidates) > 0 {
		if plaintext, ok := tryScenarioA(cipherbytes, candidates); ok {
			return plaintext
		}
	}

	// Scenario B: crack against the dictionary baseline for every ranked
	// keylength, scale confidence by how strongly the estimator favored that
	// keylength, re-segment against the dictionary, and keep the best.
	limit := len(keylenGuesses)
	if maxKeylens > 0 && maxKeylens < limit {
		limit = maxKeylens
	}

	// Detrended keylength scores are usually negative, and a negative factor
	// would invert the minimum-confidence selection once Resegment multiplies
	// by edit distance, so each period scales by its score relative to the
	// best-ranked one: 1 for the top period, more for poorer-ranked periods.
	var best *column.Result
	for _, guess := range keylenGuesses[:limit] {
		result := column.Crack(cipherbytes, guess.Period, baseline)
		result.Confidence *= 1 + guess.Score - keylenGuesses[0].Score

		resegmented := spellcheck.Resegment(result, bd)
		if best == nil || resegmented.Confidence < best.Confidence {
			r := resegmented
			best = &r
		}
	}

	if best == nil {
		return ""
	}
	return alphabet.DecodeString(best.Plaintext)
}

func tryScenarioA(cipherbytes []byte, candidates []Candidate) (string, bool) {
	bestScore := -1.0
	bestPlaintext := ""

	for _, candidate := range candidates {
		for period := keylength.LoBound; period < keylength.HiBound; period++ {
			result := column.Crack(cipherbytes, period, candidate.Freq)
			crackStr := alphabet.DecodeString(result.Plaintext)

			score := float64(levenshtein.ComputeDistance(crackStr, candidate.Plaintext)) / float64(len(candidate.Plaintext))
			if bestScore < 0 || score < bestScore {
				bestScore = score
				bestPlaintext = candidate.Plaintext
			}
		}
	}

	if bestScore >= 0 && bestScore < scenarioAThreshold {
		return bestPlaintext, true
	}
	return "", false
}

// Package keylength ranks candidate key periods for a ciphertext by self-similarity:
// chunks of ciphertext taken at the true key period correlate more than chunks taken
// at an arbitrary period, which shows up as a lower bitwise Hamming distance between
// them. See Guess for the full algorithm and rationale.
package keylength

import (
	"math/bits"
	"sort"

	"github.com/montanaflynn/stats"
)

// LoBound and HiBound define the half-open period search range [LoBound, HiBound).
const (
	LoBound = 3
	HiBound = 120
)

// Candidate is one candidate period paired with its detrended, per-byte similarity
// score. Lower scores indicate a more likely key period.
type Candidate struct {
	Period int
	Score  float64
}

// Guess ranks every candidate period in [LoBound, HiBound) by how strongly the
// ciphertext repeats at that period, returning candidates sorted ascending by score
// (best first).
//
// The algorithm: for each candidate period p, split the ciphertext into
// non-overlapping chunks of length p (dropping any short trailing chunk) and sum the
// pairwise bitwise Hamming distance between every pair of chunks, divided by the
// chunk count. This raw score is mechanically biased toward larger p (fewer, richer
// chunks lower the Hamming sum), so a linear regression of raw(p) against p is used to
// detrend it: score(p) = ((raw(p) - b) + m*p) / p, where y = m*p + b is the fitted
// line. Dividing by p converts the detrended distance to a per-byte quantity so
// periods of different sizes remain comparable.
func Guess(ciphertext []byte) []Candidate {
	candidates := make([]Candidate, 0, HiBound-LoBound)
	series := make(stats.Series, 0, HiBound-LoBound)

	for p := LoBound; p < HiBound; p++ {
		raw := rawScore(ciphertext, p)
		candidates = append(candidates, Candidate{Period: p, Score: raw})
		series = append(series, stats.Coordinate{X: float64(p), Y: raw})
	}

	m, b, ok := fitLine(series)
	for i := range candidates {
		p := float64(candidates[i].Period)
		raw := candidates[i].Score
		if ok {
			candidates[i].Score = ((raw - b) + m*p) / p
		} else {
			// Degenerate regression (e.g. every raw score identical): fall back to
			// the undetrended per-byte score.
			candidates[i].Score = raw / p
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	return candidates
}

// rawScore computes the mean pairwise Hamming distance between the non-overlapping
// chunks of ciphertext at the given chunk size. If fewer than two full chunks fit,
// the raw score is defined to be 0.
func rawScore(ciphertext []byte, chunkSize int) float64 {
	numChunks := len(ciphertext) / chunkSize
	if numChunks < 2 {
		return 0
	}

	chunks := make([][]byte, numChunks)
	for i := 0; i < numChunks; i++ {
		chunks[i] = ciphertext[i*chunkSize : (i+1)*chunkSize]
	}

	var distance int
	for i := 0; i < numChunks; i++ {
		for j := i; j < numChunks; j++ {
			distance += hammingDistance(chunks[i], chunks[j])
		}
	}

	return float64(distance) / float64(numChunks)
}

// hammingDistance returns the bitwise Hamming distance between two equal-length byte
// slices.
func hammingDistance(a, b []byte) int {
	total := 0
	for i := range a {
		total += bits.OnesCount8(a[i] ^ b[i])
	}
	return total
}

// fitLine fits y = m*x + b to the given series via least-squares linear regression.
// ok is false if the regression could not be computed or is degenerate (every raw
// score equal), in which case callers should fall back to an undetrended ranking.
func fitLine(series stats.Series) (m, b float64, ok bool) {
	if len(series) < 2 {
		return 0, 0, false
	}

	allEqual := true
	for _, c := range series[1:] {
		if c.Y != series[0].Y {
			allEqual = false
			break
		}
	}
	if allEqual {
		return 0, 0, false
	}

	fitted, err := stats.LinearRegression(series)
	if err != nil || len(fitted) < 2 {
		return 0, 0, false
	}

	x0, y0 := fitted[0].X, fitted[0].Y
	x1, y1 := fitted[1].X, fitted[1].Y
	if x1 == x0 {
		return 0, 0, false
	}

	m = (y1 - y0) / (x1 - x0)
	b = y0 - m*x0
	return m, b, true
}

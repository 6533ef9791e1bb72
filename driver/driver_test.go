package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/ciphers"
	"github.com/larkspur-labs/polycrack/ciphers/schedulers"
	"github.com/larkspur-labs/polycrack/dict"
	"github.com/larkspur-labs/polycrack/freq"
	"github.com/larkspur-labs/polycrack/gen"
	"github.com/larkspur-labs/polycrack/prng"
)

func sampleWordlist() string {
	return "the quick brown fox jumps over lazy dog cat lion seal fish canary carp " +
		"shark words wishes pig pie sandle counter keyboard airplane fresh zebra " +
		"apple mango carrot forest river mountain cloud storm ocean desert island " +
		"valley meadow garden castle knight dragon wizard potion sword shield armor"
}

func TestCrackScenarioBExactRecovery(t *testing.T) {
	d := dict.New(sampleWordlist())
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	g := gen.New(d, prng.New(3, 5))
	plaintext := g.GenerateWords(300)

	key := []int{2, -1, 0, 4, -3, 1, 6}
	enc := ciphers.NewEncryptor(key, schedulers.RepeatingKey{}, prng.Default())
	ciphertext := enc.Encrypt(plaintext)

	recovered := Crack(ciphertext, bd, baseline, nil)
	assert.Equal(t, plaintext, recovered)
}

func TestCrackScenarioAReturnsKnownCandidate(t *testing.T) {
	d := dict.New(sampleWordlist())
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	candidateTexts := []string{
		"the quick brown fox jumps over the lazy dog",
		"a wizard casts a potion on the dragon knight",
		"the shark and the seal swim in the ocean",
		"the castle garden has a river and a meadow",
		"the pie and the cat sit by the keyboard",
		"a fresh zebra runs across the valley",
		"the forest hides a carp and a canary",
		"the storm crosses the desert island",
		"a sword and shield guard the mountain",
		"the airplane carries a counter and a sandle",
	}

	candidates := make([]Candidate, len(candidateTexts))
	for i, text := range candidateTexts {
		candidates[i] = NewCandidate(text)
	}

	actual := candidateTexts[2]
	key := []int{3, -2, 5, 11, -7, 0, 9}
	enc := ciphers.NewEncryptor(key, schedulers.RepeatingKey{}, prng.Default())
	ciphertext := enc.Encrypt(actual)

	recovered := Crack(ciphertext, bd, baseline, candidates)
	assert.Equal(t, actual, recovered)
}

func TestLoadCandidatesSkipsEmptyLines(t *testing.T) {
	blob := "hello world\n\nthe cat sat\r\n\n"
	candidates := LoadCandidates(blob)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "hello world", candidates[0].Plaintext)
	assert.Equal(t, "the cat sat", candidates[1].Plaintext)
}

func TestCrackWithKeylenLimitReturnsPlaintext(t *testing.T) {
	d := dict.New(sampleWordlist())
	bd := dict.FromDictionary(d)
	baseline := freq.FromDictionary(d.Words)

	g := gen.New(d, prng.New(9, 11))
	plaintext := g.GenerateWords(200)

	key := []int{1, 1, 1}
	enc := ciphers.NewEncryptor(key, schedulers.RepeatingKey{}, prng.Default())
	ciphertext := enc.Encrypt(plaintext)

	recovered := CrackWithKeylenLimit(ciphertext, bd, baseline, nil, 30)
	assert.NotEmpty(t, recovered)
}

package freq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/alphabet"
)

func TestFromBytesSumsToOne(t *testing.T) {
	d := FromBytes(alphabet.EncodeString("the quick brown fox jumps over the lazy dog"))
	var sum float64
	for _, v := range d.Values {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestFromBytesEmpty(t *testing.T) {
	d := FromBytes(nil)
	for _, v := range d.Values {
		assert.Equal(t, 0.0, v)
	}
}

func TestCompareIdentityAndSymmetry(t *testing.T) {
	a := FromDictionary([]string{"abc", "def", "ghi"})
	b := FromBytes(alphabet.EncodeString("abc def ghi"))

	assert.Equal(t, 0.0, Compare(a, a))
	assert.InDelta(t, Compare(a, b), Compare(b, a), 1e-12)
}

func TestFromDictionarySpaceCountsWords(t *testing.T) {
	d := FromDictionary([]string{"ab", "cd"})
	// 2 words -> 2 counted spaces out of (2+2+2)=6 total symbols.
	assert.InDelta(t, 2.0/6.0, d.Values[alphabet.Size-1], 1e-12)
}

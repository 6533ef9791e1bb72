package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFiltersAndSorts(t *testing.T) {
	d := New("Zebra apple\nmango3 apple  \t carrot")
	assert.Equal(t, []string{"apple", "carrot", "zebra"}, d.Words)
}

func TestNewDedups(t *testing.T) {
	d := New("abc abc abc def")
	assert.Equal(t, []string{"abc", "def"}, d.Words)
}

func TestNewEmpty(t *testing.T) {
	d := New("   \n\t  ")
	assert.Equal(t, 0, d.Len())
}

func TestNewHandlesNewlineAndSpaceSeparators(t *testing.T) {
	d := New("abc\ndef ghi\r\njkl")
	assert.Equal(t, []string{"abc", "def", "ghi", "jkl"}, d.Words)
}

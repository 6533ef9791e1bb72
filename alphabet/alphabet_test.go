package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	for ch := byte('a'); ch <= 'z'; ch++ {
		assert.Equal(t, ch, Decode(Encode(ch)))
	}
	assert.Equal(t, byte(' '), Decode(Encode(' ')))
}

func TestDecodeEncodeRoundtrip(t *testing.T) {
	for s := byte(0); s < Size; s++ {
		assert.Equal(t, s, Encode(Decode(s)))
	}
}

func TestEncodePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { Encode('A') })
	assert.Panics(t, func() { Encode('1') })
}

func TestDecodePanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { Decode(27) })
	assert.Panics(t, func() { Decode(200) })
}

func TestShiftRoundtrip(t *testing.T) {
	for s := byte(0); s < Size; s++ {
		for k := -40; k <= 40; k++ {
			assert.Equal(t, s, Shift(Shift(s, k), -k))
		}
	}
}

func TestShiftNegativeAndOutOfRange(t *testing.T) {
	assert.Equal(t, byte(0), Shift(1, -1))
	assert.Equal(t, byte(26), Shift(0, -1))
	assert.Equal(t, byte(0), Shift(0, Size))
	assert.Equal(t, byte(5), Shift(0, 5+3*Size))
}

func TestKeyReduceIdempotent(t *testing.T) {
	key := []int{-1, 0, 26, 27, -54, 100}
	KeyReduce(key)
	first := append([]int(nil), key...)
	KeyReduce(key)
	assert.Equal(t, first, key)
	for _, k := range key {
		assert.True(t, k >= 0 && k < Size)
	}
}

func TestEncodeStringDecodeString(t *testing.T) {
	s := "the quick brown fox"
	assert.Equal(t, s, DecodeString(EncodeString(s)))
}

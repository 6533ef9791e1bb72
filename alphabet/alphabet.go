// Package alphabet implements symbol encoding and modular shift arithmetic for the
// 27-symbol cipher alphabet used throughout polycrack: the lowercase letters a-z plus
// a single space symbol.
package alphabet

import "fmt"

// Size is the number of symbols in the alphabet: 'a'..'z' plus space.
const Size = 27

// spaceSymbol is the symbol value assigned to the space character.
const spaceSymbol = 26

// Encode maps a character in {a..z, ' '} to its symbol value in [0, Size).
//
// Encode panics if ch is outside the supported alphabet; callers at the system
// boundary (CLI input, dictionary files) are responsible for validating bytes
// before they reach this function.
func Encode(ch byte) byte {
	switch {
	case ch == ' ':
		return spaceSymbol
	case ch >= 'a' && ch <= 'z':
		return ch - 'a'
	default:
		panic(fmt.Sprintf("alphabet: character %q outside a-z/space", ch))
	}
}

// Decode maps a symbol value in [0, Size) back to its character.
//
// Decode panics if symbol is out of range.
func Decode(symbol byte) byte {
	switch {
	case symbol == spaceSymbol:
		return ' '
	case symbol < spaceSymbol:
		return 'a' + symbol
	default:
		panic(fmt.Sprintf("alphabet: symbol %d outside [0, %d)", symbol, Size))
	}
}

// EncodeString encodes a string of a-z/space characters into symbol bytes.
// It panics on the first character outside the alphabet, via Encode.
func EncodeString(s string) []byte {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Encode(s[i])
	}
	return out
}

// DecodeString decodes a slice of symbol bytes back into a string.
func DecodeString(symbols []byte) string {
	out := make([]byte, len(symbols))
	for i, s := range symbols {
		out[i] = Decode(s)
	}
	return string(out)
}

// Shift computes (symbol + amount) mod Size, where amount may be any signed integer,
// negative or otherwise out of [0, Size). The result is always in [0, Size).
func Shift(symbol byte, amount int) byte {
	reduced := ((amount % Size) + Size) % Size
	return byte((int(symbol) + reduced) % Size)
}

// KeyReduce maps every element of a signed key into [0, Size), in place, so that
// it can be used directly as a Shift amount. KeyReduce is idempotent: reducing an
// already-reduced key leaves it unchanged.
func KeyReduce(key []int) {
	for i, k := range key {
		key[i] = ((k % Size) + Size) % Size
	}
}

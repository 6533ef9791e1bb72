// Package schedulers implements the key-scheduling algorithms used by
// ciphers.Encryptor: pure functions of the ciphertext output index, the key length,
// and the plaintext length, that decide which key symbol (if any) shifts the next
// plaintext character.
package schedulers

// NextKey is the result of scheduling one output position: either a key index to
// shift by, or a request to inject a random, non-plaintext-consuming symbol.
type NextKey struct {
	Rand  bool
	Index int
}

// KeyIndex builds a NextKey that selects the key symbol at index.
func KeyIndex(index int) NextKey {
	return NextKey{Index: index}
}

// RandomInjection is the NextKey value requesting a random symbol injection.
var RandomInjection = NextKey{Rand: true}

// KeySchedule decides, for each ciphertext output position, which key symbol (if
// any) shifts the next plaintext symbol.
//
// index is the position being emitted to ciphertext, keyLength is the length of the
// key in use, and plaintextLength is the total plaintext length for this message.
type KeySchedule interface {
	Schedule(index, keyLength, plaintextLength int) NextKey
}

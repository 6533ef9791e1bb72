// Package ciphers implements the encryption primitive that the recovery pipeline is
// tested against: a polyalphabetic shift cipher whose key schedule is pluggable (see
// the schedulers sub-package) and which may inject random, non-plaintext-consuming
// symbols at scheduler-determined positions.
//
// This package is a collaborator to the cracker, not part of the cracker itself: the
// cracker depends only on the encryption contract (ciphertext over the 27-symbol
// alphabet, deterministic injection points). It exists so that the recovery pipeline
// can be exercised end-to-end in tests and in the worker-pool benchmarking harness.
package ciphers

import (
	"strings"

	"github.com/larkspur-labs/polycrack/alphabet"
	"github.com/larkspur-labs/polycrack/ciphers/schedulers"
	"github.com/larkspur-labs/polycrack/prng"
)

// Encryptor applies a shift cipher governed by a KeySchedule.
type Encryptor struct {
	key      []int
	schedule schedulers.KeySchedule
	rng      *prng.Rng
}

// NewEncryptor builds an Encryptor from a key (a copy of it is reduced into
// [0, alphabet.Size); the caller's slice is left unchanged), a key schedule, and an
// Rng used to generate injected symbols.
func NewEncryptor(key []int, schedule schedulers.KeySchedule, rng *prng.Rng) *Encryptor {
	reduced := append([]int(nil), key...)
	alphabet.KeyReduce(reduced)
	return &Encryptor{key: reduced, schedule: schedule, rng: rng}
}

// KeyLength returns the length of the encryptor's key.
func (e *Encryptor) KeyLength() int {
	return len(e.key)
}

// Encrypt enciphers plaintext (a-z and space only) into ciphertext over the same
// alphabet. At each output position the key schedule either selects a key-indexed
// shift (consuming the next plaintext symbol) or requests a random injection (which
// consumes no plaintext and instead emits a uniformly random symbol).
func (e *Encryptor) Encrypt(plaintext string) string {
	keylen := len(e.key)
	ptlen := len(plaintext)

	rng := *e.rng // copy, so every Encrypt call replays the same injection stream

	var out strings.Builder
	out.Grow(ptlen + ptlen/4)

	pt := []byte(plaintext)
	ptIndex := 0

	for ptIndex < len(pt) {
		next := e.schedule.Schedule(out.Len(), keylen, ptlen)
		if next.Rand {
			sym := byte(rng.Next() % alphabet.Size)
			out.WriteByte(alphabet.Decode(sym))
			continue
		}

		shift := e.key[next.Index]
		cipherSym := alphabet.Shift(alphabet.Encode(pt[ptIndex]), shift)
		out.WriteByte(alphabet.Decode(cipherSym))
		ptIndex++
	}

	return out.String()
}

// Decrypt inverts Encrypt. plaintextLength must equal the length of the plaintext
// originally passed to Encrypt: the scheduler needs it to reproduce the same
// sequence of key-index/injection decisions, and there is no way to recover it from
// ciphertext length alone when injections are in play.
func (e *Encryptor) Decrypt(ciphertext string, plaintextLength int) string {
	keylen := len(e.key)

	var out strings.Builder
	out.Grow(plaintextLength)

	ct := []byte(ciphertext)
	for index := 0; index < len(ct); index++ {
		next := e.schedule.Schedule(index, keylen, plaintextLength)
		if next.Rand {
			continue
		}

		shift := e.key[next.Index]
		plainSym := alphabet.Shift(alphabet.Encode(ct[index]), -shift)
		out.WriteByte(alphabet.Decode(plainSym))
	}

	return out.String()
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larkspur-labs/polycrack/ciphers/schedulers"
	"github.com/larkspur-labs/polycrack/workerpool"
)

func TestVectorRoundTripsThroughEncryptAndDecrypt(t *testing.T) {
	v := goldenVector{
		Key:       []int{3, -2, 5},
		Base:      workerpool.BaseDescriptor{Kind: schedulers.BaseRepeatingKey.String()},
		RngX:      1,
		RngY:      2,
		Plaintext: "hello world",
	}
	v.Ciphertext = v.encryptor().Encrypt(v.Plaintext)

	assert.NotEmpty(t, v.Ciphertext)
	assert.NotEqual(t, v.Plaintext, v.Ciphertext)

	recovered := v.encryptor().Decrypt(v.Ciphertext, len(v.Plaintext))
	assert.Equal(t, v.Plaintext, recovered)
}

func TestVectorGenerationIsDeterministic(t *testing.T) {
	build := func() goldenVector {
		v := goldenVector{
			Key:       []int{1, 2, 3, 4},
			Base:      workerpool.BaseDescriptor{Kind: schedulers.BaseLengthMod.String()},
			RngX:      7,
			RngY:      9,
			Plaintext: "the quick brown fox",
		}
		v.Ciphertext = v.encryptor().Encrypt(v.Plaintext)
		return v
	}

	first := build()
	second := build()
	assert.Equal(t, first.Ciphertext, second.Ciphertext)
}

func TestValidateGoldenDetectsTamperedCiphertext(t *testing.T) {
	v := goldenVector{
		Key:       []int{4, -8, 2},
		Base:      workerpool.BaseDescriptor{Kind: schedulers.BaseRepeatingKey.String()},
		RngX:      5,
		RngY:      6,
		Plaintext: "attack at dawn",
	}
	v.Ciphertext = v.encryptor().Encrypt(v.Plaintext)

	tampered := v
	tampered.Ciphertext = v.Ciphertext + "x"

	recomputed := tampered.encryptor().Encrypt(tampered.Plaintext)
	assert.NotEqual(t, tampered.Ciphertext, recomputed)
}

// Package varmor provides versioned armoring for arbitrary sequences of bytes.
//
// The armored form is free of whitespace, safe to embed in URLs (other than possibly
// its length) and safe to pass unescaped in a POSIX shell. workerpool uses it to turn
// a cipher-configuration Descriptor into a single opaque token that a failing attempt
// can log and later replay; the version prefix lets the descriptor wire format evolve
// without old tokens being silently misparsed.
package varmor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	magicPrefix = "polycrack"
	v1Magic     = "polycrack1:"
)

// Wrap armors a sequence of bytes, returning the resulting string.
func Wrap(body []byte) string {
	return v1Magic + base64.RawURLEncoding.EncodeToString(body)
}

// Unwrap decodes an armored string produced by Wrap.
//
// Error conditions include:
//
//   - The input is provably truncated.
//   - Base64 decoding failure.
//   - Input indicates a future version of the format that we do not support.
//   - Input does not appear to be the result of Wrap().
func Unwrap(armored string) ([]byte, error) {
	if len(armored) < len(v1Magic) {
		return nil, errors.New("input size smaller than magic marker; likely truncated")
	}

	if !strings.HasPrefix(armored, v1Magic) {
		if strings.HasPrefix(armored, magicPrefix) {
			return nil, errors.New("input claims to be polycrack-armored, but not a version we support")
		}
		return nil, errors.New("input unrecognized as polycrack-armored data")
	}

	body, err := base64.RawURLEncoding.DecodeString(armored[len(v1Magic):])
	if err != nil {
		return nil, fmt.Errorf("base64 decoding failed: %s", err)
	}

	return body, nil
}

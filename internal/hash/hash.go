// Package hash computes truncated SHA-1 digests.
//
// Truncation is textual: a digest of length n is the first n characters of the
// lowercase hex encoding, so every digest carries a whole number of 4-bit nibbles.
package hash

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
)

// MaxLength is the number of hex characters in a full SHA-1 digest.
const MaxLength = sha1.Size * 2

// DefaultLength is the truncation length used when none is given.
const DefaultLength = 12

// ErrInvalidLength is returned for a truncation length outside 1..MaxLength.
var ErrInvalidLength = errors.New("invalid digest length")

// EncodingError reports a candidate that cannot be encoded as ASCII.
type EncodingError struct {
	Input  string
	Offset int
	Rune   rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %q as ascii: rune %U at byte %d", e.Input, e.Rune, e.Offset)
}

// ValidateLength checks that length is a usable truncation length.
func ValidateLength(length int) error {
	if length < 1 || length > MaxLength {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidLength, length, MaxLength)
	}
	return nil
}

// Truncated returns the first length hex characters of the SHA-1 of candidate's
// ASCII bytes.
func Truncated(candidate string, length int) (string, error) {
	for i, r := range candidate {
		if r > 0x7f {
			return "", &EncodingError{Input: candidate, Offset: i, Rune: r}
		}
	}
	return TruncatedBytes([]byte(candidate), length)
}

// TruncatedBytes hashes data directly, without any encoding step.
func TruncatedBytes(data []byte, length int) (string, error) {
	if err := ValidateLength(length); err != nil {
		return "", err
	}
	return Full(data)[:length], nil
}

// Full returns the complete lowercase hex SHA-1 of data.
func Full(data []byte) string {
	h := sha1.Sum(data)
	return hex.EncodeToString(h[:])
}

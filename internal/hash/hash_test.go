package hash

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFull_KnownVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Full([]byte(tt.input)))
		})
	}
}

func TestTruncated_IsPrefixOfFull(t *testing.T) {
	inputs := []string{"", "4Q", "hello world", "ZZZZ"}

	for _, in := range inputs {
		full := Full([]byte(in))
		for n := 1; n <= MaxLength; n++ {
			got, err := Truncated(in, n)
			require.NoError(t, err)
			assert.Len(t, got, n)
			assert.Equal(t, full[:n], got, "input %q length %d", in, n)
		}
	}
}

func TestTruncated_Monotonic(t *testing.T) {
	for n := 1; n <= MaxLength; n++ {
		short, err := Truncated("4Q", n)
		require.NoError(t, err)
		for m := n; m <= MaxLength; m++ {
			long, err := Truncated("4Q", m)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(long, short), "%q is not a prefix of %q", short, long)
		}
	}
}

func TestTruncated_Lowercase(t *testing.T) {
	got, err := Truncated("abc", MaxLength)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(got), got)
}

func TestTruncated_InvalidLength(t *testing.T) {
	for _, n := range []int{-1, 0, MaxLength + 1} {
		_, err := Truncated("abc", n)
		assert.ErrorIs(t, err, ErrInvalidLength, "length %d", n)
	}
}

func TestTruncated_NonASCII(t *testing.T) {
	_, err := Truncated("abé", DefaultLength)
	require.Error(t, err)

	var encErr *EncodingError
	require.True(t, errors.As(err, &encErr))
	assert.Equal(t, 2, encErr.Offset)
	assert.Equal(t, 'é', encErr.Rune)
}

func TestTruncatedBytes_MatchesString(t *testing.T) {
	fromString, err := Truncated("4Q", DefaultLength)
	require.NoError(t, err)

	fromBytes, err := TruncatedBytes([]byte("4Q"), DefaultLength)
	require.NoError(t, err)

	assert.Equal(t, fromString, fromBytes)
}

func TestTruncatedBytes_RawBytes(t *testing.T) {
	// Raw bytes are hashed as-is, even when they are not ASCII.
	got, err := TruncatedBytes([]byte{0xff, 0x00}, 8)
	require.NoError(t, err)
	assert.Len(t, got, 8)
}

func TestTruncated_Deterministic(t *testing.T) {
	first, err := Truncated("same input", DefaultLength)
	require.NoError(t, err)
	second, err := Truncated("same input", DefaultLength)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("super-secret", 30*time.Minute)

	tok, err := codec.Issue("user-123")
	require.NoError(t, err)

	gotUserID, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", gotUserID)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", -1*time.Second)

	tok, err := codec.Issue("u1")
	require.NoError(t, err)

	_, err = codec.Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenCodec("right-secret", time.Hour).Issue("u2")
	require.NoError(t, err)

	_, err = NewTokenCodec("wrong-secret", time.Hour).Verify(tok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("secret", time.Hour)
	tok, err := codec.Issue("u3")
	require.NoError(t, err)

	// Flip one byte of the signature segment.
	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("k", time.Hour)
	_, err := codec.Verify("not.a.jwt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	// A token still inside its window verifies; one just past it fails
	// with the expiry class, not the signature class.
	valid, err := NewTokenCodec("k", 2*time.Second).Issue("u4")
	require.NoError(t, err)
	_, err = NewTokenCodec("k", 2*time.Second).Verify(valid)
	assert.NoError(t, err)

	expired, err := NewTokenCodec("k", -time.Second).Issue("u4")
	require.NoError(t, err)
	_, err = NewTokenCodec("k", -time.Second).Verify(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

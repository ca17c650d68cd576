package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "learnapp-test"
)

// TestGenerateJWTToken_RoundTrip verifies that a freshly issued token parses
// back into the same identity claims.
func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.Claims.ID)
	assert.Equal(t, "a@x.com", parsed.Claims.Email)
	assert.Empty(t, parsed.Claims.Role)
}

// TestGenerateJWTToken_NoExpiry verifies that a zero duration issues a token
// without an exp claim that still validates.
func TestGenerateJWTToken_NoExpiry(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, "b@x.com", 0, testSignKey)
	require.NoError(t, err)
	assert.Nil(t, token.Claims.ExpiresAt)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.Claims.ID)
}

// TestGenerateJWTToken_InvalidParams verifies that an empty sign key or a zero
// user ID is rejected before signing.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken(testIssuer, 42, "a@x.com", time.Hour, "")
	assert.Error(t, err)

	_, err = GenerateJWTToken(testIssuer, 0, "a@x.com", time.Hour, testSignKey)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongKey verifies that a token signed with a
// different secret fails validation.
func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "other-key", testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_TamperedSignature verifies that flipping a byte
// in the signature segment invalidates the token.
func TestValidateAndParseJWTToken_TamperedSignature(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token is
// rejected.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, "a@x.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_WrongIssuer verifies the issuer claim check.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("other-service", 42, "a@x.com", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Malformed verifies that structural garbage is
// rejected.
func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.jwt", testSignKey, testIssuer)
	assert.Error(t, err)

	_, err = ValidateAndParseJWTToken("", testSignKey, testIssuer)
	assert.Error(t, err)
}

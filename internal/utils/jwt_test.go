package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "expense-tracker-test"
	testSignKey = "unit-test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "alice", time.Hour, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, "alice", token.Username)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		signKey  string
	}{
		{"empty issuer", "", "alice", time.Hour, testSignKey},
		{"empty username", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, "alice", 0, testSignKey},
		{"empty sign key", testIssuer, "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "bob", time.Hour, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "bob", parsed.Username)
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "bob", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "bob", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, "bob", time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	assert.Error(t, err)
}

package auth

import (
	"hr-chat/errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateOtpCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    string
		wantErr bool
	}{
		{"six digits", "123456", "123456", false},
		{"surrounding spaces are trimmed", "  654321 ", "654321", false},
		{"letter inside", "12a456", "", true},
		{"too short", "12345", "", true},
		{"too long", "1234567", "", true},
		{"signed number", "-12345", "", true},
		{"decimal number", "1.2345", "", true},
		{"empty", "", "", true},
		{"blank", "      ", "", true},
		{"non ascii digits", "١٢٣٤٥٦", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := ValidateOtpCode(tt.code)
			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidOtpFormat)
				req.Empty(got)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestValidateMessage(t *testing.T) {
	req := require.New(t)
	req.NoError(ValidateMessage("What is my leave balance?"))
	req.ErrorIs(ValidateMessage(""), errors.ErrEmptyMessage)
	req.ErrorIs(ValidateMessage(" \t\n "), errors.ErrEmptyMessage)
}

func TestGenerateOtp(t *testing.T) {
	req := require.New(t)
	for i := 0; i < 20; i++ {
		code, err := GenerateOtp()
		req.NoError(err)
		_, err = ValidateOtpCode(code)
		req.NoError(err)
	}
}

func TestHashAndCompareOtp(t *testing.T) {
	t.Run("should match only the issued code", func(t *testing.T) {
		req := require.New(t)

		hash, err := HashOtp("user-1", "482913", DefaultHashParams)
		req.NoError(err)
		req.True(strings.HasPrefix(hash, "$argon2id$"))

		match, err := CompareOtp("user-1", "482913", hash)
		req.NoError(err)
		req.True(match)

		match, err = CompareOtp("user-1", "000000", hash)
		req.NoError(err)
		req.False(match)
	})

	t.Run("should not verify the code for another user", func(t *testing.T) {
		req := require.New(t)

		hash, err := HashOtp("user-1", "482913", DefaultHashParams)
		req.NoError(err)

		match, err := CompareOtp("user-2", "482913", hash)
		req.NoError(err)
		req.False(match)
	})

	t.Run("should verify with the costs recorded in the hash", func(t *testing.T) {
		req := require.New(t)
		cheap := HashParams{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, KeyLength: 16}

		hash, err := HashOtp("user-1", "482913", cheap)
		req.NoError(err)
		req.Contains(hash, "m=8192,t=1,p=1")

		match, err := CompareOtp("user-1", "482913", hash)
		req.NoError(err)
		req.True(match)
	})

	t.Run("should reject a malformed hash", func(t *testing.T) {
		req := require.New(t)

		_, err := CompareOtp("user-1", "482913", "not-a-hash")
		req.ErrorIs(err, ErrMalformedOtpHash)

		_, err = CompareOtp("user-1", "482913", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5")
		req.ErrorIs(err, ErrMalformedOtpHash)
	})
}

func TestTokenIssuer(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("session-key")
	req.NoError(err)

	claims, err := issuer.Validate(token)
	req.NoError(err)
	req.Equal("session-key", claims.SessionKey)

	_, err = NewTokenIssuer("other-secret", time.Hour).Validate(token)
	req.Error(err)

	expired := NewTokenIssuer("test-secret", -time.Minute)
	old, err := expired.Issue("session-key")
	req.NoError(err)
	_, err = issuer.Validate(old)
	req.Error(err)
}

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	OtpDigits     = 6
	otpSaltLength = 16
)

var ErrMalformedOtpHash = errors.New("malformed otp hash")

// HashParams are the Argon2id costs of a stored passcode. A passcode expires within
// minutes, so DefaultHashParams stays far below password-grade costs.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	KeyLength   uint32
}

var DefaultHashParams = HashParams{Memory: 16 * 1024, Iterations: 2, Parallelism: 2, KeyLength: 32}

// GenerateOtp draws a six digit passcode from crypto/rand.
func GenerateOtp() (string, error) {
	var sb strings.Builder
	for i := 0; i < OtpDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return sb.String(), nil
}

// HashOtp hashes a passcode bound to the user it was issued to, so a stored hash
// never verifies a code submitted for another user.
func HashOtp(userID, code string, params HashParams) (string, error) {
	salt := make([]byte, otpSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := params.derive(userID, code, salt)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s", argon2.Version,
		params.Memory, params.Iterations, params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt), base64.RawStdEncoding.EncodeToString(key)), nil
}

// CompareOtp checks a submitted passcode in constant time, with the costs recorded in
// the hash rather than the current defaults.
func CompareOtp(userID, code, encoded string) (bool, error) {
	params, salt, key, err := parseOtpHash(encoded)
	if err != nil {
		return false, err
	}
	candidate := params.derive(userID, code, salt)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func (p HashParams) derive(userID, code string, salt []byte) []byte {
	return argon2.IDKey([]byte(userID+":"+code), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

func parseOtpHash(encoded string) (HashParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return HashParams{}, nil, nil, ErrMalformedOtpHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return HashParams{}, nil, nil, fmt.Errorf("%w: version %q", ErrMalformedOtpHash, parts[2])
	}
	var params HashParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return HashParams{}, nil, nil, fmt.Errorf("%w: %w", ErrMalformedOtpHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return HashParams{}, nil, nil, fmt.Errorf("%w: salt: %w", ErrMalformedOtpHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return HashParams{}, nil, nil, fmt.Errorf("%w: key: %w", ErrMalformedOtpHash, err)
	}
	params.KeyLength = uint32(len(key))
	return params, salt, key, nil
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what the dev backend signs into the session id it hands out.
// Clients treat the resulting string as opaque.
type SessionClaims struct {
	SessionKey string `json:"session_key"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTokenIssuer(secret string, duration time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), duration: duration}
}

// Issue creates a signed session id for the given server-side session key.
func (i TokenIssuer) Issue(sessionKey string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		SessionKey: sessionKey,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "hr-chat",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Validate parses the session id and checks its signature and expiration.
func (i TokenIssuer) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type GenerateJWTDto struct {
	Method  jwt.SigningMethod
	Secret  []byte
	Subject string
	Expiry  time.Duration
}

// GenerateJWT issues a signed bearer token carrying the subject and a
// fixed expiry.
func GenerateJWT(dto GenerateJWTDto) (string, error) {
	claims := jwt.MapClaims{
		"sub": dto.Subject,
		"exp": time.Now().Add(dto.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(dto.Method, claims)
	return token.SignedString(dto.Secret)
}

// DecodeJWT verifies the signature and expiry and returns the claims.
// Malformed, expired and badly-signed tokens all fail the same way.
func DecodeJWT(token string, secret []byte) (jwt.MapClaims, error) {
	parsedToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

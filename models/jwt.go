package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWT = struct {
	SESSION_COOKIE_NAME string
	SCOPE               string
}{
	SESSION_COOKIE_NAME: "picker_session",
	SCOPE:               "picker",
}

type JWTClaims struct {
	SessionID string `json:"sessionId"`
	Scope     string `json:"scope"`
	jwt.RegisteredClaims
}

// NewSessionToken signs an HS256 token binding the cookie to session.
func NewSessionToken(session Session, secret string) (string, error) {
	claims := JWTClaims{
		SessionID: session.SessionID,
		Scope:     JWT.SCOPE,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.SessionID,
			ExpiresAt: jwt.NewNumericDate(session.Expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error signing session token -> %w", err)
	}
	return signed, nil
}

func ValidateSessionToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || claims.Scope != JWT.SCOPE || claims.SessionID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

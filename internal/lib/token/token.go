// Package token signs and verifies the bearer credentials admins present
// on protected routes.
//
// Tokens are HS256 JWTs carrying the admin id and an explicit is_admin
// capability claim. There is a single role today, but the capability is a
// claim rather than an assumption so future roles don't force a token
// format change.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid covers every way a presented token can fail verification:
// malformed, wrong signature, expired, or missing claims. Callers map it
// to a single 401 so the reasons stay indistinguishable to clients.
var ErrInvalid = errors.New("invalid or expired token")

// Claims is the JWT payload for an admin credential.
type Claims struct {
	AdminID string `json:"admin_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Sign issues a credential for the given admin, valid for ttl.
func Sign(secret, adminID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID: adminID,
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Parse verifies a presented credential and returns its claims.
//
// Verification pins the signing method to HMAC: a token claiming any other
// algorithm (including "none") is rejected outright.
func Parse(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalid
	}

	if claims.AdminID == "" {
		return nil, ErrInvalid
	}

	return claims, nil
}

// Package auth holds the authentication core: the token codec that mints and
// validates signed session tokens, bcrypt credential hashing, and the
// authenticator that checks login credentials against the admin store.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/vehicle-registry/internal/model"
)

// ErrInvalidToken is returned by Decode for every failure mode: bad
// signature, expired token or malformed input. Callers never learn which one
// it was, so the network boundary leaks nothing about validation internals.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity carried by a session token.
type Claims struct {
	Email string
	Role  model.Role
}

// TokenCodec mints and validates HS256-signed session tokens. The signing
// secret and token lifetime are fixed at construction; the codec reads no
// ambient state and is safe for concurrent use.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the given signing secret and lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Mint signs a token for the given identity and returns it together with its
// expiry. The role is duplicated under the legacy "cargo" claim name so that
// clients of the previous API keep working.
func (tc *TokenCodec) Mint(email string, role model.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(tc.ttl)
	claims := jwt.MapClaims{
		"email": email,
		"role":  role.String(),
		"cargo": role.String(),
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Decode parses and verifies a token, returning its identity claims. The
// signing method is pinned to HMAC; expiry is checked by the parser.
func (tc *TokenCodec) Decode(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	email, _ := mc["email"].(string)
	roleStr, _ := mc["role"].(string)
	role, err := model.ParseRole(roleStr)
	if email == "" || err != nil {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Email: email, Role: role}, nil
}

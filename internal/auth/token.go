// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package auth implements the role check as stateless HS256 tokens.
// Tokens are minted out of band (operator tooling, tests) and carried
// in a cookie or bearer header; there is no login flow in this system.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the elevated role required for all write operations
// except comment creation.
const RoleAdmin = "admin"

// CookieName is the cookie the browser carries the token in.
const CookieName = "kronika_token"

// DefaultTTL is the lifetime of freshly minted tokens.
const DefaultTTL = 24 * time.Hour

// Caller identifies the authenticated requester.
type Caller struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the caller holds the admin role.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// claims is the token payload: standard registered claims plus a role.
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewToken mints a signed token for the given subject and role.
func NewToken(secret, subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a token and returns the caller it identifies.
// Expired, malformed or wrongly signed tokens are all an error.
func ParseToken(secret, tokenString string) (*Caller, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return &Caller{Subject: c.Subject, Role: c.Role}, nil
}

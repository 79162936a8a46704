// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"kronika/internal/auth"
)

// contextKey is an unexported type for context keys to prevent
// collisions.
type contextKey string

// callerKey is the context key for the authenticated caller.
const callerKey contextKey = "caller"

// LoadCaller verifies the role token from the request (cookie or
// bearer header) and stores the caller in the request context. It does
// NOT enforce authentication — an invalid or missing token just leaves
// the request anonymous.
func LoadCaller(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := auth.ParseToken(secret, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin returns 403 unless the caller holds the admin role.
// It runs before any handler logic, so a denied request causes no
// service or store call. Must be applied after LoadCaller.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !CallerFromCtx(r.Context()).IsAdmin() {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CallerFromCtx extracts the caller from the request context. Returns
// nil for anonymous requests.
func CallerFromCtx(ctx context.Context) *auth.Caller {
	caller, _ := ctx.Value(callerKey).(*auth.Caller)
	return caller
}

// tokenFromRequest reads the role token from the auth cookie, falling
// back to an Authorization bearer header.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

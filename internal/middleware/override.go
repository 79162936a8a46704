// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride promotes a POST carrying a _method form field to the
// verb it names. HTML forms can only submit GET and POST, yet the edit
// and delete routes are registered as PUT and DELETE.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// PostFormValue parses and caches the body, so downstream
			// handlers still see the remaining form fields.
			switch strings.ToUpper(r.PostFormValue("_method")) {
			case http.MethodPut:
				r.Method = http.MethodPut
			case http.MethodDelete:
				r.Method = http.MethodDelete
			}
		}
		next.ServeHTTP(w, r)
	})
}

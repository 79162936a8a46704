// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers. They follow a common
// shape: load the target entity or 404, bind and validate input, call
// a service, then flash a notice and redirect — or re-render the form
// with field errors.
package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"kronika/internal/flash"
	"kronika/internal/models"
)

// idParam reads the {id} route parameter. The router's pattern only
// admits positive integers, so a parse failure means the handler was
// reached outside its route and is treated as not found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// queryInt reads an integer query parameter, falling back when absent
// or malformed.
func queryInt(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return v
}

// queryInt64 reads an int64 query parameter, zero when absent or
// malformed.
func queryInt64(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// fieldErrors unwraps a ValidationError into the per-field message map
// the form templates consume. Returns nil, false for any other error.
func fieldErrors(err error) (map[string]string, bool) {
	var v *models.ValidationError
	if errors.As(err, &v) {
		return v.Fields, true
	}
	return nil, false
}

// notice queues a flash message, logging instead of failing the
// request when the channel is unavailable.
func notice(fl *flash.Store, w http.ResponseWriter, r *http.Request, kind, message string) {
	if fl == nil {
		return
	}
	if err := fl.Add(r.Context(), w, r, kind, message); err != nil {
		slog.Warn("flash notice dropped", "error", err)
	}
}

// pageURL builds a list URL for the given page, preserving an optional
// category filter.
func pageURL(base string, page int, categoryID int64) string {
	url := fmt.Sprintf("%s?page=%d", base, page)
	if categoryID != 0 {
		url += fmt.Sprintf("&filters_category_id=%d", categoryID)
	}
	return url
}

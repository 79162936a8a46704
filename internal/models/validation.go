// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package models defines the Category, Article and Comment records and
// their field constraints. Validation is explicit — services call
// Validate before handing an entity to a store, so the data shape stays
// independent of persistence details.
package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError reports constraint violations per field. Field names
// match the form input names used by the handlers.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a violation for a field, keeping the first message only.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// orNil returns nil when no violation was recorded, so callers can
// return the result directly.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// checkLength validates a required text field against rune-count bounds.
// max <= 0 means unbounded.
func checkLength(e *ValidationError, field, value string, min, max int) {
	value = strings.TrimSpace(value)
	if value == "" {
		e.Add(field, "is required")
		return
	}
	n := utf8.RuneCountInString(value)
	if n < min {
		e.Add(field, fmt.Sprintf("must be at least %d characters", min))
		return
	}
	if max > 0 && n > max {
		e.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

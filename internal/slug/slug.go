// Copyright (c) 2026 Kronika contributors.
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug derivation from article
// titles and category names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter,
	// digit, space or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Article test, 2026!" → "article-test-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// GenerateMax derives a slug and clamps it to max bytes, trimming any
// trailing hyphen left by the cut. Slug columns have the same length
// limits as their source fields.
func GenerateMax(s string, max int) string {
	result := Generate(s)
	if max > 0 && len(result) > max {
		result = strings.TrimRight(result[:max], "-")
	}
	return result
}

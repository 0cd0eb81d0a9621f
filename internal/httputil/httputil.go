// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength       = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	WildcardChar           = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
	MinStatusCodeFirstChar = '1' // Minimum first digit for codes and wildcard patterns
	MaxStatusCodeFirstChar = '5' // Maximum first digit for codes and wildcard patterns
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// IsStatusCodeKey checks if s fully matches the OpenAPI response key grammar
// [1-5](XX|[0-9]{2}). Numeric codes 100-599 and the wildcard ranges 1XX-5XX
// are accepted. "default" is not a status code key; it has its own slot.
func IsStatusCodeKey(s string) bool {
	if len(s) != StatusCodeLength {
		return false
	}
	if s[0] < MinStatusCodeFirstChar || s[0] > MaxStatusCodeFirstChar {
		return false
	}
	if s[1] == WildcardChar && s[2] == WildcardChar {
		return true
	}
	return isDigit(s[1]) && isDigit(s[2])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	// mime.ParseMediaType accepts a bare token, so require type/subtype first.
	base, _, _ := strings.Cut(mediaType, ";")
	typ, sub, ok := strings.Cut(strings.TrimSpace(base), "/")
	if !ok || typ == "" || sub == "" || typ == "*" {
		return false
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}

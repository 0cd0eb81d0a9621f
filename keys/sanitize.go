package keys

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SanitizeComponentName turns an arbitrary label into a string that matches
// the ComponentName grammar. Words separated by spaces, slashes or other
// punctuation are joined with their first letter title-cased, and any rune
// outside [A-Za-z0-9._-] is dropped:
//
//	"user profile" -> "UserProfile"
//	"models/pet"   -> "ModelsPet"
//	"pkg.Type"     -> "Pkg.Type"
//
// The result may be empty when s has no usable characters.
func SanitizeComponentName(s string) string {
	// Casers are stateful; one per call keeps this safe for concurrent use.
	titleCaser := cases.Title(language.English, cases.NoLower)

	words := strings.FieldsFunc(s, func(r rune) bool {
		return !isNameRune(r) && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	b.Grow(len(s))
	for _, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		head := titleCaser.String(string(first))
		for _, r := range head + word[size:] {
			if isNameRune(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

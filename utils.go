package woordenlijst

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Preview returns at most limit characters of s, appending "..." when
// the text was truncated. Truncation counts runes, not bytes.
func Preview(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}

// IsValidSlotName validates a configured slot file name. The name must
// be a single path segment: no separators, no traversal, no control
// characters, valid UTF-8.
func IsValidSlotName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	if strings.ContainsAny(name, `/\?#~`) {
		return false
	}

	if !utf8.ValidString(name) {
		return false
	}

	for _, r := range name {
		if r == 0 || r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}

package names

import (
	"strings"
	"unicode"
)

// separators commonly found inside real names; stripped before checking
// that a value is alphabetic.
const nameSeparators = " ,.-'*"

// IsNameLike reports whether a value plausibly represents a person's name.
// It is a heuristic filter for column discovery, not a validator: values
// shorter than 2 or longer than 100 characters are rejected, the value
// minus common separators must be purely alphabetic, "Last, First" values
// need both halves non-empty and alphabetic, and space-delimited values
// need every token alphabetic once periods, apostrophes and hyphens are
// stripped.
func IsNameLike(value string) bool {
	v := strings.TrimSpace(value)
	if len(v) < 2 || len(v) > 100 {
		return false
	}

	if !isAlpha(stripChars(v, nameSeparators)) {
		return false
	}

	// "Last, First" format.
	if strings.Count(v, ",") == 1 {
		parts := strings.SplitN(v, ",", 2)
		last := strings.TrimSpace(parts[0])
		first := strings.TrimSpace(parts[1])
		return last != "" && first != "" &&
			isAlpha(stripChars(last, " ")) &&
			isAlpha(stripChars(first, " "))
	}

	// "First Last" or "First Middle Last" format.
	for _, word := range strings.Fields(v) {
		if !isAlpha(stripChars(word, ".'-")) {
			return false
		}
	}
	return true
}

// stripChars removes every occurrence of the given characters from s.
func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}

// isAlpha reports whether s is non-empty and entirely letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

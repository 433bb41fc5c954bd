// Package names canonicalizes raw person-name strings for comparison and
// provides the heuristic used to decide whether an arbitrary cell value
// plausibly holds a name. Both are building blocks for identity-column
// discovery and fuzzy matching; neither attempts to be a grammar for names.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser applies per-word title casing. cases.Caser is not safe for
// concurrent use, so each call gets its own.
func titleCaser() cases.Caser {
	return cases.Title(language.English)
}

// Honorific prefixes and generational suffixes stripped during
// normalization. Compared against whole tokens with trailing punctuation
// removed, case-insensitively.
var (
	prefixTokens = map[string]bool{
		"mr":   true,
		"mrs":  true,
		"ms":   true,
		"dr":   true,
		"prof": true,
	}
	suffixTokens = map[string]bool{
		"jr":  true,
		"sr":  true,
		"ii":  true,
		"iii": true,
		"iv":  true,
	}
)

// Normalize canonicalizes a raw name for comparison: whitespace is trimmed
// and collapsed, each word is title-cased, and honorific prefixes (mr.,
// mrs., ms., dr., prof.) and generational suffixes (jr., sr., ii, iii, iv)
// are dropped as whole tokens. Empty or blank input normalizes to "".
// Normalize is idempotent.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	caser := titleCaser()
	words := strings.Fields(strings.ToLower(s))
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		token := strings.TrimRight(w, ".,")
		if token == "" {
			continue
		}
		if prefixTokens[token] || suffixTokens[token] {
			continue
		}
		cleaned = append(cleaned, caser.String(token))
	}

	return strings.Join(cleaned, " ")
}

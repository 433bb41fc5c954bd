package reconcile

import (
	"strings"
)

// exportPrefixes are artifacts the form extractor leaves on address values
// ("​:selected: 123 Main St"). Stripped before any comparison.
var exportPrefixes = []string{
	":selected:", "selected:",
	":choice:", "choice:",
	":option:", "option:",
	":address:", "address:",
}

// localeSuffixes are trailing fragments that never change which address a
// value denotes. Checked longest-first against the lower-cased value.
var localeSuffixes = []string{
	", united states", " united states", " usa", " us",
	", mn", " mn", ", minnesota", " minnesota",
}

// directionalAbbrev collapses spelled-out directions to single letters.
var directionalAbbrev = map[string]string{
	" north ": " n ",
	" south ": " s ",
	" east ":  " e ",
	" west ":  " w ",
}

// streetTypeAbbrev collapses street-type words to their postal
// abbreviations. Applied as suffix-style replacements so end-of-string
// occurrences match too.
var streetTypeAbbrev = map[string]string{
	" street":    " st",
	" avenue":    " ave",
	" road":      " rd",
	" drive":     " dr",
	" boulevard": " blvd",
	" lane":      " ln",
	" court":     " ct",
	" circle":    " cir",
	" place":     " pl",
}

// expandedAbbrev is the reverse direction, used when cleaning a display
// value: abbreviations are expanded so the stored value reads naturally.
var expandedAbbrev = map[string]string{
	" N ":    " North ",
	" S ":    " South ",
	" E ":    " East ",
	" W ":    " West ",
	" St ":   " Street ",
	" Ave ":  " Avenue ",
	" Rd ":   " Road ",
	" Dr ":   " Drive ",
	" Blvd ": " Boulevard ",
	" Ln ":   " Lane ",
	" Ct ":   " Court ",
	" Cir ":  " Circle ",
	" Pl ":   " Place ",
}

// CleanAddress prepares an address value for storage: extractor prefixes
// are removed, whitespace is collapsed, and common abbreviations are
// expanded to full words.
func CleanAddress(value string) string {
	addr := strings.TrimSpace(value)
	if addr == "" {
		return ""
	}

	lower := strings.ToLower(addr)
	for _, prefix := range exportPrefixes {
		if strings.HasPrefix(lower, prefix) {
			addr = strings.TrimSpace(addr[len(prefix):])
			break
		}
	}

	// Pad so abbreviations at either end of the value still match.
	addr = " " + strings.Join(strings.Fields(addr), " ") + " "

	for abbrev, full := range expandedAbbrev {
		addr = strings.ReplaceAll(addr, abbrev, full)
		addr = strings.ReplaceAll(addr, strings.ToLower(abbrev), strings.ToLower(full))
		addr = strings.ReplaceAll(addr, strings.ToUpper(abbrev), strings.ToUpper(full))
	}

	return strings.TrimSpace(addr)
}

// normalizeAddress aggressively canonicalizes an address for equality
// checks: lower-case, locale suffixes stripped, directions and street
// types abbreviated, punctuation removed, whitespace collapsed.
func normalizeAddress(address string) string {
	addr := strings.ToLower(strings.TrimSpace(address))
	if addr == "" {
		return ""
	}

	for _, suffix := range localeSuffixes {
		if strings.HasSuffix(addr, suffix) {
			addr = strings.TrimSpace(addr[:len(addr)-len(suffix)])
		}
	}

	for full, abbrev := range directionalAbbrev {
		addr = strings.ReplaceAll(addr, full, abbrev)
	}
	for full, abbrev := range streetTypeAbbrev {
		addr = strings.ReplaceAll(addr, full, abbrev)
	}

	addr = strings.ReplaceAll(addr, ",", " ")
	addr = strings.ReplaceAll(addr, ".", "")
	return strings.Join(strings.Fields(addr), " ")
}

// AddressesEquivalent reports whether two address values denote the same
// place after aggressive normalization. Beyond exact equality, the
// house-number + street prefix of one address contained in the other also
// counts as equivalent, which tolerates a missing unit, city or state.
// That containment rule can false-positive on short or generic street
// names; this is an inherited heuristic, kept deliberately. The check is
// symmetric.
func AddressesEquivalent(a, b string) bool {
	na := normalizeAddress(a)
	nb := normalizeAddress(b)

	if na == nb {
		return true
	}
	if na == "" || nb == "" {
		return false
	}

	partsA := strings.Fields(na)
	partsB := strings.Fields(nb)
	if len(partsA) < 2 || len(partsB) < 2 {
		return false
	}

	// House number + street name + street type.
	prefixA := strings.Join(firstN(partsA, 3), " ")
	prefixB := strings.Join(firstN(partsB, 3), " ")

	if prefixA == prefixB {
		return true
	}
	return strings.Contains(nb, prefixA) || strings.Contains(na, prefixB)
}

func firstN(parts []string, n int) []string {
	if len(parts) < n {
		return parts
	}
	return parts[:n]
}

// Package match scores the similarity of two person names on a 0-100 scale.
// A single string metric fails on the common real-world variants: name-order
// differences ("Smith, John" vs "John Smith") or partial names (one roster
// carries a middle name, the other does not). The matcher therefore computes
// several complementary scores and keeps the best one, which covers those
// variants without format-specific branching.
package match

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/routeworks/rosterlink/pkg/names"
)

// Score computes the similarity of two names on a 0-100 scale. Both inputs
// are normalized first; if either normalizes to empty the score is 0. The
// result is the maximum of four strategies: direct character-level
// similarity, word-order-insensitive similarity, set-based token
// similarity, and substring-containment similarity.
func Score(a, b string) int {
	na := names.Normalize(a)
	nb := names.Normalize(b)
	if na == "" || nb == "" {
		return 0
	}

	best := ratio(na, nb)
	if s := tokenSortRatio(na, nb); s > best {
		best = s
	}
	if s := tokenSetRatio(na, nb); s > best {
		best = s
	}
	if s := partialRatio(na, nb); s > best {
		best = s
	}
	return best
}

// Match reports whether two names are similar enough to be considered the
// same person at the given threshold (0-100), along with the score used for
// the decision. Match is monotonic in the threshold: any pair that matches
// at t also matches at every t' <= t.
func Match(a, b string, threshold int) (bool, int) {
	score := Score(a, b)
	if score == 0 {
		return false, 0
	}
	return score >= threshold, score
}

// ratio is the direct character-level similarity: normalized Levenshtein
// distance over the longer input, scaled to 0-100.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return int(float64(longer-dist) / float64(longer) * 100)
}

// tokenSortRatio compares the inputs with their words sorted, making the
// score insensitive to word order.
func tokenSortRatio(a, b string) int {
	return ratio(sortedTokens(a), sortedTokens(b))
}

// tokenSetRatio compares around the shared token set, which tolerates one
// side carrying extra tokens (middle names, double surnames).
func tokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)

	var common, onlyA, onlyB []string
	for tok := range setA {
		if setB[tok] {
			common = append(common, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range setB {
		if !setA[tok] {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(common, " ")
	combinedA := strings.TrimSpace(base + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(base + " " + strings.Join(onlyB, " "))

	best := ratio(base, combinedA)
	if s := ratio(base, combinedB); s > best {
		best = s
	}
	if s := ratio(combinedA, combinedB); s > best {
		best = s
	}
	return best
}

// partialRatio slides the shorter input across the longer one and keeps the
// best window score, handling names contained within longer strings.
func partialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	s := string(shorter)
	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])
		if score := ratio(s, window); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// sortedTokens returns the input's words sorted and rejoined.
func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// tokenSet returns the set of words in the input.
func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

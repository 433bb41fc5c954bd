// Package transportation categorizes the free-text transportation-need
// answer from enrollment forms into a fixed taxonomy used for sorting and
// highlighting the reconciled roster.
package transportation

import "strings"

// Category is one of the fixed transportation-need buckets.
type Category string

// The taxonomy, in routing-priority order.
const (
	None    Category = "No Transportation"
	AMOnly  Category = "AM Only"
	PMOnly  Category = "PM Only"
	Both    Category = "Both AM & PM"
	Unclear Category = "Other/Unclear"
)

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// Keyword tables, matched case-insensitively as substrings. Decline
// phrases are checked first and win outright; AM and PM indicators are
// checked independently and are not mutually exclusive.
var (
	declineIndicators = []string{
		"not need transportation", "decline service", "no transportation",
		"will not need", "do not need", "don't need", "no transport",
	}
	amIndicators = []string{
		"am route", "home to school", "morning", "to school", "am program",
	}
	pmIndicators = []string{
		"pm route", "school to home", "afternoon", "from school", "pm program",
	}
)

// Classify maps free-form transportation text onto the taxonomy. Empty
// input means no transportation was requested.
func Classify(text string) Category {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return None
	}

	for _, phrase := range declineIndicators {
		if strings.Contains(t, phrase) {
			return None
		}
	}

	hasAM := containsAny(t, amIndicators)
	hasPM := containsAny(t, pmIndicators)

	switch {
	case hasAM && hasPM:
		return Both
	case hasAM:
		return AMOnly
	case hasPM:
		return PMOnly
	default:
		return Unclear
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// sortOrder fixes the category precedence used when ordering the
// reconciled roster. Lower sorts first.
var sortOrder = map[Category]int{
	AMOnly:  1,
	PMOnly:  2,
	Both:    3,
	Unclear: 4,
	None:    5,
}

// SortKey returns the category's position in the fixed precedence order.
// Unknown categories sort last.
func SortKey(c Category) int {
	if k, ok := sortOrder[c]; ok {
		return k
	}
	return len(sortOrder) + 1
}

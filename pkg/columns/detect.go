// Package columns discovers which columns of a roster carry student
// identity. Discovery is heuristic: header keywords narrow the field, then a
// small content sample is checked for name-likeness. The keyword sets live
// in package-level tables so the heuristics can be tuned and tested apart
// from the matching algorithm.
package columns

import (
	"strings"

	"github.com/routeworks/rosterlink/pkg/names"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// Keyword tables driving header classification. Matched as substrings
// against lower-cased, underscore-normalized headers.
var (
	// skipKeywords mark headers that never carry identity.
	skipKeywords = []string{"unnamed", "index", "id", "number_of"}

	// firstNameIndicators and lastNameIndicators identify the split
	// first/last column pair. First match wins per role.
	firstNameIndicators = []string{"first_name", "firstname", "first"}
	lastNameIndicators  = []string{"last_name", "lastname", "last"}

	// nameIndicators identify combined or otherwise-labeled name columns.
	nameIndicators = []string{
		"name", "student", "full_name", "firstname", "lastname",
		"first_name", "last_name", "student_name", "pupil", "learner",
	}
)

const (
	// headerSampleSize rows are checked when a header keyword matched.
	headerSampleSize = 5

	// fallbackSampleSize rows are checked per column when no header
	// matched anything and content has to speak for itself.
	fallbackSampleSize = 10

	// fallbackNameRatio is the share of sampled values that must look
	// like names for a fallback column to be accepted.
	fallbackNameRatio = 0.7
)

// Set holds the identity columns detected for one roster, in priority
// order. When a first-name and last-name column were both found they lead
// the list (first then last) and are also available by role.
type Set struct {
	Columns []string
	First   string
	Last    string
}

// Empty reports whether detection found nothing, which callers must treat
// as a reportable condition rather than proceeding with a degraded match.
func (s Set) Empty() bool {
	return len(s.Columns) == 0
}

// HasPair reports whether separate first and last name columns were found.
func (s Set) HasPair() bool {
	return s.First != "" && s.Last != ""
}

// Detect identifies the columns of a roster that likely contain student
// names. Headers are examined first; if nothing matches by header, every
// column's content is sampled as a fallback. An empty Set means no identity
// column could be found.
func Detect(t *roster.Roster) Set {
	var set Set
	var candidates []string

	for _, col := range t.Columns() {
		header := normalizeHeader(col)

		if containsAny(header, skipKeywords) {
			continue
		}

		if set.First == "" && containsAny(header, firstNameIndicators) {
			set.First = col
			candidates = append(candidates, col)
			continue
		}
		if set.Last == "" && containsAny(header, lastNameIndicators) {
			set.Last = col
			candidates = append(candidates, col)
			continue
		}

		if containsAny(header, nameIndicators) && !contains(candidates, col) {
			// Header looks right; confirm with a content sample.
			if anyNameLike(sample(t, col, headerSampleSize)) {
				candidates = append(candidates, col)
			}
		}
	}

	// A first/last pair outranks everything else and is emitted together.
	if set.HasPair() {
		candidates = remove(candidates, set.First)
		candidates = remove(candidates, set.Last)
		candidates = append([]string{set.First, set.Last}, candidates...)
	}

	// Nothing matched by header: let column content speak for itself.
	if len(candidates) == 0 {
		for _, col := range t.Columns() {
			values := sample(t, col, fallbackSampleSize)
			if len(values) == 0 {
				continue
			}
			nameLike := 0
			for _, v := range values {
				if names.IsNameLike(v) {
					nameLike++
				}
			}
			if float64(nameLike) >= float64(len(values))*fallbackNameRatio {
				candidates = append(candidates, col)
			}
		}
	}

	set.Columns = candidates
	return set
}

// normalizeHeader lower-cases a header and replaces spaces with
// underscores so keyword tables match either convention.
func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(h), " ", "_")
}

// sample returns up to n non-empty values from a column, in row order.
func sample(t *roster.Roster, col string, n int) []string {
	var out []string
	for i := 0; i < t.Len() && len(out) < n; i++ {
		if v, ok := t.Value(i, col); ok {
			out = append(out, v)
		}
	}
	return out
}

// anyNameLike reports whether at least one sampled value looks like a name.
func anyNameLike(values []string) bool {
	for _, v := range values {
		if names.IsNameLike(v) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

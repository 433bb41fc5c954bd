package reconcile

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/routeworks/rosterlink/pkg/roster"
)

// FieldMapping maps a source field name to the target field it should
// overwrite. Identity fields are never part of a mapping; they are handled
// by the name-specific reconciliation path.
type FieldMapping map[string]string

// Header exclusion tables for automatic mapping. Name fields are excluded
// on both sides because identity is reconciled separately.
var (
	autoMapSkipSource = []string{
		"unnamed", "index", "number_of_students",
		"student_name", "name", "first_name", "last_name", "full_name",
	}
	autoMapSkipTarget = []string{
		"unnamed", "index", "id",
		"first_name", "last_name", "middle_name", "student_name",
	}
)

// fieldVariations groups header keywords that denote the same field across
// differently-labeled exports. Two headers sharing a group are mapped to
// each other.
var fieldVariations = [][]string{
	{"grade", "grade_level", "class", "year"},
	{"address", "home_address", "street_address", "residence"},
	{"parent", "guardian", "parent_name", "guardian_name", "contact_name"},
	{"phone", "telephone", "contact_number", "phone_number", "mobile"},
	{"email", "email_address", "contact_email", "parent_email"},
	{"school", "school_name", "institution"},
	{"route", "bus_route", "bus_number", "transport_route"},
	{"pickup", "pickup_time", "collection_time"},
	{"dropoff", "drop_off", "dropoff_time", "delivery_time"},
}

// headerSimilarityThreshold accepts near-identical headers ("Grade Level"
// vs "GradeLevel") that direct equality and the variation groups miss.
const headerSimilarityThreshold = 0.92

// AutoMap derives a field mapping between two rosters from their headers:
// direct equality after lower/underscore normalization wins, then shared
// variation-group keywords, then Jaro-Winkler header similarity. Junk and
// identity headers are excluded on both sides. Source column order decides
// mapping order; each source field maps to at most one target field.
func AutoMap(source, target *roster.Roster) FieldMapping {
	jw := metrics.NewJaroWinkler()
	mapping := make(FieldMapping)

	targetColumns := target.Columns()

	for _, srcCol := range source.Columns() {
		srcNorm := normalizeFieldName(srcCol)
		if containsAnyKeyword(srcNorm, autoMapSkipSource) {
			continue
		}

		for _, tgtCol := range targetColumns {
			tgtNorm := normalizeFieldName(tgtCol)
			if containsAnyKeyword(tgtNorm, autoMapSkipTarget) {
				continue
			}

			if srcNorm == tgtNorm {
				mapping[srcCol] = tgtCol
				break
			}
			if sharesVariationGroup(srcNorm, tgtNorm) {
				mapping[srcCol] = tgtCol
				break
			}
			if strutil.Similarity(srcNorm, tgtNorm, jw) >= headerSimilarityThreshold {
				mapping[srcCol] = tgtCol
				break
			}
		}
	}

	return mapping
}

// normalizeFieldName lower-cases a header and folds spaces and hyphens to
// underscores.
func normalizeFieldName(name string) string {
	n := strings.ToLower(name)
	n = strings.ReplaceAll(n, " ", "_")
	n = strings.ReplaceAll(n, "-", "_")
	return n
}

// sharesVariationGroup reports whether both headers contain a keyword from
// the same variation group.
func sharesVariationGroup(a, b string) bool {
	for _, group := range fieldVariations {
		if containsAnyKeyword(a, group) && containsAnyKeyword(b, group) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

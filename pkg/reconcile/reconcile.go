// Package reconcile overwrites target-roster fields with the values the
// source roster carries for the same student, producing a derived roster of
// matched rows only plus an ordered change log. Identity fields get their
// own comparison path; address fields get equivalence checking so cosmetic
// formatting differences don't register as changes.
package reconcile

import (
	"context"
	"sort"
	"strings"

	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/link"
	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/roster"
	"github.com/routeworks/rosterlink/pkg/transportation"
)

// Default column names matching the district export template. All are
// overridable via options.
const (
	DefaultFirstNameColumn = "First Name"
	DefaultLastNameColumn  = "Last Name"

	// DefaultTransportationField is the free-text form question whose
	// answer drives categorization and sorting.
	DefaultTransportationField = "When do you need transportation (check all that apply)"

	// TransportationCategoryColumn is the derived column added to the
	// reconciled roster.
	TransportationCategoryColumn = "Transportation_Category"
)

// DefaultPreserveFields are source fields copied verbatim into the
// reconciled roster without change-log entries; they are additions from the
// form, not corrections of existing values.
var DefaultPreserveFields = []string{
	"Please select one of the following *",
	DefaultTransportationField,
}

// Field categorization keywords, matched against lower-cased target field
// names.
var (
	addressKeywords = []string{"address", "street", "home", "residence", "location"}
	daycareKeywords = []string{"daycare", "childcare", "preschool", "nursery", "care"}
)

// Reconciler applies source values onto matched target rows.
type Reconciler struct {
	mapping        FieldMapping
	autoMap        bool
	firstColumn    string
	lastColumn     string
	preserveFields []string
	transportField string
}

// Option configures a Reconciler.
type Option func(*Reconciler) error

// New creates a Reconciler with options applied over the defaults.
func New(opts ...Option) (*Reconciler, error) {
	r := &Reconciler{
		autoMap:        true,
		firstColumn:    DefaultFirstNameColumn,
		lastColumn:     DefaultLastNameColumn,
		preserveFields: DefaultPreserveFields,
		transportField: DefaultTransportationField,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithMapping supplies an explicit source-to-target field mapping,
// disabling automatic derivation.
func WithMapping(m FieldMapping) Option {
	return func(r *Reconciler) error {
		r.mapping = m
		r.autoMap = false
		return nil
	}
}

// WithAutoMapping toggles automatic field mapping when no explicit mapping
// is supplied.
func WithAutoMapping(enabled bool) Option {
	return func(r *Reconciler) error {
		r.autoMap = enabled
		return nil
	}
}

// WithNameColumns overrides the target roster's first/last name columns.
func WithNameColumns(first, last string) Option {
	return func(r *Reconciler) error {
		if first == "" || last == "" {
			return errors.NewValidationError("name columns", first+"/"+last, "must be non-empty")
		}
		r.firstColumn = first
		r.lastColumn = last
		return nil
	}
}

// WithPreserveFields overrides the source fields copied verbatim per match.
func WithPreserveFields(fields ...string) Option {
	return func(r *Reconciler) error {
		r.preserveFields = fields
		return nil
	}
}

// WithTransportationField overrides the free-text field used for
// transportation categorization. An empty name disables categorization.
func WithTransportationField(name string) Option {
	return func(r *Reconciler) error {
		r.transportField = name
		return nil
	}
}

// Result is the outcome of a reconciliation pass.
type Result struct {
	// Roster contains only the matched target rows, with source values
	// applied, the derived transportation category column (when the
	// transportation field is present), and category-precedence ordering.
	Roster *roster.Roster

	// Changes is the ordered log of every overwrite applied.
	Changes ChangeLog

	// Mapping is the field mapping that was used, whether supplied or
	// auto-derived.
	Mapping FieldMapping

	// Removed is the number of unmatched target rows dropped.
	Removed int

	// Categories counts reconciled rows per transportation category.
	// Nil when the transportation field is absent.
	Categories map[transportation.Category]int
}

// Reconcile applies the source roster's values onto the matched target rows
// and returns the filtered, annotated roster plus the change log. The input
// rosters are not modified. Unmatched target rows are dropped: they are
// records the target believed existed but the source never confirmed.
func (r *Reconciler) Reconcile(ctx context.Context, source, target *roster.Roster, links *link.Result) (*Result, error) {
	if source == nil || target == nil {
		return nil, errors.NewValidationError("roster", nil, "both rosters are required")
	}
	if links == nil {
		return nil, errors.NewValidationError("links", nil, "link result is required")
	}

	log := logging.FromContext(ctx)

	mapping := r.mapping
	if len(mapping) == 0 && r.autoMap {
		mapping = AutoMap(source, target)
		log.Debug().Int("fields", len(mapping)).Msg("auto-mapped fields")
	}

	updated := target.Clone()
	var changes ChangeLog
	keep := make([]int, 0, len(links.Matches))

	for _, pair := range links.Matches {
		keep = append(keep, pair.TargetRow)

		changes = r.reconcileName(updated, pair, changes)
		changes = r.reconcileFields(source, updated, mapping, pair, changes)
		r.copyPreserved(source, updated, pair)
	}

	reconciled := updated.Select(keep)

	result := &Result{
		Roster:  reconciled,
		Changes: changes,
		Mapping: mapping,
		Removed: len(links.UnmatchedTarget),
	}

	if r.transportField != "" && reconciled.HasColumn(r.transportField) {
		result.Categories = r.categorize(reconciled)
		result.Roster = sortByCategory(reconciled)
	}

	log.Info().
		Int("rows", result.Roster.Len()).
		Int("changes", len(changes)).
		Int("removed", result.Removed).
		Msg("reconciliation complete")

	return result, nil
}

// reconcileName compares the source's combined name against the target's
// reconstructed "first last" string and updates whichever sub-field
// actually differs. A single-token source name leaves the target's last
// name untouched.
func (r *Reconciler) reconcileName(updated *roster.Roster, pair link.Pair, changes ChangeLog) ChangeLog {
	rec := updated.Row(pair.TargetRow)
	oldFirst, _ := rec.Get(r.firstColumn)
	oldLast, _ := rec.Get(r.lastColumn)
	combined := strings.TrimSpace(oldFirst + " " + oldLast)

	srcName := strings.TrimSpace(pair.SourceName)
	if srcName == "" || sameNameTokens(srcName, combined) {
		return changes
	}

	newFirst, newLast := oldFirst, oldLast
	parts := strings.Fields(srcName)
	switch {
	case len(parts) >= 2:
		newFirst = parts[0]
		newLast = strings.Join(parts[1:], " ")
	case len(parts) == 1:
		newFirst = parts[0]
	}

	if newFirst != oldFirst {
		changes = append(changes, FieldChange{
			Student:   combined,
			Field:     r.firstColumn,
			Category:  CategoryStudentName,
			OldValue:  oldFirst,
			NewValue:  newFirst,
			TargetRow: pair.TargetRow,
		})
		updated.Set(pair.TargetRow, r.firstColumn, newFirst)
	}
	if newLast != oldLast {
		changes = append(changes, FieldChange{
			Student:   combined,
			Field:     r.lastColumn,
			Category:  CategoryStudentName,
			OldValue:  oldLast,
			NewValue:  newLast,
			TargetRow: pair.TargetRow,
		})
		updated.Set(pair.TargetRow, r.lastColumn, newLast)
	}
	return changes
}

// sameNameTokens reports whether two names carry the same words, ignoring
// order and case. A "Last, First" export and a "First Last" roster entry
// are the same student and must not register as a name change.
func sameNameTokens(a, b string) bool {
	ta := strings.Fields(strings.ToLower(a))
	tb := strings.Fields(strings.ToLower(b))
	if len(ta) != len(tb) {
		return false
	}
	sort.Strings(ta)
	sort.Strings(tb)
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}

// reconcileFields walks the mapping in source column order and applies
// value overwrites, with address fields compared under equivalence rules.
// A missing or unparseable source value means the field is skipped and the
// old value preserved; that is a data-quality policy, not an error.
func (r *Reconciler) reconcileFields(source, updated *roster.Roster, mapping FieldMapping, pair link.Pair, changes ChangeLog) ChangeLog {
	for _, srcField := range source.Columns() {
		tgtField, mapped := mapping[srcField]
		if !mapped || !updated.HasColumn(tgtField) {
			continue
		}

		newValue, present := source.Value(pair.SourceRow, srcField)
		if !present {
			continue
		}
		oldValue, _ := updated.Value(pair.TargetRow, tgtField)

		if isAddressField(tgtField) {
			cleanOld := CleanAddress(oldValue)
			cleanNew := CleanAddress(newValue)
			if cleanNew == "" || AddressesEquivalent(cleanOld, cleanNew) {
				continue
			}
			changes = append(changes, FieldChange{
				Student:   pair.TargetName,
				Field:     tgtField,
				Category:  CategoryAddress,
				OldValue:  oldValue,
				NewValue:  cleanNew,
				TargetRow: pair.TargetRow,
			})
			updated.Set(pair.TargetRow, tgtField, cleanNew)
			continue
		}

		if oldValue == newValue {
			continue
		}
		changes = append(changes, FieldChange{
			Student:   pair.TargetName,
			Field:     tgtField,
			Category:  fieldCategory(tgtField),
			OldValue:  oldValue,
			NewValue:  newValue,
			TargetRow: pair.TargetRow,
		})
		updated.Set(pair.TargetRow, tgtField, newValue)
	}
	return changes
}

// copyPreserved copies configured source fields into the target row
// verbatim, creating the column when absent. These are additions, not
// corrections, so no change entries are written.
func (r *Reconciler) copyPreserved(source, updated *roster.Roster, pair link.Pair) {
	for _, field := range r.preserveFields {
		if v, ok := source.Value(pair.SourceRow, field); ok {
			updated.Set(pair.TargetRow, field, v)
		}
	}
}

// categorize derives the transportation category column for every row and
// returns the per-category counts.
func (r *Reconciler) categorize(t *roster.Roster) map[transportation.Category]int {
	counts := make(map[transportation.Category]int)
	t.AddColumn(TransportationCategoryColumn)
	for i := 0; i < t.Len(); i++ {
		text, _ := t.Value(i, r.transportField)
		cat := transportation.Classify(text)
		t.Set(i, TransportationCategoryColumn, cat.String())
		counts[cat]++
	}
	return counts
}

// sortByCategory orders rows by the fixed transportation precedence,
// preserving original order within a category.
func sortByCategory(t *roster.Roster) *roster.Roster {
	indices := make([]int, t.Len())
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		ca, _ := t.Value(indices[a], TransportationCategoryColumn)
		cb, _ := t.Value(indices[b], TransportationCategoryColumn)
		return transportation.SortKey(transportation.Category(ca)) <
			transportation.SortKey(transportation.Category(cb))
	})
	return t.Select(indices)
}

// isAddressField reports whether a target field holds an address.
func isAddressField(field string) bool {
	return containsAnyKeyword(strings.ToLower(field), addressKeywords)
}

// fieldCategory tags a non-address field for the change log.
func fieldCategory(field string) Category {
	if containsAnyKeyword(strings.ToLower(field), daycareKeywords) {
		return CategoryDaycare
	}
	return CategoryGeneral
}

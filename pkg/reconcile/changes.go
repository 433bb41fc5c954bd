package reconcile

// Category tags a field change for downstream color coding and reporting.
type Category string

// Change categories. The spreadsheet writer maps each to a highlight style.
const (
	CategoryAddress     Category = "address"
	CategoryStudentName Category = "student_name"
	CategoryDaycare     Category = "daycare"
	CategoryGeneral     Category = "general"
)

// FieldChange records one overwritten field on one matched target row:
// which student, which field, the old and new values, and the category.
// TargetRow is the row index in the original target roster.
type FieldChange struct {
	Student   string
	Field     string
	Category  Category
	OldValue  string
	NewValue  string
	TargetRow int
}

// ChangeLog is the ordered record of every field overwrite applied during a
// reconciliation run, in discovery order.
type ChangeLog []FieldChange

// ByCategory returns change counts keyed by category.
func (l ChangeLog) ByCategory() map[Category]int {
	out := make(map[Category]int)
	for _, c := range l {
		out[c.Category]++
	}
	return out
}

// ByField returns change counts keyed by field name.
func (l ChangeLog) ByField() map[string]int {
	out := make(map[string]int)
	for _, c := range l {
		out[c.Field]++
	}
	return out
}

// Package roster defines the tabular container the rest of the system
// operates on: an ordered list of column names plus an ordered list of
// records, each record a column-name to value mapping. Values are kept as
// strings; a missing key means the cell is empty. Rosters are treated as
// immutable inputs by the matching and reconciliation code, which always
// returns derived copies.
package roster

import (
	"strings"
)

// Record is a single row, keyed by column name. Absent keys are empty cells.
type Record map[string]string

// Get returns the trimmed value for a column and whether it is present and
// non-blank. Placeholder values left behind by upstream exports ("nan",
// "none") count as absent.
func (r Record) Get(column string) (string, bool) {
	v, ok := r[column]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	switch strings.ToLower(v) {
	case "nan", "none", "null":
		return "", false
	}
	return v, true
}

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Roster is an ordered table of records with a fixed column order.
type Roster struct {
	columns []string
	rows    []Record
}

// New creates a roster with the given column order and no rows.
func New(columns ...string) *Roster {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Roster{columns: cols}
}

// Columns returns the column names in order.
func (t *Roster) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// HasColumn reports whether the roster has a column with the given name.
func (t *Roster) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends a column if it does not already exist.
func (t *Roster) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.columns = append(t.columns, name)
	}
}

// Len returns the number of rows.
func (t *Roster) Len() int {
	return len(t.rows)
}

// Row returns the record at index i. The returned record is the live row;
// callers that need to mutate should Clone first.
func (t *Roster) Row(i int) Record {
	return t.rows[i]
}

// Rows returns the live backing slice of records, in order.
func (t *Roster) Rows() []Record {
	return t.rows
}

// Value returns the cell at (row, column) via Record.Get semantics.
func (t *Roster) Value(row int, column string) (string, bool) {
	if row < 0 || row >= len(t.rows) {
		return "", false
	}
	return t.rows[row].Get(column)
}

// Set writes a cell, adding the column to the schema if needed.
func (t *Roster) Set(row int, column, value string) {
	if row < 0 || row >= len(t.rows) {
		return
	}
	t.AddColumn(column)
	t.rows[row][column] = value
}

// Append adds a record as the last row. Columns present in the record but
// not in the schema are appended to the column order.
func (t *Roster) Append(rec Record) {
	for k := range rec {
		t.AddColumn(k)
	}
	t.rows = append(t.rows, rec)
}

// Clone returns a deep copy of the roster.
func (t *Roster) Clone() *Roster {
	out := New(t.columns...)
	out.rows = make([]Record, 0, len(t.rows))
	for _, r := range t.rows {
		out.rows = append(out.rows, r.Clone())
	}
	return out
}

// Select returns a new roster containing copies of the rows at the given
// indices, in the given order. Indices out of range are skipped.
func (t *Roster) Select(indices []int) *Roster {
	out := New(t.columns...)
	for _, i := range indices {
		if i < 0 || i >= len(t.rows) {
			continue
		}
		out.rows = append(out.rows, t.rows[i].Clone())
	}
	return out
}

package columns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeworks/rosterlink/pkg/columns"
	"github.com/routeworks/rosterlink/pkg/roster"
)

func rosterWith(t *testing.T, cols []string, rows ...map[string]string) *roster.Roster {
	t.Helper()
	r := roster.New(cols...)
	for _, row := range rows {
		r.Append(roster.Record(row))
	}
	return r
}

func TestDetect(t *testing.T) {
	t.Run("first and last pair leads the result", func(t *testing.T) {
		r := rosterWith(t,
			[]string{"Student ID", "First Name", "Last Name", "Grade"},
			map[string]string{"Student ID": "1001", "First Name": "John", "Last Name": "Smith", "Grade": "4"},
			map[string]string{"Student ID": "1002", "First Name": "Mary", "Last Name": "Jones", "Grade": "5"},
		)

		set := columns.Detect(r)
		assert.True(t, set.HasPair())
		assert.Equal(t, "First Name", set.First)
		assert.Equal(t, "Last Name", set.Last)
		assert.Equal(t, []string{"First Name", "Last Name"}, set.Columns[:2])
	})

	t.Run("combined name column confirmed by content", func(t *testing.T) {
		r := rosterWith(t,
			[]string{"Student Name", "Grade"},
			map[string]string{"Student Name": "John Smith", "Grade": "4"},
			map[string]string{"Student Name": "Mary Jones", "Grade": "5"},
		)

		set := columns.Detect(r)
		assert.False(t, set.HasPair())
		assert.Equal(t, []string{"Student Name"}, set.Columns)
	})

	t.Run("name-keyword header with non-name content is rejected", func(t *testing.T) {
		r := rosterWith(t,
			[]string{"Route Name", "Grade"},
			map[string]string{"Route Name": "Route 12", "Grade": "4"},
		)

		set := columns.Detect(r)
		assert.True(t, set.Empty())
	})

	t.Run("id-like headers are skipped", func(t *testing.T) {
		r := rosterWith(t,
			[]string{"Student ID", "Unnamed: 0", "First Name", "Last Name"},
			map[string]string{"Student ID": "1001", "Unnamed: 0": "0", "First Name": "John", "Last Name": "Smith"},
		)

		set := columns.Detect(r)
		assert.NotContains(t, set.Columns, "Student ID")
		assert.NotContains(t, set.Columns, "Unnamed: 0")
	})

	t.Run("content fallback finds unlabeled name column", func(t *testing.T) {
		r := rosterWith(t,
			[]string{"Column A", "Column B"},
			map[string]string{"Column A": "John Smith", "Column B": "12"},
			map[string]string{"Column A": "Mary Jones", "Column B": "34"},
			map[string]string{"Column A": "Ann Lee", "Column B": "56"},
		)

		set := columns.Detect(r)
		assert.Equal(t, []string{"Column A"}, set.Columns)
	})

	t.Run("empty roster yields empty set", func(t *testing.T) {
		r := roster.New("Column A")
		set := columns.Detect(r)
		assert.True(t, set.Empty())
	})
}

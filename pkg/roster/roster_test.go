package roster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/rosterlink/pkg/roster"
)

func TestRecordGet(t *testing.T) {
	rec := roster.Record{
		"Name":  "  John Smith ",
		"Empty": "",
		"Blank": "   ",
		"NaN":   "NaN",
		"None":  "none",
		"Grade": "4",
	}

	t.Run("trims present values", func(t *testing.T) {
		v, ok := rec.Get("Name")
		assert.True(t, ok)
		assert.Equal(t, "John Smith", v)
	})

	t.Run("placeholders count as absent", func(t *testing.T) {
		for _, col := range []string{"Empty", "Blank", "NaN", "None", "Missing"} {
			_, ok := rec.Get(col)
			assert.False(t, ok, "column %q", col)
		}
	})

	t.Run("numeric strings are present", func(t *testing.T) {
		v, ok := rec.Get("Grade")
		assert.True(t, ok)
		assert.Equal(t, "4", v)
	})
}

func TestRoster(t *testing.T) {
	t.Run("set adds unknown columns to the schema", func(t *testing.T) {
		r := roster.New("Name")
		r.Append(roster.Record{"Name": "John"})

		r.Set(0, "Grade", "4")
		assert.True(t, r.HasColumn("Grade"))
		v, _ := r.Value(0, "Grade")
		assert.Equal(t, "4", v)
	})

	t.Run("clone is independent", func(t *testing.T) {
		r := roster.New("Name")
		r.Append(roster.Record{"Name": "John"})

		c := r.Clone()
		c.Set(0, "Name", "Changed")

		v, _ := r.Value(0, "Name")
		assert.Equal(t, "John", v)
	})

	t.Run("select keeps order and skips bad indices", func(t *testing.T) {
		r := roster.New("Name")
		r.Append(roster.Record{"Name": "A"})
		r.Append(roster.Record{"Name": "B"})
		r.Append(roster.Record{"Name": "C"})

		s := r.Select([]int{2, 0, 99})
		require.Equal(t, 2, s.Len())
		v, _ := s.Value(0, "Name")
		assert.Equal(t, "C", v)
		v, _ = s.Value(1, "Name")
		assert.Equal(t, "A", v)
	})
}

func TestCSV(t *testing.T) {
	t.Run("round trip preserves columns and values", func(t *testing.T) {
		input := "Name,Grade,Address\nJohn Smith,4,123 Main St\nMary Jones,5,\n"

		r, err := roster.ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 2, r.Len())
		assert.Equal(t, []string{"Name", "Grade", "Address"}, r.Columns())

		var buf bytes.Buffer
		require.NoError(t, r.WriteCSV(&buf))
		assert.Equal(t, input, buf.String())
	})

	t.Run("ragged rows tolerated", func(t *testing.T) {
		input := "Name,Grade\nJohn Smith\nMary Jones,5,extra\n"

		r, err := roster.ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, 2, r.Len())

		_, ok := r.Value(0, "Grade")
		assert.False(t, ok)
		v, _ := r.Value(1, "Grade")
		assert.Equal(t, "5", v)
	})

	t.Run("duplicate headers keep first position", func(t *testing.T) {
		input := "Name,Name,Grade\na,b,4\n"

		r, err := roster.ReadCSV(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, []string{"Name", "Grade"}, r.Columns())
		// Later duplicate wins within the row.
		v, _ := r.Value(0, "Name")
		assert.Equal(t, "b", v)
	})

	t.Run("empty input is a parse error", func(t *testing.T) {
		_, err := roster.ReadCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("file round trip", func(t *testing.T) {
		r := roster.New("Name", "Grade")
		r.Append(roster.Record{"Name": "John Smith", "Grade": "4"})

		path := t.TempDir() + "/roster.csv"
		require.NoError(t, r.WriteCSVFile(path))

		got, err := roster.ReadCSVFile(path)
		require.NoError(t, err)
		require.Equal(t, 1, got.Len())
		v, _ := got.Value(0, "Name")
		assert.Equal(t, "John Smith", v)
	})
}

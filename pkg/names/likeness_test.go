package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeworks/rosterlink/pkg/names"
)

func TestIsNameLike(t *testing.T) {
	t.Run("accepts common name shapes", func(t *testing.T) {
		for _, v := range []string{
			"John Smith",
			"Smith, John",
			"Mary Ann Jones",
			"O'Brien",
			"Jean-Luc Picard",
			"Dr. Smith",
			"Li",
		} {
			assert.True(t, names.IsNameLike(v), "value %q", v)
		}
	})

	t.Run("rejects non-name values", func(t *testing.T) {
		for _, v := range []string{
			"",
			" ",
			"A",
			"12345",
			"123 Main St",
			"john@example.com",
			"Grade 4",
			"(555) 123-4567",
		} {
			assert.False(t, names.IsNameLike(v), "value %q", v)
		}
	})

	t.Run("comma form needs both halves", func(t *testing.T) {
		assert.True(t, names.IsNameLike("Smith, John"))
		assert.False(t, names.IsNameLike("Smith,"))
		assert.False(t, names.IsNameLike(", John"))
	})

	t.Run("rejects overly long values", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		assert.False(t, names.IsNameLike(string(long)))
	})
}

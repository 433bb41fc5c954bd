package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/roster"
)

func TestAutoMap(t *testing.T) {
	t.Run("maps equal headers across conventions", func(t *testing.T) {
		source := roster.New("Student Name", "Grade Level", "Home Address")
		target := roster.New("First Name", "Last Name", "grade_level", "home_address")

		mapping := reconcile.AutoMap(source, target)
		assert.Equal(t, "grade_level", mapping["Grade Level"])
		assert.Equal(t, "home_address", mapping["Home Address"])
	})

	t.Run("maps variation groups", func(t *testing.T) {
		source := roster.New("Guardian Name", "Contact Number", "Street Address")
		target := roster.New("Parent", "Phone", "Address")

		mapping := reconcile.AutoMap(source, target)
		assert.Equal(t, "Parent", mapping["Guardian Name"])
		assert.Equal(t, "Phone", mapping["Contact Number"])
		assert.Equal(t, "Address", mapping["Street Address"])
	})

	t.Run("never maps identity fields", func(t *testing.T) {
		source := roster.New("Student Name", "First Name", "Grade")
		target := roster.New("First Name", "Last Name", "Grade")

		mapping := reconcile.AutoMap(source, target)
		assert.NotContains(t, mapping, "Student Name")
		assert.NotContains(t, mapping, "First Name")
		assert.Equal(t, "Grade", mapping["Grade"])
	})

	t.Run("skips junk headers", func(t *testing.T) {
		source := roster.New("Unnamed: 0", "Index", "Grade")
		target := roster.New("Grade")

		mapping := reconcile.AutoMap(source, target)
		assert.Len(t, mapping, 1)
		assert.Equal(t, "Grade", mapping["Grade"])
	})

	t.Run("no overlap yields empty mapping", func(t *testing.T) {
		source := roster.New("Favorite Color")
		target := roster.New("Homeroom Teacher")

		mapping := reconcile.AutoMap(source, target)
		assert.Empty(t, mapping)
	})
}

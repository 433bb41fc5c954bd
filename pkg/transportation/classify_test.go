package transportation_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routeworks/rosterlink/pkg/transportation"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want transportation.Category
	}{
		{"", transportation.None},
		{"   ", transportation.None},
		{"We do not need transportation", transportation.None},
		{"Decline service", transportation.None},
		{"AM route to school", transportation.AMOnly},
		{"Morning pickup please", transportation.AMOnly},
		{"Home to school only", transportation.AMOnly},
		{"PM route from school", transportation.PMOnly},
		{"afternoon drop off", transportation.PMOnly},
		{"School to home", transportation.PMOnly},
		{"AM route and PM route", transportation.Both},
		{"Morning and afternoon", transportation.Both},
		{"Home to school and school to home", transportation.Both},
		{"Whatever works", transportation.Unclear},
		{"Grandma will decide weekly", transportation.Unclear},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, transportation.Classify(tc.text))
		})
	}

	t.Run("decline wins over route words", func(t *testing.T) {
		got := transportation.Classify("We do not need transportation in the morning")
		assert.Equal(t, transportation.None, got)
	})
}

func TestSortKey(t *testing.T) {
	t.Run("orders AM, PM, Both, Unclear, None", func(t *testing.T) {
		cats := []transportation.Category{
			transportation.None,
			transportation.Unclear,
			transportation.Both,
			transportation.PMOnly,
			transportation.AMOnly,
		}
		sort.Slice(cats, func(i, j int) bool {
			return transportation.SortKey(cats[i]) < transportation.SortKey(cats[j])
		})
		assert.Equal(t, []transportation.Category{
			transportation.AMOnly,
			transportation.PMOnly,
			transportation.Both,
			transportation.Unclear,
			transportation.None,
		}, cats)
	})

	t.Run("unknown categories sort last", func(t *testing.T) {
		assert.Greater(t, transportation.SortKey("Mystery"), transportation.SortKey(transportation.None))
	})
}

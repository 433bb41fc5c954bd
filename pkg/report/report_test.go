package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/rosterlink/pkg/link"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/report"
	"github.com/routeworks/rosterlink/pkg/roster"
	"github.com/routeworks/rosterlink/pkg/transportation"
)

func TestBuild(t *testing.T) {
	source := roster.New("Name")
	source.Append(roster.Record{"Name": "John Smith"})
	source.Append(roster.Record{"Name": "Mary Jones"})
	source.Append(roster.Record{"Name": "Ann Lee"})

	target := roster.New("Name")
	target.Append(roster.Record{"Name": "John Smith"})
	target.Append(roster.Record{"Name": "Mary Jones"})

	links := &link.Result{
		Matches: []link.Pair{
			{SourceRow: 0, TargetRow: 0, Score: 100},
			{SourceRow: 1, TargetRow: 1, Score: 95},
		},
		UnmatchedSource:  []link.Candidate{{Row: 2, Name: "Ann Lee"}},
		SourceCandidates: 3,
		TargetCandidates: 2,
	}

	rec := &reconcile.Result{
		Changes: reconcile.ChangeLog{
			{Field: "Grade", Category: reconcile.CategoryGeneral},
			{Field: "Address", Category: reconcile.CategoryAddress},
			{Field: "Grade", Category: reconcile.CategoryGeneral},
		},
		Categories: map[transportation.Category]int{
			transportation.AMOnly: 2,
		},
	}

	t.Run("aggregates all stages", func(t *testing.T) {
		s := report.Build(source, target, links, rec)

		assert.Equal(t, 3, s.SourceRows)
		assert.Equal(t, 2, s.TargetRows)
		assert.Equal(t, 2, s.Matched)
		assert.Equal(t, 1, s.UnmatchedSource)
		assert.InDelta(t, 66.7, s.MatchRate, 0.1)

		assert.Equal(t, 3, s.TotalChanges)
		assert.Equal(t, 2, s.ChangesByCategory[reconcile.CategoryGeneral])
		assert.Equal(t, 1, s.ChangesByCategory[reconcile.CategoryAddress])
		assert.Equal(t, 2, s.ChangesByField["Grade"])
		assert.Equal(t, 2, s.Transportation[transportation.AMOnly])
	})

	t.Run("nil reconcile result is allowed", func(t *testing.T) {
		s := report.Build(source, target, links, nil)
		assert.Equal(t, 2, s.Matched)
		assert.Zero(t, s.TotalChanges)
	})

	t.Run("no candidates means zero match rate", func(t *testing.T) {
		s := report.Build(source, target, &link.Result{}, nil)
		assert.Zero(t, s.MatchRate)
	})

	t.Run("renders a readable summary", func(t *testing.T) {
		s := report.Build(source, target, links, rec)
		out := s.String()
		require.NotEmpty(t, out)
		assert.Contains(t, out, "Matched:            2")
		assert.Contains(t, out, "Changes applied:    3")
		assert.Contains(t, out, "AM Only")
	})
}

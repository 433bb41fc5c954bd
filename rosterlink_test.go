package rosterlink_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/rosterlink"
	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/roster"
)

func sourceRoster() *roster.Roster {
	r := roster.New("Student Name", "Grade")
	r.Append(roster.Record{"Student Name": "John Smith", "Grade": "5"})
	r.Append(roster.Record{"Student Name": "Mary Jones", "Grade": "3"})
	return r
}

func targetRoster() *roster.Roster {
	r := roster.New("First Name", "Last Name", "Grade")
	r.Append(roster.Record{"First Name": "John", "Last Name": "Smith", "Grade": "4"})
	r.Append(roster.Record{"First Name": "Mary", "Last Name": "Jones", "Grade": "3"})
	return r
}

func TestNew(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		rl, err := rosterlink.New()
		require.NoError(t, err)
		assert.NotNil(t, rl)
	})

	t.Run("out of range threshold is rejected", func(t *testing.T) {
		_, err := rosterlink.New(rosterlink.WithThreshold(101))
		assert.True(t, errors.IsValidationError(err))

		_, err = rosterlink.New(rosterlink.WithThreshold(-1))
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("empty name split columns are rejected", func(t *testing.T) {
		_, err := rosterlink.New(rosterlink.WithNameSplitColumns("", "Last"))
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestLink(t *testing.T) {
	ctx := context.Background()

	t.Run("detects name columns on both sides", func(t *testing.T) {
		rl, err := rosterlink.New()
		require.NoError(t, err)

		links, err := rl.Link(ctx, sourceRoster(), targetRoster())
		require.NoError(t, err)
		assert.Equal(t, 2, links.MatchCount())
		assert.Equal(t, 2, links.SourceCandidates)
	})

	t.Run("configured columns must exist", func(t *testing.T) {
		rl, err := rosterlink.New(rosterlink.WithSourceNameColumns("Nope"))
		require.NoError(t, err)

		_, err = rl.Link(ctx, sourceRoster(), targetRoster())
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("undetectable roster is a detection error", func(t *testing.T) {
		rl, err := rosterlink.New()
		require.NoError(t, err)

		blank := roster.New("Code", "Amount")
		blank.Append(roster.Record{"Code": "X1", "Amount": "12"})

		_, err = rl.Link(ctx, blank, targetRoster())
		assert.True(t, errors.IsNoNameColumns(err))
	})

	t.Run("nil and empty rosters are rejected", func(t *testing.T) {
		rl, err := rosterlink.New()
		require.NoError(t, err)

		_, err = rl.Link(ctx, nil, targetRoster())
		assert.ErrorIs(t, err, errors.ErrRosterNotLoaded)

		_, err = rl.Link(ctx, roster.New("Student Name"), targetRoster())
		assert.ErrorIs(t, err, errors.ErrEmptyRoster)
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full pipeline produces roster, changes, and summary", func(t *testing.T) {
		rl, err := rosterlink.New()
		require.NoError(t, err)

		result, err := rl.Run(ctx, sourceRoster(), targetRoster())
		require.NoError(t, err)

		assert.Equal(t, 2, result.Links.MatchCount())

		// One grade moved, the other stayed.
		require.Len(t, result.Reconciliation.Changes, 1)
		assert.Equal(t, "Grade", result.Reconciliation.Changes[0].Field)
		assert.Equal(t, "John Smith", result.Reconciliation.Changes[0].Student)

		require.NotNil(t, result.Summary)
		assert.Equal(t, 2, result.Summary.Matched)
		assert.Equal(t, 1, result.Summary.TotalChanges)
		assert.InDelta(t, 100.0, result.Summary.MatchRate, 0.01)
	})

	t.Run("explicit mapping restricts reconciled fields", func(t *testing.T) {
		source := sourceRoster()
		source.AddColumn("Phone")
		source.Set(0, "Phone", "555-0100")

		target := targetRoster()
		target.AddColumn("Phone")
		target.Set(0, "Phone", "555-0199")

		rl, err := rosterlink.New(rosterlink.WithFieldMapping(reconcile.FieldMapping{
			"Phone": "Phone",
		}))
		require.NoError(t, err)

		result, err := rl.Run(ctx, source, target)
		require.NoError(t, err)

		// Only the mapped field is reconciled; grade drift is left alone.
		require.Len(t, result.Reconciliation.Changes, 1)
		assert.Equal(t, "Phone", result.Reconciliation.Changes[0].Field)
		v, _ := result.Reconciliation.Roster.Value(0, "Grade")
		assert.Equal(t, "4", v)
	})
}

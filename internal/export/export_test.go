package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routeworks/rosterlink/internal/export"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/report"
	"github.com/routeworks/rosterlink/pkg/roster"
)

func TestWriter(t *testing.T) {
	t.Run("creates the output directory on first write", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := export.NewWriter(dir)

		r := roster.New("Name")
		r.Append(roster.Record{"Name": "John Smith"})

		path, err := w.WriteRoster(r)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, export.RosterFile), path)

		got, err := roster.ReadCSVFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("writes the change log in log order", func(t *testing.T) {
		w := export.NewWriter(t.TempDir())

		changes := reconcile.ChangeLog{
			{Student: "John Smith", Field: "Grade", Category: reconcile.CategoryGeneral, OldValue: "4", NewValue: "5"},
			{Student: "Mary Jones", Field: "Address", Category: reconcile.CategoryAddress, OldValue: "456 Oak Ave", NewValue: "789 Elm Drive"},
		}

		path, err := w.WriteChanges(changes)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "Student,Field,Category,Old Value,New Value", lines[0])
		assert.Equal(t, "John Smith,Grade,general,4,5", lines[1])
		assert.Equal(t, "Mary Jones,Address,address,456 Oak Ave,789 Elm Drive", lines[2])
	})

	t.Run("empty change log still writes the header", func(t *testing.T) {
		w := export.NewWriter(t.TempDir())

		path, err := w.WriteChanges(nil)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Student,Field,Category,Old Value,New Value\n", string(data))
	})

	t.Run("writes the summary as yaml", func(t *testing.T) {
		w := export.NewWriter(t.TempDir())

		s := &report.Summary{
			SourceRows:       3,
			TargetRows:       2,
			SourceCandidates: 3,
			TargetCandidates: 2,
			Matched:          2,
			MatchRate:        66.7,
		}

		path, err := w.WriteSummary(s)
		require.NoError(t, err)
		assert.Equal(t, export.SummaryFile, filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "matched: 2")
		assert.Contains(t, string(data), "source_rows: 3")
	})
}

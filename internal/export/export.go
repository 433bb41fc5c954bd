// Package export writes run outputs to disk: the reconciled roster, the
// change log, and the run summary.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/report"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// Default output filenames.
const (
	RosterFile  = "reconciled_roster.csv"
	ChangesFile = "change_log.csv"
	SummaryFile = "summary.yaml"
)

// changeLogHeader is the column layout of the exported change log.
var changeLogHeader = []string{"Student", "Field", "Category", "Old Value", "New Value"}

// Writer writes run outputs into a single directory, creating it on first
// use.
type Writer struct {
	dir string
}

// NewWriter creates a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteRoster writes the reconciled roster as CSV.
func (w *Writer) WriteRoster(t *roster.Roster) (string, error) {
	path, err := w.prepare(RosterFile)
	if err != nil {
		return "", err
	}
	if err := t.WriteCSVFile(path); err != nil {
		return "", err
	}
	return path, nil
}

// WriteChanges writes the change log as CSV, one row per field overwrite,
// in log order.
func (w *Writer) WriteChanges(changes reconcile.ChangeLog) (string, error) {
	path, err := w.prepare(ChangesFile)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	defer f.Close() //nolint:errcheck // error captured by Flush below

	cw := csv.NewWriter(f)
	if err := cw.Write(changeLogHeader); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	for _, c := range changes {
		row := []string{c.Student, c.Field, string(c.Category), c.OldValue, c.NewValue}
		if err := cw.Write(row); err != nil {
			return "", errors.WrapIO("write", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// WriteSummary writes the run summary as YAML.
func (w *Writer) WriteSummary(s *report.Summary) (string, error) {
	path, err := w.prepare(SummaryFile)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return "", errors.WrapIO("marshal", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// prepare ensures the output directory exists and returns the full path
// for a filename inside it.
func (w *Writer) prepare(filename string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", errors.WrapIO("mkdir", w.dir, err)
	}
	return filepath.Join(w.dir, filename), nil
}

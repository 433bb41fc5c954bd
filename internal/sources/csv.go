package sources

import (
	"context"

	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// CSVSource loads a roster from a CSV file on disk.
type CSVSource struct {
	path string
	side Side
}

// NewCSV creates a CSV source for the given file and pipeline side.
func NewCSV(path string, side Side) *CSVSource {
	return &CSVSource{path: path, side: side}
}

// Name identifies the source for logs and error messages.
func (s *CSVSource) Name() string {
	return s.path
}

// Load reads and parses the CSV file.
func (s *CSVSource) Load(ctx context.Context) (*roster.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := roster.ReadCSVFile(s.path)
	if err != nil {
		return nil, err
	}

	ctx = logging.WithRoster(ctx, s.side.String())
	logging.FromContext(ctx).Debug().
		Str("file", s.path).
		Int("rows", t.Len()).
		Int("columns", len(t.Columns())).
		Msg("loaded roster")

	return t, nil
}

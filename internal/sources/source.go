// Package sources loads rosters from their various origins: exported CSV
// files, multi-sheet workbook exports flattened to per-sheet CSVs, and
// extracted enrollment forms.
package sources

import (
	"context"

	"github.com/routeworks/rosterlink/pkg/roster"
)

// Side identifies which end of the linking pipeline a source feeds.
type Side string

// The two pipeline sides. The source side carries fresh enrollment data;
// the target side carries the roster being updated.
const (
	SideSource Side = "source"
	SideTarget Side = "target"
)

// String returns the side label.
func (s Side) String() string {
	return string(s)
}

// Source loads one roster.
type Source interface {
	// Name identifies the source for logs and error messages.
	Name() string

	// Load reads and parses the roster.
	Load(ctx context.Context) (*roster.Roster, error)
}

// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, which keeps them testable with mock implementations.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/routeworks/rosterlink"
	"github.com/routeworks/rosterlink/pkg/reconcile"
)

// Interface defines the application context that commands need.
// The App struct from cmd/rosterlink/app implements this interface.
type Interface interface {
	// Pipeline returns the default pipeline instance, creating it lazily.
	Pipeline() (rosterlink.RosterLink, error)

	// PipelineWithOptions creates a new pipeline with custom options. Use
	// this when a command needs configuration different from the default
	// instance.
	PipelineWithOptions(...rosterlink.Option) (rosterlink.RosterLink, error)

	// Mapping returns the explicit field mapping loaded from the
	// configured mapping file, or nil when auto-mapping is in effect.
	Mapping() (reconcile.FieldMapping, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Threshold returns the configured minimum match score.
	Threshold() int

	// OutputDir returns the directory run outputs are written to.
	OutputDir() string

	// GeminiAPIKey returns the API key for form extraction, if set.
	GeminiAPIKey() string

	// ExtractionModel returns the Gemini model used for form extraction.
	ExtractionModel() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}

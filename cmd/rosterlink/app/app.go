// Package app provides the application context and dependency management
// for the rosterlink CLI. It centralizes configuration, logging, and the
// pipeline instance behind a single injectable type.
package app

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/routeworks/rosterlink"
	"github.com/routeworks/rosterlink/internal/appcontext"
	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/reconcile"
)

// App represents the rosterlink application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.RWMutex
	pipeline rosterlink.RosterLink
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string { return a.version }

// Commit returns the git commit hash.
func (a *App) Commit() string { return a.commit }

// Date returns the build date.
func (a *App) Date() string { return a.date }

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string { return a.builtBy }

// Config returns the application configuration.
func (a *App) Config() *Config { return a.config }

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger { return a.logger }

// Threshold returns the configured minimum match score.
func (a *App) Threshold() int { return a.config.Threshold }

// OutputDir returns the directory run outputs are written to.
func (a *App) OutputDir() string { return a.config.OutputDir }

// GeminiAPIKey returns the API key for form extraction, if set.
func (a *App) GeminiAPIKey() string { return a.config.GeminiAPIKey }

// ExtractionModel returns the Gemini model used for form extraction.
func (a *App) ExtractionModel() string { return a.config.ExtractionModel }

// Mapping returns the explicit field mapping loaded from the configured
// mapping file, or nil when auto-mapping is in effect.
func (a *App) Mapping() (reconcile.FieldMapping, error) {
	if a.config.MappingFile == "" {
		return nil, nil
	}
	return LoadMapping(a.config.MappingFile)
}

// Pipeline returns the pipeline instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Pipeline() (rosterlink.RosterLink, error) {
	a.mu.RLock()
	if a.pipeline != nil {
		rl := a.pipeline
		a.mu.RUnlock()
		return rl, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	opts, err := a.buildPipelineOptions()
	if err != nil {
		return nil, err
	}
	rl, err := rosterlink.New(opts...)
	if err != nil {
		return nil, err
	}

	a.pipeline = rl
	return rl, nil
}

// PipelineWithOptions returns a new pipeline instance with custom options.
func (a *App) PipelineWithOptions(opts ...rosterlink.Option) (rosterlink.RosterLink, error) {
	return rosterlink.New(opts...)
}

// buildPipelineOptions constructs pipeline options from the app
// configuration.
func (a *App) buildPipelineOptions() ([]rosterlink.Option, error) {
	opts := []rosterlink.Option{
		rosterlink.WithThreshold(a.config.Threshold),
	}

	mapping, err := a.Mapping()
	if err != nil {
		return nil, err
	}
	if len(mapping) > 0 {
		opts = append(opts, rosterlink.WithFieldMapping(mapping))
	}

	if len(a.config.SourceNameColumns) > 0 {
		opts = append(opts, rosterlink.WithSourceNameColumns(a.config.SourceNameColumns...))
	}
	if len(a.config.TargetNameColumns) > 0 {
		opts = append(opts, rosterlink.WithTargetNameColumns(a.config.TargetNameColumns...))
	}

	return opts, nil
}

// ExitOnError prints an error and exits with status 1. Meant for top-level
// error handling in main.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithPipeline sets a custom pipeline instance (useful for testing).
func WithPipeline(rl rosterlink.RosterLink) Option {
	return func(a *App) error {
		a.pipeline = rl
		return nil
	}
}

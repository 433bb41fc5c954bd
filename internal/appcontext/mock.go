package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/routeworks/rosterlink"
	"github.com/routeworks/rosterlink/pkg/reconcile"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function
// field. A nil function field returns a default value.
type Mock struct {
	PipelineFunc            func() (rosterlink.RosterLink, error)
	PipelineWithOptionsFunc func(...rosterlink.Option) (rosterlink.RosterLink, error)
	MappingFunc             func() (reconcile.FieldMapping, error)
	LoggerFunc              func() *zerolog.Logger
	ThresholdFunc           func() int
	OutputDirFunc           func() string
	GeminiAPIKeyFunc        func() string
	ExtractionModelFunc     func() string
	VersionFunc             func() string
	CommitFunc              func() string
	DateFunc                func() string
	BuiltByFunc             func() string
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// Pipeline returns a pipeline using the mock function, or a default
// instance.
func (m *Mock) Pipeline() (rosterlink.RosterLink, error) {
	if m.PipelineFunc != nil {
		return m.PipelineFunc()
	}
	return rosterlink.New()
}

// PipelineWithOptions returns a pipeline using the mock function, or a new
// instance with the given options.
func (m *Mock) PipelineWithOptions(opts ...rosterlink.Option) (rosterlink.RosterLink, error) {
	if m.PipelineWithOptionsFunc != nil {
		return m.PipelineWithOptionsFunc(opts...)
	}
	return rosterlink.New(opts...)
}

// Mapping returns a mapping using the mock function or nil.
func (m *Mock) Mapping() (reconcile.FieldMapping, error) {
	if m.MappingFunc != nil {
		return m.MappingFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a nop logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	nop := zerolog.Nop()
	return &nop
}

// Threshold returns the threshold using the mock function or the default.
func (m *Mock) Threshold() int {
	if m.ThresholdFunc != nil {
		return m.ThresholdFunc()
	}
	return rosterlink.DefaultThreshold
}

// OutputDir returns the output directory using the mock function or ".".
func (m *Mock) OutputDir() string {
	if m.OutputDirFunc != nil {
		return m.OutputDirFunc()
	}
	return "."
}

// GeminiAPIKey returns the API key using the mock function or "".
func (m *Mock) GeminiAPIKey() string {
	if m.GeminiAPIKeyFunc != nil {
		return m.GeminiAPIKeyFunc()
	}
	return ""
}

// ExtractionModel returns the model using the mock function or "".
func (m *Mock) ExtractionModel() string {
	if m.ExtractionModelFunc != nil {
		return m.ExtractionModelFunc()
	}
	return ""
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the commit using the mock function or "none".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "none"
}

// Date returns the date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

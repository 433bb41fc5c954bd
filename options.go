package rosterlink

import (
	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/reconcile"
)

// DefaultThreshold is the minimum fuzzy score for an accepted match.
const DefaultThreshold = 85

// Option is a function that configures a RosterLink instance.
type Option func(*config) error

// config holds pipeline settings.
type config struct {
	threshold int

	// Explicit identity columns per side; empty means detect.
	sourceNameColumns []string
	targetNameColumns []string

	// Reconciliation settings, passed through to the reconciler.
	mapping        reconcile.FieldMapping
	firstColumn    string
	lastColumn     string
	preserveFields []string
	transportField string

	hasNameSplit      bool
	hasPreserveFields bool
	hasTransportField bool
}

func newConfig() *config {
	return &config{threshold: DefaultThreshold}
}

// reconcileOptions translates the config into reconciler options, only
// overriding what was explicitly set.
func (c *config) reconcileOptions() []reconcile.Option {
	var opts []reconcile.Option
	if len(c.mapping) > 0 {
		opts = append(opts, reconcile.WithMapping(c.mapping))
	}
	if c.hasNameSplit {
		opts = append(opts, reconcile.WithNameColumns(c.firstColumn, c.lastColumn))
	}
	if c.hasPreserveFields {
		opts = append(opts, reconcile.WithPreserveFields(c.preserveFields...))
	}
	if c.hasTransportField {
		opts = append(opts, reconcile.WithTransportationField(c.transportField))
	}
	return opts
}

// WithThreshold sets the minimum fuzzy score an assignment must reach.
func WithThreshold(threshold int) Option {
	return func(c *config) error {
		if threshold < 0 || threshold > 100 {
			return errors.NewValidationError("threshold", threshold, "must be between 0 and 100")
		}
		c.threshold = threshold
		return nil
	}
}

// WithSourceNameColumns pins the source roster's identity columns,
// bypassing detection.
func WithSourceNameColumns(cols ...string) Option {
	return func(c *config) error {
		c.sourceNameColumns = cols
		return nil
	}
}

// WithTargetNameColumns pins the target roster's identity columns,
// bypassing detection.
func WithTargetNameColumns(cols ...string) Option {
	return func(c *config) error {
		c.targetNameColumns = cols
		return nil
	}
}

// WithFieldMapping supplies an explicit source-to-target field mapping,
// disabling automatic derivation.
func WithFieldMapping(m reconcile.FieldMapping) Option {
	return func(c *config) error {
		c.mapping = m
		return nil
	}
}

// WithNameSplitColumns overrides the target's first/last name columns used
// when writing back a corrected name.
func WithNameSplitColumns(first, last string) Option {
	return func(c *config) error {
		if first == "" || last == "" {
			return errors.NewValidationError("name columns", first+"/"+last, "must be non-empty")
		}
		c.firstColumn = first
		c.lastColumn = last
		c.hasNameSplit = true
		return nil
	}
}

// WithPreserveFields overrides the source fields copied verbatim into the
// reconciled roster.
func WithPreserveFields(fields ...string) Option {
	return func(c *config) error {
		c.preserveFields = fields
		c.hasPreserveFields = true
		return nil
	}
}

// WithTransportationField overrides the free-text field driving
// transportation categorization. Empty disables categorization.
func WithTransportationField(name string) Option {
	return func(c *config) error {
		c.transportField = name
		c.hasTransportField = true
		return nil
	}
}

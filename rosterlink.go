// Package rosterlink links fresh enrollment data against an existing
// student roster and reconciles the two into a single updated roster with a
// change log.
//
// The pipeline has three stages: identity columns are detected on both
// rosters, rows are paired one-to-one by fuzzy name matching, and the
// source's values are then written onto the matched target rows with every
// overwrite recorded. The reconciled roster carries a derived
// transportation category and is ordered by routing priority.
//
// Example usage:
//
//	rl, err := rosterlink.New(rosterlink.WithThreshold(90))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := rl.Run(ctx, source, target)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Summary)
package rosterlink

import (
	"context"

	"github.com/routeworks/rosterlink/pkg/columns"
	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/link"
	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/reconcile"
	"github.com/routeworks/rosterlink/pkg/report"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// RosterLink runs the linking and reconciliation pipeline.
type RosterLink interface {
	// Link pairs rows across the two rosters by fuzzy name matching.
	Link(ctx context.Context, source, target *roster.Roster) (*link.Result, error)

	// Reconcile applies source values onto the matched target rows.
	Reconcile(ctx context.Context, source, target *roster.Roster, links *link.Result) (*reconcile.Result, error)

	// Run executes the full pipeline and assembles the summary.
	Run(ctx context.Context, source, target *roster.Roster) (*Result, error)
}

// Result is the outcome of a full pipeline run.
type Result struct {
	Links          *link.Result
	Reconciliation *reconcile.Result
	Summary        *report.Summary
}

// rosterlink is the internal implementation of the RosterLink interface.
type rosterlink struct {
	config *config
}

// New creates a RosterLink instance with the given options.
func New(opts ...Option) (RosterLink, error) {
	rl := &rosterlink{config: newConfig()}
	for _, opt := range opts {
		if err := opt(rl.config); err != nil {
			return nil, err
		}
	}
	return rl, nil
}

// Link pairs rows across the two rosters. Name columns come from
// configuration when set, otherwise from detection; detection failure on
// either side is a DetectionError.
func (rl *rosterlink) Link(ctx context.Context, source, target *roster.Roster) (*link.Result, error) {
	if source == nil || target == nil {
		return nil, errors.ErrRosterNotLoaded
	}
	if source.Len() == 0 {
		return nil, errors.ErrEmptyRoster
	}

	sourceColumns, err := rl.nameColumns(ctx, source, rl.config.sourceNameColumns, "source")
	if err != nil {
		return nil, err
	}
	targetColumns, err := rl.nameColumns(ctx, target, rl.config.targetNameColumns, "target")
	if err != nil {
		return nil, err
	}

	return link.Link(ctx, source, target, sourceColumns, targetColumns, rl.config.threshold)
}

// nameColumns resolves the identity columns for one side.
func (rl *rosterlink) nameColumns(ctx context.Context, t *roster.Roster, configured []string, side string) ([]string, error) {
	if len(configured) > 0 {
		for _, col := range configured {
			if !t.HasColumn(col) {
				return nil, errors.NewNotFoundError("column", col)
			}
		}
		return configured, nil
	}

	set := columns.Detect(t)
	if set.Empty() {
		return nil, errors.NewDetectionError(side, t.Columns())
	}

	logging.FromContext(ctx).Debug().
		Str("side", side).
		Strs("columns", set.Columns).
		Msg("detected name columns")

	return set.Columns, nil
}

// Reconcile applies source values onto the matched target rows using the
// configured mapping and field settings.
func (rl *rosterlink) Reconcile(ctx context.Context, source, target *roster.Roster, links *link.Result) (*reconcile.Result, error) {
	rec, err := reconcile.New(rl.config.reconcileOptions()...)
	if err != nil {
		return nil, err
	}
	return rec.Reconcile(ctx, source, target, links)
}

// Run executes the full pipeline: link, reconcile, summarize.
func (rl *rosterlink) Run(ctx context.Context, source, target *roster.Roster) (*Result, error) {
	links, err := rl.Link(logging.WithOperation(ctx, "link"), source, target)
	if err != nil {
		return nil, err
	}

	reconciliation, err := rl.Reconcile(logging.WithOperation(ctx, "reconcile"), source, target, links)
	if err != nil {
		return nil, err
	}

	return &Result{
		Links:          links,
		Reconciliation: reconciliation,
		Summary:        report.Build(source, target, links, reconciliation),
	}, nil
}

// Package cmd implements the rosterlink CLI subcommands. Commands accept
// the appcontext.Interface for their dependencies, which keeps them
// testable with mocks.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routeworks/rosterlink"
	"github.com/routeworks/rosterlink/internal/appcontext"
	"github.com/routeworks/rosterlink/internal/export"
	"github.com/routeworks/rosterlink/internal/sources"
	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// NewProcessCommand creates the process command, which runs the full
// pipeline: load, link, reconcile, export.
func NewProcessCommand(appCtx appcontext.Interface) *cobra.Command {
	var (
		sourceFile string
		targetFile string
		outputDir  string
		threshold  int
	)

	c := &cobra.Command{
		Use:   "process",
		Short: "Link, reconcile, and export two rosters",
		Long: `Process runs the full pipeline: both rosters are loaded, rows are
paired by fuzzy name matching, the source's values are reconciled onto
the matched target rows, and the updated roster, change log, and run
summary are written to the output directory.`,
		Example: `  rosterlink process --source enrollment.csv --target roster.csv
  rosterlink process --source enrollment.csv --target roster.csv --threshold 90 --output runs/fall`,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(c.Context(), appCtx.Logger())

			source, target, err := loadRosters(c, sourceFile, targetFile)
			if err != nil {
				return err
			}

			rl, err := pipelineFor(appCtx, c, threshold)
			if err != nil {
				return err
			}

			result, err := rl.Run(ctx, source, target)
			if err != nil {
				return err
			}

			dir := outputDir
			if dir == "" {
				dir = appCtx.OutputDir()
			}
			writer := export.NewWriter(dir)

			rosterPath, err := writer.WriteRoster(result.Reconciliation.Roster)
			if err != nil {
				return err
			}
			changesPath, err := writer.WriteChanges(result.Reconciliation.Changes)
			if err != nil {
				return err
			}
			summaryPath, err := writer.WriteSummary(result.Summary)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintln(out, result.Summary)
			fmt.Fprintf(out, "Roster:    %s\n", rosterPath)
			fmt.Fprintf(out, "Changes:   %s\n", changesPath)
			fmt.Fprintf(out, "Summary:   %s\n", summaryPath)

			return nil
		},
	}

	c.Flags().StringVarP(&sourceFile, "source", "s", "", "enrollment roster CSV (required)")
	c.Flags().StringVarP(&targetFile, "target", "t", "", "roster CSV to update (required)")
	c.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default from config)")
	c.Flags().IntVar(&threshold, "threshold", 0, "minimum match score 0-100 (default from config)")
	_ = c.MarkFlagRequired("source")
	_ = c.MarkFlagRequired("target")

	return c
}

// loadRosters loads the two roster CSVs.
func loadRosters(c *cobra.Command, sourceFile, targetFile string) (*roster.Roster, *roster.Roster, error) {
	ctx := c.Context()

	source, err := sources.NewCSV(sourceFile, sources.SideSource).Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	target, err := sources.NewCSV(targetFile, sources.SideTarget).Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return source, target, nil
}

// pipelineFor returns the app's default pipeline, or a custom one when the
// threshold flag was set explicitly.
func pipelineFor(appCtx appcontext.Interface, c *cobra.Command, threshold int) (rosterlink.RosterLink, error) {
	if !c.Flags().Changed("threshold") {
		return appCtx.Pipeline()
	}

	opts := []rosterlink.Option{rosterlink.WithThreshold(threshold)}
	mapping, err := appCtx.Mapping()
	if err != nil {
		return nil, err
	}
	if len(mapping) > 0 {
		opts = append(opts, rosterlink.WithFieldMapping(mapping))
	}
	return appCtx.PipelineWithOptions(opts...)
}

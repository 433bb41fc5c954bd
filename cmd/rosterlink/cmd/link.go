package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routeworks/rosterlink/internal/appcontext"
	"github.com/routeworks/rosterlink/pkg/logging"
)

// NewLinkCommand creates the link command, which pairs rows without
// reconciling. Useful for previewing match quality before committing to a
// full run.
func NewLinkCommand(appCtx appcontext.Interface) *cobra.Command {
	var (
		sourceFile string
		targetFile string
		threshold  int
		showMisses bool
	)

	c := &cobra.Command{
		Use:   "link",
		Short: "Pair roster rows by fuzzy name matching",
		Long: `Link pairs rows across the two rosters by fuzzy name matching and
prints the assignments without changing anything. Use --near-misses to
see the best rejected candidate for each unmatched row.`,
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

			result, err := rl.Link(ctx, source, target)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			for _, pair := range result.Matches {
				fmt.Fprintf(out, "%3d  %-30s -> %-30s\n", pair.Score, pair.SourceName, pair.TargetName)
			}
			fmt.Fprintf(out, "\n%d matched, %d unmatched source, %d unmatched target\n",
				len(result.Matches), len(result.UnmatchedSource), len(result.UnmatchedTarget))

			for _, cand := range result.UnmatchedSource {
				fmt.Fprintf(out, "unmatched: %s\n", cand.Name)
			}

			if showMisses {
				for _, miss := range result.NearMisses {
					fmt.Fprintf(out, "near miss: %-30s best %q (%d)\n", miss.SourceName, miss.TargetName, miss.Score)
				}
			}

			return nil
		},
	}

	c.Flags().StringVarP(&sourceFile, "source", "s", "", "enrollment roster CSV (required)")
	c.Flags().StringVarP(&targetFile, "target", "t", "", "roster CSV to match against (required)")
	c.Flags().IntVar(&threshold, "threshold", 0, "minimum match score 0-100 (default from config)")
	c.Flags().BoolVar(&showMisses, "near-misses", false, "show best rejected candidate per unmatched row")
	_ = c.MarkFlagRequired("source")
	_ = c.MarkFlagRequired("target")

	return c
}

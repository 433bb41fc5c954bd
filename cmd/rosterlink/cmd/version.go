package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/routeworks/rosterlink/internal/appcontext"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(c *cobra.Command, _ []string) {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "rosterlink %s\n", appCtx.Version())
			fmt.Fprintf(out, "  commit:   %s\n", appCtx.Commit())
			fmt.Fprintf(out, "  built:    %s by %s\n", appCtx.Date(), appCtx.BuiltBy())
			fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}

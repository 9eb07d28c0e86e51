package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeset/internal/cli"
)

func newRootCmd(app *cli.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "rangeset",
		Short:             cli.ShortDesc,
		Long:              cli.LongDesc,
		SilenceUsage:      true,
		PersistentPreRunE: app.Prepare,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	app.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newShowCmd(app),
		newUnionCmd(app),
		newIntersectCmd(app),
		newDiffCmd(app),
		newSymDiffCmd(app),
		newComplementCmd(app),
		newContainsCmd(app),
		newContainsAllCmd(app),
		newOverlapsCmd(app),
		newIterCmd(app),
		newCountCmd(app),
		newCPUsCmd(app),
		newPIDsCmd(app),
	)
	return rootCmd
}

// Execute runs the command line in os.Args and returns the process exit code.
// Every call builds a fresh command tree, so flags never leak between runs.
func Execute() int {
	if err := newRootCmd(cli.NewApp()).ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

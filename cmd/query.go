package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeset/internal/cli"
)

func newContainsCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "contains EXPR VALUE...",
		Short: "Report for each value whether the operand holds it",
		Args:  cobra.MinimumNArgs(2),
		RunE:  app.Contains,
	}
}

func newContainsAllCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "contains-all A B",
		Short: "Report whether A holds every value of B",
		Args:  cobra.ExactArgs(2),
		RunE:  app.ContainsAll,
	}
}

func newOverlapsCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "overlaps A B",
		Short: "Report whether A and B share a value",
		Args:  cobra.ExactArgs(2),
		RunE:  app.Overlaps,
	}
}

func newIterCmd(app *cli.App) *cobra.Command {
	iterCmd := &cobra.Command{
		Use:   "iter EXPR",
		Short: "Print the values of the operand in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE:  app.Iter,
	}
	iterCmd.Flags().IntVarP(&app.Limit, "limit", "n", 1024, "stop after this many values, 0 for no limit")
	return iterCmd
}

func newCountCmd(app *cli.App) *cobra.Command {
	countCmd := &cobra.Command{
		Use:   "count EXPR",
		Short: "Print the number of values in the operand",
		Args:  cobra.ExactArgs(1),
		RunE:  app.Count,
	}
	countCmd.Flags().BoolVarP(&app.Human, "human", "H", false, "group digits with commas")
	return countCmd
}

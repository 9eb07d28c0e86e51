package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeset/internal/cli"
)

func newShowCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show EXPR",
		Short: "Print the canonical set of an operand",
		Args:  cobra.ExactArgs(1),
		RunE:  app.Show,
	}
}

func newUnionCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "union EXPR...",
		Short: "Print the values found in any operand",
		Args:  cobra.MinimumNArgs(1),
		RunE:  app.Union,
	}
}

func newIntersectCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect EXPR...",
		Short: "Print the values found in every operand",
		Args:  cobra.MinimumNArgs(1),
		RunE:  app.Intersect,
	}
}

func newDiffCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B...",
		Short: "Print the values of A found in no other operand",
		Args:  cobra.MinimumNArgs(2),
		RunE:  app.Diff,
	}
}

func newSymDiffCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "symdiff A B",
		Short: "Print the values found in exactly one of A and B",
		Args:  cobra.ExactArgs(2),
		RunE:  app.SymDiff,
	}
}

func newComplementCmd(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:   "complement EXPR",
		Short: "Print every value of the domain missing from the operand",
		Args:  cobra.ExactArgs(1),
		RunE:  app.Complement,
	}
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/rangeset/internal/cli"
)

func newCPUsCmd(app *cli.App) *cobra.Command {
	cpusCmd := &cobra.Command{
		Use:   "cpus",
		Short: "Print the logical CPU indices of this host as a set",
		Args:  cobra.NoArgs,
		RunE:  app.CPUs,
	}
	cpusCmd.Flags().StringVarP(&app.Mask, "mask", "m", "", "keep only the indices in this cpu list, e.g. 0-3,8")
	return cpusCmd
}

func newPIDsCmd(app *cli.App) *cobra.Command {
	pidsCmd := &cobra.Command{
		Use:   "pids",
		Short: "Print the running process ids of this host as a set",
		Args:  cobra.NoArgs,
		RunE:  app.PIDs,
	}
	pidsCmd.Flags().StringVarP(&app.Mask, "mask", "m", "", "keep only the ids in this list, e.g. 1-100")
	return pidsCmd
}

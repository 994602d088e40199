package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [notebooks...]",
		Short: "List notebooks with cell statistics",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(parsePaths(args)...)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

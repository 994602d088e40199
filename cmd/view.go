package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/quire/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <notebook>",
		Short: "View the cells of a notebook",
		Long:  "View the cells of a notebook without editing it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

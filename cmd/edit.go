package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/controller"
	m "github.com/mouse-blink/quire/internal/model"
)

// editCmd represents the edit command.
var editCmd = newEditCmd()

func newEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <notebook>",
		Short: "Edit a notebook interactively",
		Long:  editLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !controller.IsTTY(cmd.OutOrStdout()) {
				return fmt.Errorf("edit requires an interactive terminal")
			}

			return workflow.Edit(m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(editCmd)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/domain"
)

// moveCmd represents the move command.
var moveCmd = newMoveCmd()

var moveFromFlag int
var moveLenFlag int
var moveToFlag int

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <notebook>",
		Short: "Move a range of cells",
		Long:  moveLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:  parsePaths(args),
				Atomic: true,
				Ops: []adapter.ScriptOp{
					{Op: "move", Index: moveFromFlag, Count: moveLenFlag, To: moveToFlag},
				},
			})
		},
	}
	cmd.Flags().IntVarP(&moveFromFlag, "from", "f", 0, "index of the first cell to move")
	cmd.Flags().IntVarP(&moveLenFlag, "len", "l", 1, "number of cells to move")
	cmd.Flags().IntVarP(&moveToFlag, "to", "t", 0, "target index, counted after the moved cells are removed")

	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func init() {
	rootCmd.AddCommand(moveCmd)
}

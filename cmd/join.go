package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/domain"
)

// joinCmd represents the join command.
var joinCmd = newJoinCmd()

var joinCellFlag int
var joinDirectionFlag string

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join <notebook>",
		Short: "Join a cell with its neighbour",
		Long:  joinLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if joinDirectionFlag != "above" && joinDirectionFlag != "below" {
				return fmt.Errorf("invalid direction %q: must be above or below", joinDirectionFlag)
			}

			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:  parsePaths(args),
				Atomic: true,
				Ops: []adapter.ScriptOp{
					{Op: "join", Index: joinCellFlag, Direction: joinDirectionFlag},
				},
			})
		},
	}
	cmd.Flags().IntVarP(&joinCellFlag, "cell", "c", 0, "index of the cell to join")
	cmd.Flags().StringVarP(&joinDirectionFlag, "direction", "d", "below", "join direction: above or below")

	return cmd
}

func init() {
	rootCmd.AddCommand(joinCmd)
}

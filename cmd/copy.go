package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/domain"
)

// copyCmd represents the copy command.
var copyCmd = newCopyCmd()

var copyFromFlag int
var copyLenFlag int

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <notebook>",
		Short: "Duplicate a range of cells",
		Long: `Duplicate a range of cells immediately below itself. Copies never carry
outputs; they have not been executed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:  parsePaths(args),
				Atomic: true,
				Ops: []adapter.ScriptOp{
					{Op: "copy", Index: copyFromFlag, Count: copyLenFlag},
				},
			})
		},
	}
	cmd.Flags().IntVarP(&copyFromFlag, "from", "f", 0, "index of the first cell to copy")
	cmd.Flags().IntVarP(&copyLenFlag, "len", "l", 1, "number of cells to copy")

	return cmd
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

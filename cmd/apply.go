package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/domain"
	m "github.com/mouse-blink/quire/internal/model"
)

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

var applyScriptFlag string
var applyOutFlag string
var applyParallelFlag int
var applyAtomicFlag bool

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [notebooks...]",
		Short: "Apply a scripted edit batch to notebooks",
		Long:  applyLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:    parsePaths(args),
				Script:   m.Path(applyScriptFlag),
				Out:      m.Path(applyOutFlag),
				Parallel: applyParallelFlag,
				Atomic:   applyAtomicFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&applyScriptFlag, "script", "f", "", "YAML edit script to apply")
	cmd.Flags().StringVarP(&applyOutFlag, "out", "o", "", "write the result to this path instead of saving in place (single notebook only)")
	cmd.Flags().IntVarP(&applyParallelFlag, "parallel", "p", 1, "number of notebooks to edit concurrently")
	cmd.Flags().BoolVarP(&applyAtomicFlag, "atomic", "a", true, "commit the whole batch or nothing per notebook")

	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

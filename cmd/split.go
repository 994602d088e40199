package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/domain"
)

// splitCmd represents the split command.
var splitCmd = newSplitCmd()

var splitCellFlag int
var splitAtFlags []string

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <notebook>",
		Short: "Split a cell at one or more points",
		Long:  splitLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := parseSplitPoints(splitAtFlags)
			if err != nil {
				return err
			}

			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Paths:  parsePaths(args),
				Atomic: true,
				Ops: []adapter.ScriptOp{
					{Op: "split", Index: splitCellFlag, Points: points},
				},
			})
		},
	}
	cmd.Flags().IntVarP(&splitCellFlag, "cell", "c", 0, "index of the cell to split")
	cmd.Flags().StringArrayVarP(&splitAtFlags, "at", "t", nil, "split point as LINE:COL, 0-based (can be repeated)")

	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func parseSplitPoints(specs []string) ([]adapter.ScriptPoint, error) {
	points := make([]adapter.ScriptPoint, 0, len(specs))

	for _, spec := range specs {
		var p adapter.ScriptPoint
		if _, err := fmt.Sscanf(spec, "%d:%d", &p.Line, &p.Col); err != nil {
			return nil, fmt.Errorf("invalid split point %q: expected LINE:COL", spec)
		}

		if p.Line < 0 || p.Col < 0 {
			return nil, fmt.Errorf("invalid split point %q: negative coordinates", spec)
		}

		points = append(points, p)
	}

	return points, nil
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

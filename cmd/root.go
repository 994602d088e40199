// Package cmd provides the root command and CLI setup for quire.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/adapter"
	"github.com/mouse-blink/quire/internal/controller"
	"github.com/mouse-blink/quire/internal/domain"
	m "github.com/mouse-blink/quire/internal/model"
)

var registry *adapter.CodecRegistry
var store adapter.NotebookStore
var scripts adapter.ScriptStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	registry = adapter.NewDefaultRegistry()
	store = adapter.NewLocalNotebookStore(registry)
	scripts = adapter.NewLocalScriptStore()
	workflow = domain.NewWorkflow(store, scripts, ui)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quire [notebooks...]",
		Short: "Structural notebook cell editor",
		Long: `Quire edits notebook cells structurally: join, split, move, copy and
delete cells, in single commands or scripted batches, with full undo in
the interactive editor.

Supported formats:
  - .ipynb    Jupyter nbformat 4
  - .qrn      quire's native YAML format

Called with notebook paths and no subcommand, quire lists per-notebook
cell statistics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(parsePaths(args)...)
		},
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

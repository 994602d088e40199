// Package controller provides the output and interaction surfaces for the
// quire CLI: a plain table UI for pipes and an interactive TUI for terminals.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/quire/internal/domain/cellops"
	m "github.com/mouse-blink/quire/internal/model"
)

// EditorSession is the slice of a notebook editing session the interactive
// editor drives. The domain session satisfies it; the controller never
// mutates the notebook directly.
type EditorSession interface {
	Notebook() *m.Notebook
	Selection() m.SelectionState
	SetSelection(sel m.SelectionState)

	Join(dir cellops.JoinDirection) error
	JoinSelections(ctx context.Context, dir cellops.JoinDirection) (int, error)
	MoveFocused(delta int) error
	CopyFocused() error
	DeleteFocused() error
	InsertAt(index int, cell *m.Cell) error
	ToggleKind() error

	Undo() bool
	Redo() bool
	CanUndo() bool
	CanRedo() bool

	Dirty() bool
	Save() error
}

// UI defines how workflow results reach the user. Implementations can use
// different output methods (plain tables, TUI).
type UI interface {
	DisplayStats(stats []m.NotebookStat) error
	DisplayNotebook(nb *m.Notebook) error
	DisplayApplyOutcomes(outcomes []m.ApplyOutcome) error
	RunEditor(session EditorSession) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

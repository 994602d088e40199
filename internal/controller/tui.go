package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/quire/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayStats prints the per-notebook summary with light styling.
func (t *TUI) DisplayStats(stats []m.NotebookStat) error {
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	total := 0

	for _, stat := range stats {
		total += stat.Cells

		_, _ = fmt.Fprintf(t.output, "%s  %s (%d code, %d markup, %d lines)\n",
			countStyle.Render(fmt.Sprintf("%4d", stat.Cells)),
			pathStyle.Render(string(stat.Origin)),
			stat.CodeCells, stat.MarkupCells, stat.Lines,
		)
	}

	_, _ = fmt.Fprintf(t.output, "%d cell(s) across %d notebook(s)\n", total, len(stats))

	return nil
}

// DisplayNotebook opens the interactive cell browser.
func (t *TUI) DisplayNotebook(nb *m.Notebook) error {
	model := newBrowseModel(nb)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayApplyOutcomes prints one line per notebook processed.
func (t *TUI) DisplayApplyOutcomes(outcomes []m.ApplyOutcome) error {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	failed := 0

	for _, out := range outcomes {
		if out.Err != nil {
			failed++

			_, _ = fmt.Fprintf(t.output, "%s %s: %v\n", errStyle.Render("✗"), out.Origin, out.Err)

			continue
		}

		_, _ = fmt.Fprintf(t.output, "%s %s: %d -> %d cells (%s)\n",
			okStyle.Render("✓"), out.Origin, out.CellsBefore, out.CellsAfter, out.Saved)
	}

	_, _ = fmt.Fprintf(t.output, "%d notebook(s) processed, %d failed\n", len(outcomes), failed)

	return nil
}

// RunEditor opens the interactive structural editor for the session.
func (t *TUI) RunEditor(session EditorSession) error {
	model := newEditModel(session)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

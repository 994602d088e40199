package controller

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/quire/internal/model"
)

// ErrNoTerminal is returned when an interactive surface is requested on a
// non-interactive output.
var ErrNoTerminal = errors.New("interactive editor requires a terminal")

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayStats prints the per-notebook cell counts as a table.
func (s *SimpleUI) DisplayStats(stats []m.NotebookStat) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Notebook", "Cells", "Code", "Markup", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totals := m.NotebookStat{}

	for _, stat := range stats {
		table.Append([]string{
			string(stat.Origin),
			fmt.Sprintf("%d", stat.Cells),
			fmt.Sprintf("%d", stat.CodeCells),
			fmt.Sprintf("%d", stat.MarkupCells),
			fmt.Sprintf("%d", stat.Lines),
		})

		totals.Cells += stat.Cells
		totals.CodeCells += stat.CodeCells
		totals.MarkupCells += stat.MarkupCells
		totals.Lines += stat.Lines
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Notebooks %d", len(stats)),
		fmt.Sprintf("%d", totals.Cells),
		fmt.Sprintf("%d", totals.CodeCells),
		fmt.Sprintf("%d", totals.MarkupCells),
		fmt.Sprintf("%d", totals.Lines),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayNotebook prints one line per cell: index, kind, size, first line.
func (s *SimpleUI) DisplayNotebook(nb *m.Notebook) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Kind", "Lang", "Lines", "Preview"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for i, cell := range nb.Cells {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			string(cell.Kind),
			cell.Language,
			fmt.Sprintf("%d", cell.LineCount()),
			cellPreview(cell),
		})
	}

	table.Render()
	s.printf("%s (%d cells)\n\n%s", nb.Origin, nb.Len(), tableBuffer.String())

	return nil
}

// DisplayApplyOutcomes prints one line per notebook processed.
func (s *SimpleUI) DisplayApplyOutcomes(outcomes []m.ApplyOutcome) error {
	failed := 0

	for _, out := range outcomes {
		if out.Err != nil {
			failed++

			s.printf("%s: error: %v\n", out.Origin, out.Err)

			continue
		}

		s.printf("%s: %d -> %d cells, saved to %s\n", out.Origin, out.CellsBefore, out.CellsAfter, out.Saved)
	}

	s.printf("%d notebook(s) processed, %d failed\n", len(outcomes), failed)

	return nil
}

// RunEditor is unavailable without a terminal.
func (s *SimpleUI) RunEditor(_ EditorSession) error {
	return ErrNoTerminal
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// cellPreview returns the first non-empty source line, truncated for table
// display.
func cellPreview(cell *m.Cell) string {
	const maxPreview = 48

	line := ""

	for _, l := range cell.Source {
		if l != "" {
			line = l

			break
		}
	}

	runes := []rune(line)
	if len(runes) > maxPreview {
		return string(runes[:maxPreview-1]) + "…"
	}

	return line
}

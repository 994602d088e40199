package controller

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/quire/internal/domain/cellops"
	m "github.com/mouse-blink/quire/internal/model"
)

// editModel is the interactive structural editor. Every structural change
// goes through the session; the model only renders state and maps keys.
type editModel struct {
	session EditorSession
	width   int
	height  int
	status  string
}

func newEditModel(session EditorSession) editModel {
	return editModel{session: session}
}

func (e editModel) Init() tea.Cmd {
	return nil
}

func (e editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e, nil
}

func (e editModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit

	case "up", "k":
		e.moveFocus(-1)
	case "down", "j":
		e.moveFocus(1)
	case "shift+up":
		e.extendFocus(-1)
	case "shift+down":
		e.extendFocus(1)

	case "a":
		e.report("joined above", e.session.Join(cellops.JoinAbove))
	case "b":
		e.report("joined below", e.session.Join(cellops.JoinBelow))
	case "A":
		n, err := e.session.JoinSelections(context.Background(), cellops.JoinAbove)
		e.report(fmt.Sprintf("joined %d selection(s)", n), err)
	case "alt+up":
		e.report("moved up", e.session.MoveFocused(-1))
	case "alt+down":
		e.report("moved down", e.session.MoveFocused(1))
	case "c":
		e.report("copied", e.session.CopyFocused())
	case "d":
		e.report("deleted", e.session.DeleteFocused())
	case "n":
		e.insertBelow(m.KindCode)
	case "N":
		e.insertBelow(m.KindMarkup)
	case "t":
		e.report("kind changed", e.session.ToggleKind())

	case "u":
		if e.session.Undo() {
			e.status = "undone"
		} else {
			e.status = "nothing to undo"
		}
	case "ctrl+r":
		if e.session.Redo() {
			e.status = "redone"
		} else {
			e.status = "nothing to redo"
		}

	case "s":
		e.report("saved", e.session.Save())
	}

	return e, nil
}

func (e *editModel) moveFocus(delta int) {
	nb := e.session.Notebook()
	if nb.Len() == 0 {
		return
	}

	sel := e.session.Selection()

	start := sel.Focus.Normalize().Start + delta
	if start < 0 {
		start = 0
	}

	if start > nb.Len()-1 {
		start = nb.Len() - 1
	}

	e.session.SetSelection(m.SelectionState{Focus: m.CellRange{Start: start, End: start + 1}})
}

func (e *editModel) extendFocus(delta int) {
	nb := e.session.Notebook()
	if nb.Len() == 0 {
		return
	}

	sel := e.session.Selection()
	focus := sel.Focus.Normalize()

	focus.End += delta
	if focus.End <= focus.Start {
		focus.End = focus.Start + 1
	}

	e.session.SetSelection(m.SelectionState{Focus: focus.ClampTo(nb.Len())})
}

func (e *editModel) insertBelow(kind m.CellKind) {
	sel := e.session.Selection()
	index := sel.Focus.Normalize().End

	cell := &m.Cell{Kind: kind}
	if kind == m.KindMarkup {
		cell.Language = "markdown"
	}

	e.report("inserted", e.session.InsertAt(index, cell))
}

// report records the outcome of an operation in the status line. Explicit
// rejections are shown verbatim; they are expected user-facing outcomes,
// not failures.
func (e *editModel) report(ok string, err error) {
	if err != nil {
		e.status = err.Error()

		return
	}

	e.status = ok
}

func (e editModel) View() string {
	nb := e.session.Notebook()
	sel := e.session.Selection()
	focus := sel.Focus.Normalize()

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	dirty := ""
	if e.session.Dirty() {
		dirty = " [+]"
	}

	header := headerStyle.Render(fmt.Sprintf("%s%s — %d cells (v%d)", nb.Origin, dirty, nb.Len(), nb.Version))

	rows := e.renderCells(nb, focus)

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Padding(0, 2)
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(e.width)

	footer := footerStyle.Render(
		"↑/↓ focus • shift+↑/↓ extend • a/b join • alt+↑/↓ move • c copy • d delete • n/N insert • t kind • u undo • ctrl+r redo • s save • q quit",
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		rows,
		statusStyle.Render(e.status),
		footer,
	)
}

func (e editModel) renderCells(nb *m.Notebook, focus m.CellRange) string {
	if nb.Len() == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render("empty notebook — press n to insert a cell")
	}

	visible := e.visibleRows()

	// Keep the focused cell in the visible window.
	offset := 0
	if focus.Start >= visible {
		offset = focus.Start - visible + 1
	}

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("8"))
	plainStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	kindStyle := lipgloss.NewStyle().Width(7)

	var sb strings.Builder

	for i := offset; i < nb.Len() && i < offset+visible; i++ {
		cell := nb.CellAt(i)
		preview := truncateToWidth(cellPreview(cell), maxInt(e.width-20, 10))

		marker := " "
		style := plainStyle

		switch {
		case focus.Contains(i):
			marker = ">"
			style = focusedStyle
		case selectionContains(e.session.Selection(), i):
			style = selectedStyle
		}

		line := fmt.Sprintf("%s %3d  %s %3dL  %s",
			marker, i, kindStyle.Render(string(cell.Kind)), cell.LineCount(), style.Render(preview))
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (e editModel) visibleRows() int {
	// Header (2), status (1), footer (1), margins (2).
	rows := e.height - 6
	if rows < 5 {
		rows = 5
	}

	return rows
}

func selectionContains(sel m.SelectionState, index int) bool {
	for _, r := range sel.Selections {
		if r.Normalize().Contains(index) {
			return true
		}
	}

	return false
}

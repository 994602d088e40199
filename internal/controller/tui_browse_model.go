package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/quire/internal/model"
)

// Simple delegate for cell list items.
type cellDelegate struct{}

func (d cellDelegate) Height() int  { return 1 }
func (d cellDelegate) Spacing() int { return 0 }
func (d cellDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cellDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	cell, ok := item.(cellItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	kindStyle := lipgloss.NewStyle().Width(7).Foreground(lipgloss.Color("13"))
	if cell.kind == m.KindCode {
		kindStyle = kindStyle.Foreground(lipgloss.Color("10"))
	}

	var lineStyle lipgloss.Style

	if isSelected {
		lineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	} else {
		lineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	}

	width := lm.Width() - 16
	preview := truncateToWidth(cell.preview, width)

	line := fmt.Sprintf("%3d  %s %3dL  %s",
		cell.index,
		kindStyle.Render(string(cell.kind)),
		cell.lines,
		lineStyle.Render(preview),
	)
	_, _ = fmt.Fprint(w, line)
}

// browseModel is a read-only cell browser for the view command.
type browseModel struct {
	origin   m.Path
	cells    int
	width    int
	height   int
	cellList list.Model
}

func newBrowseModel(nb *m.Notebook) browseModel {
	items := make([]list.Item, 0, nb.Len())
	for i, cell := range nb.Cells {
		items = append(items, cellItemFor(i, cell))
	}

	cellList := list.New(items, cellDelegate{}, 80, 20)
	cellList.SetShowPagination(false)
	cellList.SetShowFilter(true)
	cellList.SetShowHelp(false)
	cellList.SetShowTitle(false)
	cellList.SetShowStatusBar(false)
	cellList.FilterInput.Placeholder = "Filter cells…"

	return browseModel{
		origin:   nb.Origin,
		cells:    nb.Len(),
		cellList: cellList,
	}
}

func (b browseModel) Init() tea.Cmd {
	return nil
}

func (b browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.cellList.SetWidth(b.width - 4)
		b.cellList.SetHeight(maxInt(b.height-6, 5))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		default:
			b.cellList, cmd = b.cellList.Update(msg)

			return b, cmd
		}
	}

	return b, cmd
}

func (b browseModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(b.width)

	title := titleStyle.Render(fmt.Sprintf("%s — %d cells", b.origin, b.cells))
	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		b.cellList.View(),
		footer,
	)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

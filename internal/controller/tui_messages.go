package controller

import (
	"fmt"

	m "github.com/mouse-blink/quire/internal/model"
)

// List item types.
type cellItem struct {
	index   int
	kind    m.CellKind
	lang    string
	lines   int
	preview string
}

func (c cellItem) FilterValue() string {
	return fmt.Sprintf("%d %s", c.index, c.preview)
}

func cellItemFor(index int, cell *m.Cell) cellItem {
	return cellItem{
		index:   index,
		kind:    cell.Kind,
		lang:    cell.Language,
		lines:   cell.LineCount(),
		preview: cellPreview(cell),
	}
}

// Package cellops builds structural edit operations for notebook cells.
// Each builder validates its inputs against the current notebook and either
// returns the edits to stage or an explicit rejection; builders never mutate
// the notebook themselves.
package cellops

import (
	m "github.com/mouse-blink/quire/internal/model"
)

// JoinDirection selects which neighbour a join merges with.
type JoinDirection string

const (
	// JoinAbove merges the cell into its predecessor.
	JoinAbove JoinDirection = "above"
	// JoinBelow merges the successor into the cell.
	JoinBelow JoinDirection = "below"
)

// Join merges the cell at index with its neighbour in the given direction.
// The two cells are replaced by a single cell whose text is the upper cell's
// text, a line break, and the lower cell's text. Outputs of the upper cell
// are kept; the merged cell keeps the upper cell's language and metadata.
//
// Join-above at the first cell and join-below at the last cell are rejected,
// as is joining cells of different kinds.
func Join(nb *m.Notebook, index int, dir JoinDirection) ([]m.EditOperation, error) {
	if index < 0 || index >= nb.Len() {
		return nil, m.Rejected("join", m.ReasonOutOfRange, "cell %d of %d", index, nb.Len())
	}

	var upper, lower int

	switch dir {
	case JoinAbove:
		if index == 0 {
			return nil, m.Rejected("join", m.ReasonBoundary, "no cell above index 0")
		}

		upper, lower = index-1, index
	case JoinBelow:
		if index == nb.Len()-1 {
			return nil, m.Rejected("join", m.ReasonBoundary, "no cell below index %d", index)
		}

		upper, lower = index, index+1
	default:
		return nil, m.Rejected("join", m.ReasonNoEffect, "unknown direction %q", dir)
	}

	a, b := nb.CellAt(upper), nb.CellAt(lower)
	if a.Kind != b.Kind {
		return nil, m.Rejected("join", m.ReasonKindMismatch, "%s cell cannot join %s cell", a.Kind, b.Kind)
	}

	merged := a.Clone()
	merged.Source = append(merged.Source, b.Source...)

	return []m.EditOperation{
		m.ReplaceEdit{Index: upper, Count: 2, Cells: []*m.Cell{merged}},
	}, nil
}

package cellops

import (
	m "github.com/mouse-blink/quire/internal/model"
)

// Copy duplicates the range r immediately below itself.
func Copy(nb *m.Notebook, r m.CellRange) ([]m.EditOperation, error) {
	r = r.Normalize()

	if r.IsEmpty() {
		return nil, m.Rejected("copy", m.ReasonNoEffect, "empty range")
	}

	if !r.ValidFor(nb.Len()) {
		return nil, m.Rejected("copy", m.ReasonOutOfRange,
			"range [%d, %d) of %d cells", r.Start, r.End, nb.Len())
	}

	copies := m.CloneCells(nb.Cells[r.Start:r.End])

	// Copies never carry outputs: they have not been executed.
	for _, c := range copies {
		c.Outputs = nil
	}

	return []m.EditOperation{
		m.ReplaceEdit{Index: r.End, Count: 0, Cells: copies},
	}, nil
}

// Insert places cell at index, shifting later cells down. Index may equal
// the notebook length to append.
func Insert(nb *m.Notebook, index int, cell *m.Cell) ([]m.EditOperation, error) {
	if index < 0 || index > nb.Len() {
		return nil, m.Rejected("insert", m.ReasonOutOfRange, "index %d of %d", index, nb.Len())
	}

	if cell == nil {
		return nil, m.Rejected("insert", m.ReasonNoEffect, "nil cell")
	}

	return []m.EditOperation{
		m.ReplaceEdit{Index: index, Count: 0, Cells: []*m.Cell{cell}},
	}, nil
}

// Delete removes the range r.
func Delete(nb *m.Notebook, r m.CellRange) ([]m.EditOperation, error) {
	r = r.Normalize()

	if r.IsEmpty() {
		return nil, m.Rejected("delete", m.ReasonNoEffect, "empty range")
	}

	if !r.ValidFor(nb.Len()) {
		return nil, m.Rejected("delete", m.ReasonOutOfRange,
			"range [%d, %d) of %d cells", r.Start, r.End, nb.Len())
	}

	return []m.EditOperation{
		m.ReplaceEdit{Index: r.Start, Count: r.Len()},
	}, nil
}

// ChangeKind rewrites the cell at index with a new kind. Converting a code
// cell to markup drops its outputs.
func ChangeKind(nb *m.Notebook, index int, kind m.CellKind) ([]m.EditOperation, error) {
	if index < 0 || index >= nb.Len() {
		return nil, m.Rejected("set-kind", m.ReasonOutOfRange, "cell %d of %d", index, nb.Len())
	}

	cell := nb.CellAt(index)
	if cell.Kind == kind {
		return nil, m.Rejected("set-kind", m.ReasonNoEffect, "cell %d already %s", index, kind)
	}

	next := cell.Clone()
	next.Kind = kind

	if kind == m.KindMarkup {
		next.Outputs = nil
	}

	return []m.EditOperation{
		m.ReplaceEdit{Index: index, Count: 1, Cells: []*m.Cell{next}},
	}, nil
}

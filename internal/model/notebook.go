package model

// Notebook is an ordered sequence of cells backed by a file on disk. The
// notebook owns its cells; structural changes go through the domain
// transaction applier, which bumps Version on every committed batch.
type Notebook struct {
	Origin   Path
	Cells    []*Cell
	Metadata map[string]string

	// Version counts committed edit batches. It only ever increases.
	Version uint64

	// ReadOnly notebooks reject every edit batch.
	ReadOnly bool
}

// Len returns the number of cells.
func (nb *Notebook) Len() int {
	return len(nb.Cells)
}

// CellAt returns the cell at index, or nil when index is out of range.
func (nb *Notebook) CellAt(index int) *Cell {
	if index < 0 || index >= len(nb.Cells) {
		return nil
	}

	return nb.Cells[index]
}

// Clone returns a deep copy of the notebook.
func (nb *Notebook) Clone() *Notebook {
	if nb == nil {
		return nil
	}

	out := &Notebook{
		Origin:   nb.Origin,
		Cells:    CloneCells(nb.Cells),
		Version:  nb.Version,
		ReadOnly: nb.ReadOnly,
	}

	if nb.Metadata != nil {
		out.Metadata = make(map[string]string, len(nb.Metadata))
		for k, v := range nb.Metadata {
			out.Metadata[k] = v
		}
	}

	return out
}

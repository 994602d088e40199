package model

// EditOperation describes a single structural change to a notebook's cell
// sequence. The two variants are ReplaceEdit and MoveEdit.
type EditOperation interface {
	// Delta returns (removed, inserted) cell counts, so that after a batch
	// len(cells) == originalCount - sum(removed) + sum(inserted).
	Delta() (removed, inserted int)

	editOp()
}

// ReplaceEdit removes Count cells starting at Index and inserts Cells in
// their place. Count may be zero (pure insertion) and Cells may be empty
// (pure deletion).
type ReplaceEdit struct {
	Index int
	Count int
	Cells []*Cell
}

// MoveEdit relocates the contiguous range [Index, Index+Length) to NewIndex.
//
// NewIndex is expressed in the index space of the notebook *after* the moved
// range has been removed. Callers computing a target position from pre-move
// indices must subtract Length when the target lies beyond the moved range.
type MoveEdit struct {
	Index    int
	Length   int
	NewIndex int
}

// Delta returns the cell-count change of the replace.
func (e ReplaceEdit) Delta() (int, int) {
	return e.Count, len(e.Cells)
}

// Delta returns zero deltas: a move never changes the cell count.
func (e MoveEdit) Delta() (int, int) {
	return 0, 0
}

func (e ReplaceEdit) editOp() {}

func (e MoveEdit) editOp() {}

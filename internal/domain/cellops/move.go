package cellops

import (
	m "github.com/mouse-blink/quire/internal/model"
)

// Move relocates the contiguous range r to target. The target index is
// expressed in the index space of the notebook after the moved range has
// been removed; PostRemovalIndex converts a pre-move position.
func Move(nb *m.Notebook, r m.CellRange, target int) ([]m.EditOperation, error) {
	r = r.Normalize()

	if r.IsEmpty() {
		return nil, m.Rejected("move", m.ReasonNoEffect, "empty range")
	}

	if !r.ValidFor(nb.Len()) {
		return nil, m.Rejected("move", m.ReasonOutOfRange,
			"range [%d, %d) of %d cells", r.Start, r.End, nb.Len())
	}

	if target < 0 || target > nb.Len()-r.Len() {
		return nil, m.Rejected("move", m.ReasonOutOfRange,
			"target %d against %d remaining cells", target, nb.Len()-r.Len())
	}

	return []m.EditOperation{
		m.MoveEdit{Index: r.Start, Length: r.Len(), NewIndex: target},
	}, nil
}

// PostRemovalIndex converts a target position expressed in the pre-move
// index space into the post-removal space required by MoveEdit.
func PostRemovalIndex(pre int, moved m.CellRange) int {
	moved = moved.Normalize()

	switch {
	case pre <= moved.Start:
		return pre
	case pre >= moved.End:
		return pre - moved.Len()
	default:
		// Inside the moved range: the range collapses onto its start.
		return moved.Start
	}
}

package domain

import (
	m "github.com/mouse-blink/quire/internal/model"
)

// docSnapshot captures notebook content and selection at a point in time.
type docSnapshot struct {
	cells     []*m.Cell
	selection m.SelectionState
}

// historyEntry is one undo step: the full batch of edits committed between
// the before and after snapshots.
type historyEntry struct {
	label  string
	before docSnapshot
	after  docSnapshot
}

// History holds the undo and redo stacks for a notebook session. Exactly one
// entry is recorded per committed edit batch, regardless of how many edit
// operations the batch contained.
type History struct {
	undo  []historyEntry
	redo  []historyEntry
	limit int
}

// NewHistory creates a History keeping at most limit undo entries. A limit
// of zero or less disables recording.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

func (h *History) push(e historyEntry) {
	if h.limit <= 0 {
		return
	}

	h.undo = append(h.undo, e)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}

	h.redo = nil
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undo entries currently held.
func (h *History) Len() int { return len(h.undo) }

// popUndo moves the most recent entry to the redo stack and returns it.
func (h *History) popUndo() (historyEntry, bool) {
	if len(h.undo) == 0 {
		return historyEntry{}, false
	}

	i := len(h.undo) - 1
	e := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, e)

	return e, true
}

// popRedo moves the most recent redo entry back to the undo stack and
// returns it.
func (h *History) popRedo() (historyEntry, bool) {
	if len(h.redo) == 0 {
		return historyEntry{}, false
	}

	i := len(h.redo) - 1
	e := h.redo[i]
	h.redo = h.redo[:i]

	if h.limit > 0 {
		h.undo = append(h.undo, e)
		if len(h.undo) > h.limit {
			h.undo = h.undo[len(h.undo)-h.limit:]
		}
	}

	return e, true
}

func snapshotOf(nb *m.Notebook, sel m.SelectionState) docSnapshot {
	return docSnapshot{
		cells:     m.CloneCells(nb.Cells),
		selection: sel.Clone(),
	}
}

// restore writes the snapshot back into the notebook and returns the
// selection captured with it.
func (s docSnapshot) restore(nb *m.Notebook) m.SelectionState {
	nb.Cells = m.CloneCells(s.cells)
	nb.Version++

	return s.selection.Clone()
}

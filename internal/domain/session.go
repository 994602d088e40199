package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/mouse-blink/quire/internal/domain/cellops"
	m "github.com/mouse-blink/quire/internal/model"
)

const defaultHistoryLimit = 100

// ErrNoSaver is returned by Save when the session has no save destination.
var ErrNoSaver = errors.New("session has no saver")

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithHistoryLimit caps the undo stack depth.
func WithHistoryLimit(limit int) SessionOption {
	return func(s *Session) {
		s.history = NewHistory(limit)
	}
}

// WithSaver sets the function used by Save to persist the notebook.
func WithSaver(save func(*m.Notebook) error) SessionOption {
	return func(s *Session) {
		s.save = save
	}
}

// Session is the exclusive owner of a notebook during editing. All structural
// changes flow through its applier; selection state is recomputed after every
// committed batch. A session is not safe for concurrent use: the notebook has
// a single mutator by construction.
type Session struct {
	nb      *m.Notebook
	sel     m.SelectionState
	history *History
	applier *Applier
	save    func(*m.Notebook) error
	dirty   bool
}

// NewSession wraps a notebook for editing. The initial focus is the first
// cell when one exists.
func NewSession(nb *m.Notebook, opts ...SessionOption) *Session {
	s := &Session{
		nb:      nb,
		history: NewHistory(defaultHistoryLimit),
	}

	if nb.Len() > 0 {
		s.sel = m.SelectionState{Focus: m.CellRange{Start: 0, End: 1}}
	}

	for _, opt := range opts {
		opt(s)
	}

	s.applier = NewApplier(s.history)

	return s
}

// Notebook returns the notebook owned by the session.
func (s *Session) Notebook() *m.Notebook { return s.nb }

// Selection returns the current selection state.
func (s *Session) Selection() m.SelectionState { return s.sel.Clone() }

// SetSelection replaces the selection state, clamped to notebook bounds.
func (s *Session) SetSelection(sel m.SelectionState) {
	s.sel = sel.ClampTo(s.nb.Len())
}

// Dirty reports whether the notebook changed since the last save.
func (s *Session) Dirty() bool { return s.dirty }

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Apply commits one edit batch through the transaction applier, using the
// current selection as the before state.
func (s *Session) Apply(edits []m.EditOperation, after SelectionFunc, opts ApplyOptions) error {
	prevVersion := s.nb.Version

	sel, err := s.applier.Apply(s.nb, edits, s.sel, after, opts)

	s.sel = sel
	if s.nb.Version != prevVersion {
		s.dirty = true
	}

	return err
}

// Undo reverts the most recent batch, restoring both cell content and the
// selection state captured before the batch.
func (s *Session) Undo() bool {
	e, ok := s.history.popUndo()
	if !ok {
		return false
	}

	s.sel = e.before.restore(s.nb)
	s.dirty = true

	return true
}

// Redo re-applies the most recently undone batch.
func (s *Session) Redo() bool {
	e, ok := s.history.popRedo()
	if !ok {
		return false
	}

	s.sel = e.after.restore(s.nb)
	s.dirty = true

	return true
}

// Save persists the notebook through the configured saver.
func (s *Session) Save() error {
	if s.save == nil {
		return ErrNoSaver
	}

	if err := s.save(s.nb); err != nil {
		return fmt.Errorf("save notebook: %w", err)
	}

	s.dirty = false

	return nil
}

// focusIndex returns the index of the focused cell, or -1 when the notebook
// is empty.
func (s *Session) focusIndex() int {
	if s.nb.Len() == 0 {
		return -1
	}

	f := s.sel.Focus.ClampTo(s.nb.Len())
	if f.IsEmpty() {
		if f.Start >= s.nb.Len() {
			return s.nb.Len() - 1
		}

		return f.Start
	}

	return f.Start
}

// Join merges the focused cell with its neighbour.
func (s *Session) Join(dir cellops.JoinDirection) error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("join", m.ReasonOutOfRange, "empty notebook")
	}

	edits, err := cellops.Join(s.nb, idx, dir)
	if err != nil {
		return err
	}

	upper := idx
	if dir == cellops.JoinAbove {
		upper = idx - 1
	}

	return s.Apply(edits, focusOn(upper), ApplyOptions{Atomic: true, Label: "join cells"})
}

// JoinSelections runs a join for every selection range, committing each
// sub-edit independently. The context is checked between sub-edits; on
// cancellation, already-committed sub-edits stay committed. It returns the
// number of committed joins.
func (s *Session) JoinSelections(ctx context.Context, dir cellops.JoinDirection) (int, error) {
	ranges := append([]m.CellRange(nil), s.sel.Selections...)
	if len(ranges) == 0 {
		ranges = []m.CellRange{s.sel.Focus}
	}

	committed := 0

	// Walk bottom-up so earlier joins do not shift later targets. The
	// selection list carries ranges in the order they were made, so sort
	// first.
	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Normalize().Start < ranges[j].Normalize().Start
	})

	for i := len(ranges) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return committed, err
		}

		idx := ranges[i].Normalize().Start

		edits, err := cellops.Join(s.nb, idx, dir)
		if err != nil {
			// One invalid selection does not abort the rest.
			continue
		}

		upper := idx
		if dir == cellops.JoinAbove {
			upper = idx - 1
		}

		if err := s.Apply(edits, focusOn(upper), ApplyOptions{Atomic: true, Label: "join cells"}); err != nil {
			return committed, err
		}

		committed++
	}

	return committed, nil
}

// Split splits the focused cell at the given points.
func (s *Session) Split(points []cellops.SplitPoint) error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("split", m.ReasonOutOfRange, "empty notebook")
	}

	edits, err := cellops.Split(s.nb, idx, points)
	if err != nil {
		return err
	}

	return s.Apply(edits, focusOn(idx), ApplyOptions{Atomic: true, Label: "split cell"})
}

// MoveFocused shifts the focused range by delta positions.
func (s *Session) MoveFocused(delta int) error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("move", m.ReasonOutOfRange, "empty notebook")
	}

	r := s.focusRange()

	target := r.Start + delta
	if target < 0 || target > s.nb.Len()-r.Len() {
		return m.Rejected("move", m.ReasonBoundary, "target %d out of bounds", target)
	}

	edits, err := cellops.Move(s.nb, r, target)
	if err != nil {
		return err
	}

	after := func(nb *m.Notebook) m.SelectionState {
		return m.SelectionState{Focus: m.CellRange{Start: target, End: target + r.Len()}}
	}

	return s.Apply(edits, after, ApplyOptions{Atomic: true, Label: "move cells"})
}

// CopyFocused duplicates the focused range below itself and focuses the copy.
func (s *Session) CopyFocused() error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("copy", m.ReasonOutOfRange, "empty notebook")
	}

	r := s.focusRange()

	edits, err := cellops.Copy(s.nb, r)
	if err != nil {
		return err
	}

	after := func(nb *m.Notebook) m.SelectionState {
		return m.SelectionState{Focus: m.CellRange{Start: r.End, End: r.End + r.Len()}}
	}

	return s.Apply(edits, after, ApplyOptions{Atomic: true, Label: "copy cells"})
}

// DeleteFocused removes the focused range.
func (s *Session) DeleteFocused() error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("delete", m.ReasonOutOfRange, "empty notebook")
	}

	r := s.focusRange()

	edits, err := cellops.Delete(s.nb, r)
	if err != nil {
		return err
	}

	after := func(nb *m.Notebook) m.SelectionState {
		return m.SelectionState{Focus: m.CellRange{Start: r.Start, End: r.Start + 1}.ClampTo(nb.Len())}
	}

	return s.Apply(edits, after, ApplyOptions{Atomic: true, Label: "delete cells"})
}

// InsertAt inserts a cell at index and focuses it.
func (s *Session) InsertAt(index int, cell *m.Cell) error {
	edits, err := cellops.Insert(s.nb, index, cell)
	if err != nil {
		return err
	}

	return s.Apply(edits, focusOn(index), ApplyOptions{Atomic: true, Label: "insert cell"})
}

// ToggleKind flips the focused cell between code and markup.
func (s *Session) ToggleKind() error {
	idx := s.focusIndex()
	if idx < 0 {
		return m.Rejected("set-kind", m.ReasonOutOfRange, "empty notebook")
	}

	kind := m.KindMarkup
	if s.nb.CellAt(idx).Kind == m.KindMarkup {
		kind = m.KindCode
	}

	edits, err := cellops.ChangeKind(s.nb, idx, kind)
	if err != nil {
		return err
	}

	return s.Apply(edits, focusOn(idx), ApplyOptions{Atomic: true, Label: "change cell kind"})
}

// focusRange returns the focused range widened to at least one cell.
func (s *Session) focusRange() m.CellRange {
	r := s.sel.Focus.Normalize().ClampTo(s.nb.Len())
	if r.IsEmpty() && r.Start < s.nb.Len() {
		r.End = r.Start + 1
	}

	return r
}

func focusOn(index int) SelectionFunc {
	return func(nb *m.Notebook) m.SelectionState {
		return m.SelectionState{
			Focus: m.CellRange{Start: index, End: index + 1}.ClampTo(nb.Len()),
		}
	}
}

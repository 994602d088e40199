// Package domain contains the notebook edit transaction applier, undo
// history and the editing workflow.
package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/quire/internal/model"
)

// ErrNoNotebook is returned when an edit batch targets a nil notebook.
var ErrNoNotebook = errors.New("no notebook")

// opState tracks one operation through the staging pipeline:
// idle -> validating -> staged -> committed | rejected.
type opState uint8

const (
	opIdle opState = iota
	opValidating
	opStaged
	opCommitted
	opRejected
)

type stagedOp struct {
	op    m.EditOperation
	state opState
}

// SelectionFunc computes the post-edit selection state. It runs after the
// batch has been staged, against the notebook as it will look once the batch
// commits.
type SelectionFunc func(nb *m.Notebook) m.SelectionState

// ApplyOptions configures a single edit batch.
type ApplyOptions struct {
	// Atomic batches commit all operations or none: a rejected operation
	// anywhere in the batch leaves the notebook untouched. Non-atomic
	// batches commit the staged prefix and report the rejection.
	Atomic bool

	// Label names the batch in the undo history.
	Label string
}

// Applier applies ordered batches of structural edit operations to a
// notebook. Every committed batch bumps the notebook version and registers
// exactly one undo entry. Rejections are explicit: the applier never
// silently no-ops.
type Applier struct {
	history *History
}

// NewApplier creates an Applier recording undo entries into history.
// A nil history disables undo recording.
func NewApplier(history *History) *Applier {
	return &Applier{history: history}
}

// Apply stages every operation in order against a scratch copy of the cell
// sequence and commits the result as one indivisible change. It returns the
// post-edit selection state, clamped into the new notebook bounds.
//
// The before state is captured into the undo entry; after (optional)
// computes the intended post-edit state once the edits are staged.
func (a *Applier) Apply(
	nb *m.Notebook,
	edits []m.EditOperation,
	before m.SelectionState,
	after SelectionFunc,
	opts ApplyOptions,
) (m.SelectionState, error) {
	if nb == nil {
		return before, ErrNoNotebook
	}

	if nb.ReadOnly {
		return before, m.Rejected("apply", m.ReasonReadOnly, "%s", nb.Origin)
	}

	if len(edits) == 0 {
		return before, nil
	}

	staged := make([]stagedOp, len(edits))
	for i, e := range edits {
		staged[i] = stagedOp{op: e, state: opIdle}
	}

	cells := nb.Cells
	committable := 0

	var rejection error

	for i := range staged {
		staged[i].state = opValidating

		next, err := applyOne(cells, staged[i].op)
		if err != nil {
			staged[i].state = opRejected
			rejection = err

			break
		}

		staged[i].state = opStaged
		cells = next
		committable++
	}

	if rejection != nil && (opts.Atomic || committable == 0) {
		return before, rejection
	}

	if rejection != nil {
		// Non-atomic: keep the staged prefix, drop the rest.
		cells = nb.Cells
		for i := 0; i < committable; i++ {
			cells, _ = applyOne(cells, staged[i].op)
		}
	}

	prev := snapshotOf(nb, before)

	nb.Cells = cells
	nb.Version++

	for i := 0; i < committable; i++ {
		staged[i].state = opCommitted
	}

	sel := before
	if after != nil {
		sel = after(nb)
	}

	if !sel.ValidFor(nb.Len()) {
		sel = sel.ClampTo(nb.Len())
	}

	if a.history != nil {
		a.history.push(historyEntry{
			label:  opts.Label,
			before: prev,
			after:  snapshotOf(nb, sel),
		})
	}

	return sel, rejection
}

// applyOne applies a single operation to the cell sequence, returning the
// new sequence. The input slice is never mutated.
func applyOne(cells []*m.Cell, op m.EditOperation) ([]*m.Cell, error) {
	switch e := op.(type) {
	case m.ReplaceEdit:
		return applyReplace(cells, e)
	case m.MoveEdit:
		return applyMove(cells, e)
	default:
		return nil, fmt.Errorf("unsupported edit operation %T", op)
	}
}

func applyReplace(cells []*m.Cell, e m.ReplaceEdit) ([]*m.Cell, error) {
	if e.Index < 0 || e.Count < 0 || e.Index+e.Count > len(cells) {
		return nil, m.Rejected("replace", m.ReasonOutOfRange,
			"index %d count %d against %d cells", e.Index, e.Count, len(cells))
	}

	out := make([]*m.Cell, 0, len(cells)-e.Count+len(e.Cells))
	out = append(out, cells[:e.Index]...)
	// Inserted cells are deep-copied: the notebook takes ownership.
	out = append(out, m.CloneCells(e.Cells)...)
	out = append(out, cells[e.Index+e.Count:]...)

	return out, nil
}

func applyMove(cells []*m.Cell, e m.MoveEdit) ([]*m.Cell, error) {
	if e.Length <= 0 {
		return nil, m.Rejected("move", m.ReasonNoEffect, "length %d", e.Length)
	}

	if e.Index < 0 || e.Index+e.Length > len(cells) {
		return nil, m.Rejected("move", m.ReasonOutOfRange,
			"range [%d, %d) against %d cells", e.Index, e.Index+e.Length, len(cells))
	}

	// NewIndex lives in the post-removal index space.
	if e.NewIndex < 0 || e.NewIndex > len(cells)-e.Length {
		return nil, m.Rejected("move", m.ReasonOutOfRange,
			"target %d against %d remaining cells", e.NewIndex, len(cells)-e.Length)
	}

	moved := cells[e.Index : e.Index+e.Length]

	rest := make([]*m.Cell, 0, len(cells)-e.Length)
	rest = append(rest, cells[:e.Index]...)
	rest = append(rest, cells[e.Index+e.Length:]...)

	out := make([]*m.Cell, 0, len(cells))
	out = append(out, rest[:e.NewIndex]...)
	out = append(out, moved...)
	out = append(out, rest[e.NewIndex:]...)

	return out, nil
}

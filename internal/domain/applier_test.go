package domain

import (
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

func textCell(text string) *m.Cell {
	c := &m.Cell{Kind: m.KindCode, Language: "python"}
	c.SetText(text)

	return c
}

func TestApplier_Apply_CountInvariant(t *testing.T) {
	nb := codeNotebook("a", "b", "c")
	applier := NewApplier(nil)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 0, Count: 2, Cells: []*m.Cell{textCell("ab")}},
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	removed, inserted := edits[0].Delta()
	want := 3 - removed + inserted

	if nb.Len() != want {
		t.Fatalf("expected %d cells after batch, got %d", want, nb.Len())
	}
}

func TestApplier_Apply_SequentialStaging(t *testing.T) {
	nb := codeNotebook("a", "b", "c")
	applier := NewApplier(nil)

	// The second op's index is valid only against the result of the first.
	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 1, Count: 2, Cells: []*m.Cell{textCell("bc")}},
		m.ReplaceEdit{Index: 2, Count: 0, Cells: []*m.Cell{textCell("d")}},
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !equalTexts(cellTexts(nb), []string{"a", "bc", "d"}) {
		t.Fatalf("unexpected cells %v", cellTexts(nb))
	}
}

func TestApplier_Apply_AtomicRejectionLeavesNotebookUntouched(t *testing.T) {
	nb := codeNotebook("a", "b")
	before := cellTexts(nb)
	version := nb.Version

	history := NewHistory(10)
	applier := NewApplier(history)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 0, Count: 1, Cells: []*m.Cell{textCell("x")}},
		m.ReplaceEdit{Index: 9, Count: 1}, // out of range
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	wantRejection(t, err, m.ReasonOutOfRange)

	if !equalTexts(cellTexts(nb), before) {
		t.Fatalf("atomic rejection mutated the notebook: %v", cellTexts(nb))
	}

	if nb.Version != version {
		t.Fatalf("atomic rejection bumped version to %d", nb.Version)
	}

	if history.Len() != 0 {
		t.Fatalf("atomic rejection recorded %d history entries", history.Len())
	}
}

func TestApplier_Apply_NonAtomicCommitsStagedPrefix(t *testing.T) {
	nb := codeNotebook("a", "b")
	applier := NewApplier(nil)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 0, Count: 1, Cells: []*m.Cell{textCell("x")}},
		m.ReplaceEdit{Index: 9, Count: 1},
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: false})
	wantRejection(t, err, m.ReasonOutOfRange)

	if !equalTexts(cellTexts(nb), []string{"x", "b"}) {
		t.Fatalf("expected staged prefix committed, got %v", cellTexts(nb))
	}
}

func TestApplier_Apply_ReadOnlyRejected(t *testing.T) {
	nb := codeNotebook("a")
	nb.ReadOnly = true

	applier := NewApplier(nil)

	edits := []m.EditOperation{m.ReplaceEdit{Index: 0, Count: 1}}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	wantRejection(t, err, m.ReasonReadOnly)
}

func TestApplier_Apply_NilNotebook(t *testing.T) {
	applier := NewApplier(nil)

	_, err := applier.Apply(nil, []m.EditOperation{m.ReplaceEdit{}}, m.SelectionState{}, nil, ApplyOptions{})
	if err != ErrNoNotebook {
		t.Fatalf("expected ErrNoNotebook, got %v", err)
	}
}

func TestApplier_Apply_EmptyBatchIsNoOp(t *testing.T) {
	nb := codeNotebook("a")
	version := nb.Version

	history := NewHistory(10)
	applier := NewApplier(history)

	_, err := applier.Apply(nb, nil, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if nb.Version != version || history.Len() != 0 {
		t.Fatalf("empty batch changed state: version=%d history=%d", nb.Version, history.Len())
	}
}

func TestApplier_Apply_OneHistoryEntryPerBatch(t *testing.T) {
	nb := codeNotebook("a", "b", "c")

	history := NewHistory(10)
	applier := NewApplier(history)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 0, Count: 1, Cells: []*m.Cell{textCell("x")}},
		m.ReplaceEdit{Index: 1, Count: 1, Cells: []*m.Cell{textCell("y")}},
		m.MoveEdit{Index: 0, Length: 1, NewIndex: 1},
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true, Label: "batch"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if history.Len() != 1 {
		t.Fatalf("expected exactly one undo entry for the batch, got %d", history.Len())
	}
}

func TestApplier_Apply_SelectionClampedToNewBounds(t *testing.T) {
	nb := codeNotebook("a", "b", "c")
	applier := NewApplier(nil)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 1, Count: 2},
	}

	after := func(nb *m.Notebook) m.SelectionState {
		return m.SelectionState{Focus: m.CellRange{Start: 2, End: 3}}
	}

	sel, err := applier.Apply(nb, edits, m.SelectionState{}, after, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !sel.ValidFor(nb.Len()) {
		t.Fatalf("selection %+v not clamped to %d cells", sel, nb.Len())
	}
}

func TestApplier_Apply_AfterFuncSeesCommittedState(t *testing.T) {
	nb := codeNotebook("a", "b")
	applier := NewApplier(nil)

	edits := []m.EditOperation{
		m.ReplaceEdit{Index: 2, Count: 0, Cells: []*m.Cell{textCell("c")}},
	}

	var seen int

	after := func(nb *m.Notebook) m.SelectionState {
		seen = nb.Len()

		return m.SelectionState{Focus: m.CellRange{Start: 2, End: 3}}
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, after, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if seen != 3 {
		t.Fatalf("after func ran against %d cells, want 3", seen)
	}
}

func TestApplier_Apply_MovePreservesRelativeOrder(t *testing.T) {
	nb := codeNotebook("a", "b", "c", "d", "e")
	applier := NewApplier(nil)

	edits := []m.EditOperation{
		m.MoveEdit{Index: 1, Length: 2, NewIndex: 2},
	}

	_, err := applier.Apply(nb, edits, m.SelectionState{}, nil, ApplyOptions{Atomic: true})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if !equalTexts(cellTexts(nb), []string{"a", "d", "b", "c", "e"}) {
		t.Fatalf("unexpected order %v", cellTexts(nb))
	}
}

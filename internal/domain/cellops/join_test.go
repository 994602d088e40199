package cellops

import (
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

func TestJoin_Below_MergesIntoUpperCell(t *testing.T) {
	nb := codeNotebook("a = 1", "b = 2", "c = 3")

	edits, err := Join(nb, 0, JoinBelow)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	if len(edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(edits))
	}

	rep, ok := edits[0].(m.ReplaceEdit)
	if !ok {
		t.Fatalf("expected ReplaceEdit, got %T", edits[0])
	}

	if rep.Index != 0 || rep.Count != 2 || len(rep.Cells) != 1 {
		t.Fatalf("expected replace of 2 cells at 0 with 1 cell, got index=%d count=%d cells=%d",
			rep.Index, rep.Count, len(rep.Cells))
	}

	if got := rep.Cells[0].Text(); got != "a = 1\nb = 2" {
		t.Fatalf("unexpected merged text %q", got)
	}

	// The builder never mutates the notebook itself.
	if nb.Len() != 3 {
		t.Fatalf("notebook mutated by builder: %d cells", nb.Len())
	}
}

func TestJoin_Above_TargetsPredecessor(t *testing.T) {
	nb := codeNotebook("a", "b")

	edits, err := Join(nb, 1, JoinAbove)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	rep := edits[0].(m.ReplaceEdit)
	if rep.Index != 0 || rep.Count != 2 {
		t.Fatalf("expected replace at 0 count 2, got index=%d count=%d", rep.Index, rep.Count)
	}

	if got := rep.Cells[0].Text(); got != "a\nb" {
		t.Fatalf("unexpected merged text %q", got)
	}
}

func TestJoin_KeepsUpperOutputsAndMetadata(t *testing.T) {
	nb := codeNotebook("up", "down")
	nb.Cells[0].Outputs = []m.Output{{Type: "stream", Name: "stdout", Text: "hi\n"}}
	nb.Cells[0].Metadata = map[string]string{"tags": "keep"}
	nb.Cells[1].Outputs = []m.Output{{Type: "stream", Name: "stdout", Text: "drop\n"}}

	edits, err := Join(nb, 0, JoinBelow)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	merged := edits[0].(m.ReplaceEdit).Cells[0]

	if len(merged.Outputs) != 1 || merged.Outputs[0].Text != "hi\n" {
		t.Fatalf("expected upper cell outputs kept, got %+v", merged.Outputs)
	}

	if merged.Metadata["tags"] != "keep" {
		t.Fatalf("expected upper cell metadata kept, got %+v", merged.Metadata)
	}
}

func TestJoin_BoundaryRejections(t *testing.T) {
	nb := codeNotebook("a", "b")

	tests := []struct {
		name  string
		index int
		dir   JoinDirection
	}{
		{"above at first cell", 0, JoinAbove},
		{"below at last cell", 1, JoinBelow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Join(nb, tt.index, tt.dir)
			wantRejection(t, err, m.ReasonBoundary)
		})
	}
}

func TestJoin_KindMismatchRejected(t *testing.T) {
	nb := codeNotebook("code", "markup")
	nb.Cells[1].Kind = m.KindMarkup

	_, err := Join(nb, 0, JoinBelow)
	wantRejection(t, err, m.ReasonKindMismatch)
}

func TestJoin_OutOfRangeRejected(t *testing.T) {
	nb := codeNotebook("a")

	_, err := Join(nb, 5, JoinBelow)
	wantRejection(t, err, m.ReasonOutOfRange)
}

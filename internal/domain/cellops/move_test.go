package cellops

import (
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

func TestMove_TargetInPostRemovalSpace(t *testing.T) {
	nb := codeNotebook("a", "b", "c", "d")

	// Moving [0, 2) to target 2 lands the range at the end: after removing
	// a and b only c and d remain, so target 2 means "after d".
	edits, err := Move(nb, m.CellRange{Start: 0, End: 2}, 2)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	mv, ok := edits[0].(m.MoveEdit)
	if !ok {
		t.Fatalf("expected MoveEdit, got %T", edits[0])
	}

	if mv.Index != 0 || mv.Length != 2 || mv.NewIndex != 2 {
		t.Fatalf("unexpected edit %+v", mv)
	}
}

func TestMove_TargetBeyondRemainder_Rejected(t *testing.T) {
	nb := codeNotebook("a", "b", "c", "d")

	// After removing 2 cells only 2 remain; 3 is out of the post-removal space.
	_, err := Move(nb, m.CellRange{Start: 0, End: 2}, 3)
	wantRejection(t, err, m.ReasonOutOfRange)
}

func TestMove_EmptyRange_Rejected(t *testing.T) {
	nb := codeNotebook("a", "b")

	_, err := Move(nb, m.CellRange{Start: 1, End: 1}, 0)
	wantRejection(t, err, m.ReasonNoEffect)
}

func TestMove_RangeOutOfBounds_Rejected(t *testing.T) {
	nb := codeNotebook("a", "b")

	_, err := Move(nb, m.CellRange{Start: 1, End: 3}, 0)
	wantRejection(t, err, m.ReasonOutOfRange)
}

func TestPostRemovalIndex(t *testing.T) {
	moved := m.CellRange{Start: 2, End: 4}

	tests := []struct {
		name string
		pre  int
		want int
	}{
		{"before the moved range", 1, 1},
		{"at range start", 2, 2},
		{"inside the moved range", 3, 2},
		{"just past the range", 4, 2},
		{"after the moved range", 6, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PostRemovalIndex(tt.pre, moved); got != tt.want {
				t.Fatalf("PostRemovalIndex(%d) = %d, want %d", tt.pre, got, tt.want)
			}
		})
	}
}

package cellops

import (
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

func splitSegments(t *testing.T, nb *m.Notebook, index int, points []SplitPoint) []*m.Cell {
	t.Helper()

	edits, err := Split(nb, index, points)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	rep, ok := edits[0].(m.ReplaceEdit)
	if !ok {
		t.Fatalf("expected ReplaceEdit, got %T", edits[0])
	}

	if rep.Index != index || rep.Count != 1 {
		t.Fatalf("expected replace of 1 cell at %d, got index=%d count=%d", index, rep.Index, rep.Count)
	}

	return rep.Cells
}

func TestSplit_MidLine(t *testing.T) {
	nb := codeNotebook("abcd")

	segs := splitSegments(t, nb, 0, []SplitPoint{{Line: 0, Col: 2}})

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	if segs[0].Text() != "ab" || segs[1].Text() != "cd" {
		t.Fatalf("unexpected segments %q, %q", segs[0].Text(), segs[1].Text())
	}
}

func TestSplit_AtEndOfLine_NoEmptySegment(t *testing.T) {
	nb := codeNotebook("ab\ncd")

	segs := splitSegments(t, nb, 0, []SplitPoint{{Line: 0, Col: 2}})

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}

	// The newline between the lines belongs to neither segment.
	if segs[0].Text() != "ab" || segs[1].Text() != "cd" {
		t.Fatalf("unexpected segments %q, %q", segs[0].Text(), segs[1].Text())
	}
}

func TestSplit_MultiplePoints_SortedAndDeduped(t *testing.T) {
	nb := codeNotebook("abcdef")

	segs := splitSegments(t, nb, 0, []SplitPoint{
		{Line: 0, Col: 4},
		{Line: 0, Col: 2},
		{Line: 0, Col: 2},
	})

	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}

	want := []string{"ab", "cd", "ef"}
	for i, w := range want {
		if segs[i].Text() != w {
			t.Fatalf("segment %d: expected %q, got %q", i, w, segs[i].Text())
		}
	}
}

func TestSplit_FirstSegmentKeepsOutputs(t *testing.T) {
	nb := codeNotebook("abcd")
	nb.Cells[0].Outputs = []m.Output{{Type: "stream", Name: "stdout", Text: "x\n"}}
	nb.Cells[0].Metadata = map[string]string{"collapsed": "true"}

	segs := splitSegments(t, nb, 0, []SplitPoint{{Line: 0, Col: 2}})

	if len(segs[0].Outputs) != 1 {
		t.Fatalf("expected first segment to keep outputs, got %+v", segs[0].Outputs)
	}

	if segs[0].Metadata["collapsed"] != "true" {
		t.Fatalf("expected first segment to keep metadata, got %+v", segs[0].Metadata)
	}

	if len(segs[1].Outputs) != 0 || len(segs[1].Metadata) != 0 {
		t.Fatalf("expected later segments fresh, got outputs=%+v metadata=%+v",
			segs[1].Outputs, segs[1].Metadata)
	}

	if segs[1].Kind != m.KindCode || segs[1].Language != "python" {
		t.Fatalf("expected later segment to share kind and language, got %s/%s",
			segs[1].Kind, segs[1].Language)
	}
}

func TestSplit_PointsAtTextEdges_Rejected(t *testing.T) {
	nb := codeNotebook("abcd")

	_, err := Split(nb, 0, []SplitPoint{
		{Line: 0, Col: 0},
		{Line: 0, Col: 4},
	})
	wantRejection(t, err, m.ReasonNoEffect)
}

func TestSplit_PointOutsideCell_Rejected(t *testing.T) {
	nb := codeNotebook("ab")

	_, err := Split(nb, 0, []SplitPoint{{Line: 3, Col: 0}})
	wantRejection(t, err, m.ReasonOutOfRange)
}

func TestSplit_IndexOutOfRange_Rejected(t *testing.T) {
	nb := codeNotebook("ab")

	_, err := Split(nb, 2, []SplitPoint{{Line: 0, Col: 1}})
	wantRejection(t, err, m.ReasonOutOfRange)
}

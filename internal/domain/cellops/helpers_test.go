package cellops

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

// codeNotebook builds a notebook of code cells, one per text.
func codeNotebook(texts ...string) *m.Notebook {
	cells := make([]*m.Cell, len(texts))
	for i, text := range texts {
		cells[i] = &m.Cell{Kind: m.KindCode, Language: "python"}
		cells[i].SetText(text)
	}

	return &m.Notebook{Origin: "test.ipynb", Cells: cells}
}

// wantRejection asserts err is a RejectedError with the given reason.
func wantRejection(t *testing.T, err error, reason m.RejectReason) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected rejection %s, got nil", reason)
	}

	var rej *m.RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectedError, got %T: %v", err, err)
	}

	if rej.Reason != reason {
		t.Fatalf("expected reason %s, got %s (%v)", reason, rej.Reason, rej)
	}
}

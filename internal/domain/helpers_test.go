package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/quire/internal/model"
)

func codeNotebook(texts ...string) *m.Notebook {
	cells := make([]*m.Cell, len(texts))
	for i, text := range texts {
		cells[i] = &m.Cell{Kind: m.KindCode, Language: "python"}
		cells[i].SetText(text)
	}

	return &m.Notebook{Origin: "test.ipynb", Cells: cells}
}

func cellTexts(nb *m.Notebook) []string {
	texts := make([]string, nb.Len())
	for i, c := range nb.Cells {
		texts[i] = c.Text()
	}

	return texts
}

func equalTexts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

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

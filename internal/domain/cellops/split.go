package cellops

import (
	"sort"

	m "github.com/mouse-blink/quire/internal/model"
)

// SplitPoint addresses a position inside a cell's source text.
// Line and Col are 0-based; Col counts runes.
type SplitPoint struct {
	Line int
	Col  int
}

// Split splits the cell at index at the given points, replacing it with one
// cell per resulting segment. The first segment keeps the cell's outputs and
// metadata; later segments share its kind and language.
//
// Points are sorted and de-duplicated. A point landing exactly at the end of
// the cell text is dropped so the split never produces a spurious empty
// trailing segment. If no effective points remain the split is rejected.
func Split(nb *m.Notebook, index int, points []SplitPoint) ([]m.EditOperation, error) {
	if index < 0 || index >= nb.Len() {
		return nil, m.Rejected("split", m.ReasonOutOfRange, "cell %d of %d", index, nb.Len())
	}

	cell := nb.CellAt(index)
	lines := cell.Source

	if len(lines) == 0 {
		lines = []string{""}
	}

	offsets := make([]int, 0, len(points))

	for _, p := range points {
		off, ok := pointOffset(lines, p)
		if !ok {
			return nil, m.Rejected("split", m.ReasonOutOfRange,
				"point %d:%d outside cell %d", p.Line, p.Col, index)
		}

		offsets = append(offsets, off)
	}

	sort.Ints(offsets)

	text := []rune(cell.Text())
	effective := offsets[:0]

	for _, off := range offsets {
		// Leading and end-of-text points would create empty segments.
		if off <= 0 || off >= len(text) {
			continue
		}

		if len(effective) > 0 && effective[len(effective)-1] == off {
			continue
		}

		effective = append(effective, off)
	}

	if len(effective) == 0 {
		return nil, m.Rejected("split", m.ReasonNoEffect, "no effective split points in cell %d", index)
	}

	segments := make([]*m.Cell, 0, len(effective)+1)
	prev := 0

	for i := 0; i <= len(effective); i++ {
		end := len(text)
		if i < len(effective) {
			end = effective[i]
		}

		segText := string(text[prev:end])

		var seg *m.Cell

		if i == 0 {
			// First segment inherits outputs and metadata.
			seg = cell.Clone()
			seg.SetText(segText)
		} else {
			seg = &m.Cell{Kind: cell.Kind, Language: cell.Language}
			seg.SetText(trimLeadingNewline(segText))
		}

		segments = append(segments, seg)
		prev = end
	}

	return []m.EditOperation{
		m.ReplaceEdit{Index: index, Count: 1, Cells: segments},
	}, nil
}

// pointOffset converts a (line, col) point into a rune offset within the
// newline-joined cell text. Col is clamped to the line length; a point past
// the last line is invalid.
func pointOffset(lines []string, p SplitPoint) (int, bool) {
	if p.Line < 0 || p.Line >= len(lines) || p.Col < 0 {
		return 0, false
	}

	off := 0
	for i := 0; i < p.Line; i++ {
		off += len([]rune(lines[i])) + 1 // +1 for the joining newline
	}

	col := p.Col
	if lineLen := len([]rune(lines[p.Line])); col > lineLen {
		col = lineLen
	}

	return off + col, true
}

// trimLeadingNewline drops the newline left over when a split point sits at
// the end of a line, so the following segment does not start with a blank
// first line.
func trimLeadingNewline(s string) string {
	if len(s) > 0 && s[0] == '\n' {
		return s[1:]
	}

	return s
}

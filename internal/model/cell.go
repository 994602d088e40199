// Package model defines the data structures for notebook documents and
// structural cell edits.
package model

import "strings"

// Path represents a file system path.
type Path string

// CellKind represents the category of a notebook cell.
type CellKind string

const (
	// KindCode represents an executable code cell.
	KindCode CellKind = "code"
	// KindMarkup represents a markup (documentation) cell.
	KindMarkup CellKind = "markup"
)

// Output holds one rendered result attached to a code cell. The engine never
// interprets outputs; they travel with the owning cell through edits.
type Output struct {
	Type string // e.g. "stream", "execute_result", "error"
	Name string // stream name for "stream" outputs
	Text string
}

// Cell is a single notebook cell. A cell is owned by exactly one Notebook at
// a time; callers handing cells to the transaction applier must not retain
// references to them.
type Cell struct {
	Kind     CellKind
	Language string
	// Source holds the cell text as lines, without trailing newlines.
	Source   []string
	Outputs  []Output
	Metadata map[string]string
}

// Text returns the cell source as a single newline-joined string.
func (c *Cell) Text() string {
	return strings.Join(c.Source, "\n")
}

// SetText replaces the cell source from a newline-separated string.
func (c *Cell) SetText(text string) {
	c.Source = strings.Split(text, "\n")
}

// LineCount returns the number of source lines. An empty cell has one line.
func (c *Cell) LineCount() int {
	if len(c.Source) == 0 {
		return 1
	}

	return len(c.Source)
}

// Line returns the source line at row, or "" when row is out of range.
func (c *Cell) Line(row int) string {
	if row < 0 || row >= len(c.Source) {
		return ""
	}

	return c.Source[row]
}

// Clone returns a deep copy of the cell.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}

	out := &Cell{
		Kind:     c.Kind,
		Language: c.Language,
	}

	if c.Source != nil {
		out.Source = append([]string(nil), c.Source...)
	}

	if c.Outputs != nil {
		out.Outputs = append([]Output(nil), c.Outputs...)
	}

	if c.Metadata != nil {
		out.Metadata = make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			out.Metadata[k] = v
		}
	}

	return out
}

// CloneCells deep-copies a cell slice.
func CloneCells(cells []*Cell) []*Cell {
	if cells == nil {
		return nil
	}

	out := make([]*Cell, len(cells))
	for i, c := range cells {
		out[i] = c.Clone()
	}

	return out
}

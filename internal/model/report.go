package model

// NotebookStat summarizes one notebook for list output.
type NotebookStat struct {
	Origin      Path
	Cells       int
	CodeCells   int
	MarkupCells int
	Lines       int
}

// StatFor computes the summary for a loaded notebook.
func StatFor(nb *Notebook) NotebookStat {
	stat := NotebookStat{Origin: nb.Origin, Cells: nb.Len()}

	for _, c := range nb.Cells {
		switch c.Kind {
		case KindMarkup:
			stat.MarkupCells++
		default:
			stat.CodeCells++
		}

		stat.Lines += c.LineCount()
	}

	return stat
}

// ApplyOutcome reports the result of applying an edit script to one notebook.
type ApplyOutcome struct {
	Origin      Path
	Saved       Path
	CellsBefore int
	CellsAfter  int
	Err         error
}

package model

// CellRange is a half-open index interval [Start, End) over a notebook's
// cell sequence.
type CellRange struct {
	Start int
	End   int
}

// Len returns the number of cells covered by the range.
func (r CellRange) Len() int {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// IsEmpty reports whether the range covers no cells.
func (r CellRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains reports whether index lies inside the range.
func (r CellRange) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

// Normalize swaps the bounds when they are reversed.
func (r CellRange) Normalize() CellRange {
	if r.Start > r.End {
		return CellRange{Start: r.End, End: r.Start}
	}

	return r
}

// ValidFor reports whether both bounds lie within [0, count]. An empty range
// positioned at count is valid: it addresses the end-of-document insertion
// point.
func (r CellRange) ValidFor(count int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= count
}

// ClampTo clamps both bounds into [0, count].
func (r CellRange) ClampTo(count int) CellRange {
	r = r.Normalize()

	if r.Start < 0 {
		r.Start = 0
	}

	if r.Start > count {
		r.Start = count
	}

	if r.End < r.Start {
		r.End = r.Start
	}

	if r.End > count {
		r.End = count
	}

	return r
}

// SelectionState is a focus range plus a set of selection ranges. It is
// recomputed after every edit batch; every range must remain valid against
// the post-edit notebook length.
type SelectionState struct {
	Focus      CellRange
	Selections []CellRange
}

// Clone returns a deep copy of the selection state.
func (s SelectionState) Clone() SelectionState {
	out := SelectionState{Focus: s.Focus}
	if s.Selections != nil {
		out.Selections = append([]CellRange(nil), s.Selections...)
	}

	return out
}

// Equal reports whether two selection states are identical.
func (s SelectionState) Equal(other SelectionState) bool {
	if s.Focus != other.Focus || len(s.Selections) != len(other.Selections) {
		return false
	}

	for i, r := range s.Selections {
		if other.Selections[i] != r {
			return false
		}
	}

	return true
}

// ValidFor reports whether all ranges lie within [0, count].
func (s SelectionState) ValidFor(count int) bool {
	if !s.Focus.ValidFor(count) {
		return false
	}

	for _, r := range s.Selections {
		if !r.ValidFor(count) {
			return false
		}
	}

	return true
}

// ClampTo clamps every range into [0, count].
func (s SelectionState) ClampTo(count int) SelectionState {
	out := SelectionState{Focus: s.Focus.ClampTo(count)}

	if s.Selections != nil {
		out.Selections = make([]CellRange, len(s.Selections))
		for i, r := range s.Selections {
			out.Selections[i] = r.ClampTo(count)
		}
	}

	return out
}

package model

import "fmt"

// RejectReason classifies why an edit batch or operation was rejected.
type RejectReason string

const (
	// ReasonOutOfRange signals an index or range outside the notebook bounds.
	ReasonOutOfRange RejectReason = "out-of-range"
	// ReasonReadOnly signals an edit against a read-only notebook.
	ReasonReadOnly RejectReason = "read-only"
	// ReasonBoundary signals an operation that would cross the document
	// boundary, e.g. join-above at the first cell.
	ReasonBoundary RejectReason = "boundary"
	// ReasonKindMismatch signals a cell-kind constraint violation.
	ReasonKindMismatch RejectReason = "kind-mismatch"
	// ReasonNoEffect signals an operation whose staged edits would not
	// change the notebook, e.g. a split with no effective split points.
	ReasonNoEffect RejectReason = "no-effect"
)

// RejectedError reports an explicitly rejected operation. No partial
// mutation is observable when an operation is rejected.
type RejectedError struct {
	Op     string
	Reason RejectReason
	Detail string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s rejected: %s", e.Op, e.Reason)
	}

	return fmt.Sprintf("%s rejected: %s: %s", e.Op, e.Reason, e.Detail)
}

// Rejected constructs a RejectedError.
func Rejected(op string, reason RejectReason, format string, args ...interface{}) *RejectedError {
	return &RejectedError{
		Op:     op,
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	}
}

package domain

import "fmt"

// ValidationError rejects bad input before any upstream call. Reason is a
// stable machine-readable tag ("empty", "too_long").
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AnalysisError wraps a Comprehend failure. Any single failed call aborts
// the whole analyze operation; there is no partial-result fallback.
type AnalysisError struct {
	Op  string // the upstream call that failed
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis failed (%s): %v", e.Op, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

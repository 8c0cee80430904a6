package filter

import "fmt"

// CompileError describes a filter expression that failed to compile.
type CompileError struct {
	Expression string
	Reason     string
	Err        error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filter %q: %s: %v", e.Expression, e.Reason, e.Err)
	}
	return fmt.Sprintf("filter %q: %s", e.Expression, e.Reason)
}

// Unwrap returns the underlying compiler error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

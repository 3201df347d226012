package doctest

import "fmt"

// ParseError is the one error kind the parser raises (spec.md §7). It
// carries the original docstring, any caller-supplied info context, and
// the underlying cause.
type ParseError struct {
	String string      // the docstring that failed to parse
	Info   interface{} // caller-supplied context, or nil
	Err    error       // the underlying cause
}

func (e *ParseError) Error() string {
	if e.Info != nil {
		return fmt.Sprintf("failed to parse doctest (info=%v): %v", e.Info, e.Err)
	}
	return fmt.Sprintf("failed to parse doctest: %v", e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *ParseError) Unwrap() error { return e.Err }

func parseError(s string, info interface{}, cause error) *ParseError {
	return &ParseError{String: s, Info: info, Err: cause}
}

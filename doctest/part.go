package doctest

import "strings"

// Part is one logical block of doctest code and its optional expected
// output, as produced by the Packager (spec.md §3). Parts are constructed
// once by Parse and are never mutated afterward.
type Part struct {
	// ExecLines are the raw source lines with their prompt prefix
	// removed: what an executor would feed to the host language.
	ExecLines []string

	// OrigLines are the same lines with the prompt prefix preserved, for
	// error display.
	OrigLines []string

	// WantLines are the expected-output lines following this part, or nil
	// if this part has no want to check.
	WantLines []string

	// LineOffset is the zero-based index of this part's first line within
	// the (already dedented) input docstring.
	LineOffset int

	// Directives are the directive tokens that caused this part to be
	// split off, or that appear inline within its source.
	Directives []Directive

	// UseEval is true iff the last statement in ExecLines is a bare
	// expression and this part has non-empty WantLines: the executor
	// should compare the expression's value, not just stdout, against
	// Want().
	UseEval bool
}

// Source joins ExecLines with newlines.
func (p *Part) Source() string { return strings.Join(p.ExecLines, "\n") }

// Want joins WantLines with newlines. ok is false if this part has no
// want lines at all (as opposed to an empty one).
func (p *Part) Want() (want string, ok bool) {
	if p.WantLines == nil {
		return "", false
	}
	return strings.Join(p.WantLines, "\n"), true
}

// NLines is the total number of source and want lines in this part.
func (p *Part) NLines() int { return len(p.ExecLines) + len(p.WantLines) }

// CompareSource reports which of a statement's value (eval) and its
// captured stdout a checker should compare against Want. This is a pure
// property of the part; no comparison happens here (spec.md §1 scopes
// output comparison out of this package; see SPEC_FULL.md §12.1 for why
// the decision surface still lives on Part).
//
// useStdout is always true: even a UseEval part may have produced stdout
// worth comparing first, falling back to the evaluated value only when
// stdout didn't match (or wasn't produced). useEval is true only when the
// part's final statement is a bare expression with a want to check.
func (p *Part) CompareSource() (useEval, useStdout bool) {
	return p.UseEval, true
}

// HasDirective reports whether any of the part's directives has the given
// name, and the polarity of the first match.
func (p *Part) HasDirective(name string) (enabled, ok bool) {
	for _, d := range p.Directives {
		if d.Name == name {
			return d.Enabled, true
		}
	}
	return false, false
}

package doctest

import "strings"

// commentSentinel stands in for a line-only comment when handing source to
// the AST parser, so that a directive comment on its own line still
// produces a PS1 boundary (spec.md §4.4). It never appears in ExecLines;
// it exists only in the working copy built here. A statement, not a bare
// expression, so it never affects eval_final.
const commentSentinel = "_ = 0"

// segmentStatements implements the Packager's statement-segmentation
// sub-step (spec.md §4.4): given the unprompted execLines of one source
// run, and which of those lines originally carried a PS1 prompt, return the
// indices that begin top-level statements and whether the run's final
// top-level node is a bare expression.
func segmentStatements(dialect Dialect, execLines []string, isPS1 []bool) (ps1Linenos []int, evalFinal bool, err error) {
	if len(execLines) == 0 {
		return nil, false, nil
	}

	working := make([]string, len(execLines))
	for i, l := range execLines {
		if strings.HasPrefix(strings.TrimSpace(l), "//") {
			working[i] = commentSentinel
		} else {
			working[i] = l
		}
	}

	stmts, err := dialect.statements(strings.Join(working, "\n"))
	if err != nil {
		return nil, false, err
	}
	if len(stmts) == 0 {
		return nil, false, nil
	}

	candidates := make([]int, len(stmts))
	for i, s := range stmts {
		line := s.Line - 1
		if line < 0 {
			line = 0
		}
		if line >= len(execLines) {
			line = len(execLines) - 1
		}
		candidates[i] = line
	}

	evalFinal = stmts[len(stmts)-1].Kind == "expr"

	corrected := correctMultilineStringOffsets(dialect, execLines, candidates)

	ps1Linenos = corrected[:0:0]
	for _, a := range corrected {
		if a >= 0 && a < len(isPS1) && isPS1[a] {
			ps1Linenos = append(ps1Linenos, a)
		}
	}
	return ps1Linenos, evalFinal, nil
}

// correctMultilineStringOffsets is the reverse-walk workaround from
// spec.md §4.4: the host AST parser reports a multi-line string literal's
// terminal line as its statement's start, not the line the statement
// actually begins on (the upstream quirk xdoctest calls out as issue
// 16806). Walking candidates back to front, each candidate a is pulled left
// until execLines[a:b] is itself balanced, where b is the previous
// (already-corrected) candidate's start — or the end of the run for the
// last candidate.
func correctMultilineStringOffsets(dialect Dialect, execLines []string, candidates []int) []int {
	corrected := make([]int, len(candidates))
	b := len(execLines)
	for i := len(candidates) - 1; i >= 0; i-- {
		a := candidates[i]
		if a > b {
			a = b
		}
		for a > 0 && !dialect.balanced(execLines[a:b]) {
			a--
		}
		corrected[i] = a
		b = a
	}
	return corrected
}

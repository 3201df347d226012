package doctest

import (
	"sort"
	"strings"
)

// packageChunk runs the Packager stage (spec.md §4.3) on one (src, want)
// group produced by the Grouper, returning one or more Parts. baseOffset is
// the count of input lines already consumed before this group's first
// source line.
//
// Adapted from xdoctest's DoctestParser._package_chunk (its simulate_repl
// mode is never exercised here): directive hard breaks slice the run from
// the front exactly as there, but the final-statement isolation is gated
// on want_lines alone rather than on eval_final too. A call statement
// (e.g. print(x)) is itself a bare expression statement syntactically, so
// gating the split on eval_final would bundle it with its preceding
// statement whenever its return value isn't eval-final — yet it still
// needs its own Part to carry the want that follows it. use_eval keeps
// the eval_final gate, since only a non-call expression's value (not its
// absent stdout) is what the want is actually comparing.
func packageChunk(c chunk, dialect Dialect, baseOffset int) ([]*Part, error) {
	if len(c.src) == 0 {
		return nil, nil
	}

	stripIndent := indentWidth(c.src[0])
	origLines := stripEach(c.src, stripIndent)
	wantLines := stripEach(c.want, stripIndent)
	execLines, isPS1 := unprompt(origLines)

	ps1Linenos, evalFinal, err := segmentStatements(dialect, execLines, isPS1)
	if err != nil {
		return nil, err
	}
	if len(ps1Linenos) == 0 {
		ps1Linenos = []int{0}
	}

	breakList, breakDirectives := directiveSplits(dialect, execLines, ps1Linenos)

	haveWant := len(wantLines) > 0

	var parts []*Part
	s1 := 0

	if len(breakList) > 0 {
		breakLinenos := sortedUniqueWithZero(breakList)
		for i := 0; i+1 < len(breakLinenos); i++ {
			s1b, s2b := breakLinenos[i], breakLinenos[i+1]
			parts = append(parts, makePart(execLines, origLines, baseOffset, s1b, s2b, nil, breakDirectives[s1b]))
		}
		s1 = breakLinenos[len(breakLinenos)-1]
	}

	// The final statement always gets its own Part when a want follows,
	// so the executor can attach want_lines to exactly the statement that
	// produced them; this isolation happens whether or not that statement
	// is eval-final.
	if haveWant {
		s2 := ps1Linenos[len(ps1Linenos)-1]
		if s2 != s1 {
			parts = append(parts, makePart(execLines, origLines, baseOffset, s1, s2, nil, breakDirectives[s1]))
			s1 = s2
		}
	}

	last := makePart(execLines, origLines, baseOffset, s1, len(execLines), wantLines, breakDirectives[s1])
	last.UseEval = haveWant && evalFinal
	parts = append(parts, last)

	return parts, nil
}

// stripEach removes n leading bytes from each of lines, tolerating shorter
// lines (a blank continuation line may carry less indentation than the
// run's common indent). A nil lines stays nil.
func stripEach(lines []string, n int) []string {
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = stripLeading(l, n)
	}
	return out
}

// unprompt strips each line's four-character PS1/PS2 prompt, and reports
// which lines originally carried PS1 (as opposed to PS2 or a blank
// continuation).
func unprompt(origLines []string) (execLines []string, isPS1 []bool) {
	execLines = make([]string, len(origLines))
	isPS1 = make([]bool, len(origLines))
	for i, l := range origLines {
		switch {
		case strings.HasPrefix(l, ps1):
			isPS1[i] = true
			execLines[i] = l[len(ps1):]
		case strings.HasPrefix(l, ps2):
			execLines[i] = l[len(ps2):]
		default:
			execLines[i] = stripLeading(l, len(ps1))
		}
	}
	return execLines, isPS1
}

// directiveSplits implements spec.md §4.3 step 4: it returns the set of
// hard-break statement-start indices, unsorted and without the implicit 0
// unless a directive marked it (the caller sorts them and adds 0), and,
// for each, the directives that caused the break or were simply extracted
// from that statement's own first line.
func directiveSplits(dialect Dialect, execLines []string, ps1Linenos []int) ([]int, map[int][]Directive) {
	seen := make(map[int]bool)
	var breaks []int
	dirs := make(map[int][]Directive)

	mark := func(i int) {
		if !seen[i] {
			seen[i] = true
			breaks = append(breaks, i)
		}
	}

	for k, i := range ps1Linenos {
		if ds := dialect.extractDirectives(execLines[i]); len(ds) > 0 {
			mark(i)
			dirs[i] = ds
			// A directive-bearing statement ends its own Part: the next
			// statement starts a fresh one rather than inheriting the
			// directive (scenario F: a standalone directive comment must
			// not glue the statement that follows it to the one it
			// modifies).
			if k+1 < len(ps1Linenos) {
				mark(ps1Linenos[k+1])
			}
		}
	}

	for k := 0; k < len(ps1Linenos); k++ {
		i := ps1Linenos[k]
		if seen[i] {
			continue
		}
		j := len(execLines)
		if k+1 < len(ps1Linenos) {
			j = ps1Linenos[k+1]
		}
		block := strings.Join(execLines[i:j], "\n")
		if ds := dialect.extractDirectives(block); len(ds) > 0 {
			mark(i)
			dirs[i] = ds
			if k+1 < len(ps1Linenos) {
				mark(j)
			}
		}
	}

	return breaks, dirs
}

func sortedUniqueWithZero(breaks []int) []int {
	set := make(map[int]bool, len(breaks)+1)
	set[0] = true
	for _, b := range breaks {
		set[b] = true
	}
	out := make([]int, 0, len(set))
	for b := range set {
		out = append(out, b)
	}
	sort.Ints(out)
	return out
}

// makePart slices [s1,s2) out of execLines/origLines into a new Part.
func makePart(execLines, origLines []string, baseOffset, s1, s2 int, want []string, dirs []Directive) *Part {
	return &Part{
		ExecLines:  append([]string(nil), execLines[s1:s2]...),
		OrigLines:  append([]string(nil), origLines[s1:s2]...),
		WantLines:  want,
		LineOffset: baseOffset + s1,
		Directives: dirs,
	}
}

// stripLeading removes up to n leading bytes from s, never panicking on a
// shorter line.
func stripLeading(s string, n int) string {
	if n > len(s) {
		return ""
	}
	return s[n:]
}

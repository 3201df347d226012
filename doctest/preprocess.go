package doctest

import (
	"bufio"
	"strings"
)

// tabWidth is the column width tabs expand to before indentation is
// measured (spec.md §4.1: "tabs expanded"; width left unspecified upstream,
// 8 matches the target language's own gofmt convention and Python's
// str.expandtabs default that the original relied on).
const tabWidth = 8

// dedent expands tabs and strips the minimum common indentation from every
// non-blank line, exactly the preprocessing spec.md §4.1 requires happen
// before the docstring reaches the labeler (SPEC_FULL.md §12.2).
func dedent(s string) string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, expandTabs(sc.Text(), tabWidth))
	}

	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if ind := indentWidth(l); minIndent == -1 || ind < minIndent {
			minIndent = ind
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	for i, l := range lines {
		lines[i] = stripLeading(l, minIndent)
	}
	return strings.Join(lines, "\n")
}

// expandTabs replaces each tab in s with enough spaces to reach the next
// tabWidth-column stop, tracking column position across the line.
func expandTabs(s string, width int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - (col % width)
			for i := 0; i < n; i++ {
				b.WriteByte(' ')
			}
			col += n
		} else {
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

package doctest

import (
	"bufio"
	"fmt"
	"strings"
)

// kind classifies one physical docstring line (spec.md §4.1).
type kind int

const (
	kindText kind = iota
	kindSrc
	kindWant
)

func (k kind) String() string {
	switch k {
	case kindText:
		return "text"
	case kindSrc:
		return "dsrc"
	case kindWant:
		return "want"
	default:
		return "invalid"
	}
}

const (
	ps1 = ">>> "
	ps2 = "... "
)

// labeledLine pairs a classified kind with its raw physical line.
type labeledLine struct {
	kind kind
	line string
}

// lineCursor is the single shared iterator over a docstring's physical
// lines. It must be shared between the labeler's outer loop and its
// mid-statement continuation pulls (spec.md §9: "line iterator consumed
// in two places") so that a line consumed by one is never revisited by
// the other — the same property the teacher's scandown.BlockStack gets
// from owning a single scan cursor over its input buffer.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(docstring string) *lineCursor {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(docstring))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return &lineCursor{lines: lines}
}

func (c *lineCursor) next() (idx int, line string, ok bool) {
	if c.pos >= len(c.lines) {
		return 0, "", false
	}
	idx = c.pos
	line = c.lines[c.pos]
	c.pos++
	return idx, line, true
}

// label runs the Labeler stage: classify every physical line of docstring
// as TEXT, SRC, or WANT, folding multi-physical-line statements into
// repeated SRC rows (spec.md §4.1, §4.5).
func label(docstring string, dialect Dialect) ([]labeledLine, error) {
	cur := newLineCursor(docstring)
	var out []labeledLine

	state := kindText
	stateIndent := 0

	for {
		idx, line, ok := cur.next()
		if !ok {
			break
		}

		lineIndent := indentWidth(line)
		stripped := strings.TrimSpace(line)

		var next kind
		switch state {
		case kindText:
			if strings.HasPrefix(stripped, ps1) {
				next = kindSrc
			} else {
				next = kindText
			}

		case kindWant:
			switch {
			case stripped == "":
				next = kindText
			case strings.HasPrefix(stripped, ps1):
				next = kindSrc
			case lineIndent < stateIndent:
				next = kindText
			default:
				next = kindWant
			}

		case kindSrc:
			switch {
			case stripped == "" || lineIndent < stateIndent:
				next = kindText
			default:
				norm := line[stateIndent:]
				if strings.HasPrefix(norm, ps1) || strings.HasPrefix(norm, ps2) {
					if strings.TrimSpace(norm) == "..." {
						next = kindWant // bare "..." sentinel: output ellipsis, not a continuation
					} else {
						next = kindSrc
					}
				} else {
					next = kindWant
				}
			}
		}

		if next != state {
			switch next {
			case kindText:
				stateIndent = 0
			case kindSrc:
				stateIndent = lineIndent
			}
		}

		if next == kindSrc {
			lines, err := consumeStatement(cur, idx, line, stateIndent, dialect)
			if err != nil {
				return nil, err
			}
			for _, l := range lines {
				out = append(out, labeledLine{kindSrc, l})
			}
		} else {
			out = append(out, labeledLine{next, line})
		}

		state = next
	}

	return out, nil
}

// consumeStatement pulls additional physical lines from cur, starting
// from the already-observed startLine, until dialect's balance oracle
// reports the accumulated statement is syntactically complete. Every
// pulled line is appended to out, SRC-labeled by the caller.
func consumeStatement(cur *lineCursor, startIdx int, startLine string, stateIndent int, dialect Dialect) (out []string, err error) {
	norm := startLine[stateIndent:]
	out = append(out, startLine)
	parts := []string{norm[len(ps1):]}

	for !dialect.balanced(parts) {
		idx, line, ok := cur.next()
		if !ok {
			return nil, fmt.Errorf("ill-formed doctest: unterminated statement starting at line %d", startIdx+1)
		}

		var next string
		if len(line) >= stateIndent {
			next = line[stateIndent:]
		}
		trimmed := strings.TrimSpace(next)
		switch {
		case strings.HasPrefix(next, ps1) || strings.HasPrefix(next, ps2):
			parts = append(parts, next[len(ps1):])
		case trimmed == "":
			parts = append(parts, next)
		default:
			return nil, fmt.Errorf("bad indentation in doctest on line %d: %q", idx+1, line)
		}
		out = append(out, line)
	}

	return out, nil
}

// indentWidth returns the width, in spaces, of s's leading run of spaces.
// Tabs are assumed already expanded by dedent before labeling begins
// (spec.md §4.1: "tabs expanded").
func indentWidth(s string) int {
	n := 0
	for n < len(s) && s[n] == ' ' {
		n++
	}
	if n == len(s) {
		return 0 // blank (or all-space) line carries no indent of its own
	}
	return n
}

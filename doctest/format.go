package doctest

import (
	"fmt"
	"strings"

	"github.com/jcorbin/godoctest/internal/render"
)

// Format renders p as a human would see it in a terminal or doc listing
// (spec.md §6.2). Every exec line is shown prefixed by ">>> "; every want
// line is shown as is, without a prompt. When linenos is
// true, a zero-padded line number (width nDigits) precedes each exec line,
// and nDigits+1 spaces of matching width precede each want line. The first
// line number is startline+p.LineOffset; each subsequent source line
// increments by one. When colored is true the whole rendering is passed
// through internal/render's highlighter.
func (p *Part) Format(linenos, want bool, startline, nDigits int, colored bool) string {
	var buf strings.Builder

	lineno := startline + p.LineOffset
	for _, line := range p.ExecLines {
		if linenos {
			fmt.Fprintf(&buf, "%0*d ", nDigits, lineno)
			lineno++
		}
		buf.WriteString(ps1)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if want && len(p.WantLines) > 0 {
		gutter := ""
		if linenos {
			gutter = strings.Repeat(" ", nDigits+1)
		}
		for _, w := range p.WantLines {
			buf.WriteString(gutter)
			buf.WriteString(w)
			buf.WriteByte('\n')
		}
	}

	out := buf.String()
	if colored {
		out = render.Highlight(out)
	}
	return out
}

// Package directive extracts doctest directives from a fragment of Go
// source text.
//
// A directive is a single-line `//` comment of the shape:
//
//	// doctest: +SKIP
//	// doctest: -NORMALIZE_WHITESPACE
//
// It may share a line with code ("inline"), in which case the comment
// trails real statement text, or it may occupy a comment-only line
// ("block"). The doctest parser is oblivious to what a directive's name
// means; it only needs the name, its polarity, and whether it was inline.
package directive

import (
	"regexp"
	"strings"
)

// Directive is one parsed directive token.
type Directive struct {
	Name    string // e.g. "SKIP", "NORMALIZE_WHITESPACE"
	Enabled bool   // true for "+name", false for "-name"
	Inline  bool   // true if the comment trailed code on its line
}

func (d Directive) String() string {
	sign := "+"
	if !d.Enabled {
		sign = "-"
	}
	return "<Directive(" + sign + d.Name + ")>"
}

var directiveRe = regexp.MustCompile(`doctest:\s*([+-])([A-Za-z_][A-Za-z0-9_]*)`)

// Extract scans text line by line for `// doctest: (+|-)NAME` comments,
// returning every directive found in order.
func Extract(text string) []Directive {
	var out []Directive
	for _, line := range strings.Split(text, "\n") {
		ci := commentIndex(line)
		if ci < 0 {
			continue
		}
		comment := line[ci+2:]
		inline := strings.TrimSpace(line[:ci]) != ""
		for _, m := range directiveRe.FindAllStringSubmatch(comment, -1) {
			out = append(out, Directive{
				Name:    m[2],
				Enabled: m[1] == "+",
				Inline:  inline,
			})
		}
	}
	return out
}

// commentIndex finds the offset of a line's first `//` that isn't inside a
// quoted string or rune literal, so a URL like "http://example.com" in a
// doctest source line isn't mistaken for the start of a comment. It doesn't
// need to track raw `` `backtick` `` strings' lack of escaping precisely;
// source lines reaching here are already-dedented statement text, not
// multi-line literal interiors.
func commentIndex(line string) int {
	var quote byte
	esc := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			switch {
			case esc:
				esc = false
			case c == '\\' && quote != '`':
				esc = true
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '/':
			if i+1 < len(line) && line[i+1] == '/' {
				return i
			}
		}
	}
	return -1
}

// Extractor is the default directive.Extractor wired as doctest's
// DirectiveExtractor collaborator.
type Extractor struct{}

// Extract implements the doctest.DirectiveExtractor collaborator contract.
func (Extractor) Extract(text string) []Directive { return Extract(text) }

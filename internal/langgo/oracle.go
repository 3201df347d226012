// Package langgo implements the doctest parser's three host-language
// collaborators (balance oracle, statement dump, by extension the
// directive extractor lives in internal/directive) against Go itself,
// using go/scanner and go/parser — the real syntactic machinery for the
// language, not a hand-rolled approximation of it.
package langgo

import (
	"go/scanner"
	"go/token"
	"strings"
)

// Oracle implements the doctest balance oracle for Go source lines. It
// reports a line sequence as balanced once every bracket/paren/brace token
// has been closed and the scanner raised no lexical error (e.g. an
// unterminated raw string or rune literal) along the way.
//
// Oracle is intentionally built on go/scanner rather than go/parser: a
// candidate slice is very often a syntactically incomplete prefix of a
// statement (that's the whole point of calling it repeatedly while
// growing the slice), and go/parser raises hard errors on those prefixes
// where go/scanner happily tokenizes them and lets us watch bracket
// depth. This keeps each oracle call cheap, matching the "amortized
// linear in total lines" budget the calling parser expects.
type Oracle struct{}

// Balanced reports whether joining lines with newlines leaves no bracket,
// paren, or brace open and raises no lexical error. It does not otherwise
// check that the statements are complete: a line ending in a binary
// operator, for example, is reported balanced.
func (Oracle) Balanced(lines []string) bool {
	return Balanced(lines)
}

// Balanced is the free-function form of Oracle.Balanced.
func Balanced(lines []string) bool {
	src := strings.Join(lines, "\n")
	if strings.TrimSpace(src) == "" {
		return true
	}

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList
	var sc scanner.Scanner
	sc.Init(file, []byte(src), func(pos token.Position, msg string) {
		errs.Add(pos, msg)
	}, scanner.ScanComments)

	depth := 0
	for {
		_, tok, _ := sc.Scan()
		if tok == token.EOF {
			break
		}
		switch tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACK, token.RBRACE:
			depth--
		}
	}

	return depth == 0 && len(errs) == 0
}

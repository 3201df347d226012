package doctest

import (
	"github.com/jcorbin/godoctest/internal/directive"
	"github.com/jcorbin/godoctest/internal/langgo"
)

// Statement is one top-level host-language statement, as reported by a
// StatementParser: its syntactic Kind ("expr" for a bare expression,
// "stmt" for anything else) and its 1-based start line within the source
// it was parsed from.
type Statement = langgo.Statement

// Directive is one directive token extracted from a fragment of source,
// as reported by a DirectiveExtractor.
type Directive = directive.Directive

// BalanceOracle is the statement-balance collaborator from spec.md §6.1:
// it reports whether concatenating lines with newlines yields a
// syntactically complete sequence of zero or more top-level host-language
// statements.
type BalanceOracle interface {
	Balanced(lines []string) bool
}

// StatementParser is the AST-dump collaborator from spec.md §6.1: it
// returns one Statement per top-level statement found in source.
type StatementParser interface {
	Statements(source string) ([]Statement, error)
}

// DirectiveExtractor is the directive-extraction collaborator from
// spec.md §6.1: it returns every directive token found in text.
type DirectiveExtractor interface {
	Extract(text string) []Directive
}

// Dialect bundles the three external collaborators the parser depends on
// (spec.md §6.1), decoupling the Labeler/Packager from any one host
// language. The zero Dialect is invalid; use Go (the package default) or
// supply all three fields.
type Dialect struct {
	Oracle     BalanceOracle
	Statements StatementParser
	Directives DirectiveExtractor
}

// Go is the Dialect backing doctests whose host language is Go itself,
// implemented against go/scanner and go/parser (internal/langgo) plus the
// `// doctest: +NAME` comment convention (internal/directive).
var Go = Dialect{
	Oracle:     langgo.Oracle{},
	Statements: langgo.Statements{},
	Directives: directive.Extractor{},
}

func (d Dialect) balanced(lines []string) bool {
	return d.Oracle.Balanced(lines)
}

func (d Dialect) statements(source string) ([]Statement, error) {
	return d.Statements.Statements(source)
}

func (d Dialect) extractDirectives(text string) []Directive {
	return d.Directives.Extract(text)
}

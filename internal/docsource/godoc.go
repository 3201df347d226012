// Package docsource supplies doctest.Parse with docstrings pulled out of Go
// source (doc comments) and markdown files (fenced/indented code blocks). Neither
// front end is part of the parser itself (spec.md §1 scopes "docstring
// collection" out of doctest); this package is the caller spec.md assumes
// exists.
package docsource

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// GoComment is one Go doc comment that looks like it contains a doctest
// (it has a ">>> " line somewhere in its text).
type GoComment struct {
	Doc      string // comment text as ast.CommentGroup.Text returns it (comment markers removed)
	FilePath string
	Line     int // 1-based line of the comment's first line
}

// ExtractGo walks filename's parsed syntax tree for FuncDecl, TypeSpec, and
// top-level GenDecl doc comments, returning each one whose text contains a
// prompt line.
func ExtractGo(filePath string, src []byte) ([]GoComment, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filePath, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var out []GoComment
	ast.Inspect(file, func(n ast.Node) bool {
		var doc *ast.CommentGroup
		switch d := n.(type) {
		case *ast.FuncDecl:
			doc = d.Doc
		case *ast.GenDecl:
			doc = d.Doc
		case *ast.TypeSpec:
			doc = d.Doc
		}
		if doc == nil || !strings.Contains(doc.Text(), ">>> ") {
			return true
		}
		out = append(out, GoComment{
			Doc:      doc.Text(),
			FilePath: filePath,
			Line:     fset.Position(doc.Pos()).Line,
		})
		return true
	})
	return out, nil
}

// Package scandown scans CommonMark block structure. internal/docsource
// uses it to pull fenced and indented code blocks out of markdown files
// for doctest extraction, rather than for rendering back to markdown.
package scandown

import (
	"bufio"
	"io"
)

// Walk drives a BlockStack over r, calling visit once per scanned token with
// the block that token belongs to (its current head, per BlockStack.Head).
// This is the entry point internal/docsource uses to pull fenced and
// indented code out of a markdown file without needing to understand
// BlockStack's line-consumption internals directly — the same relationship
// cmd/poc's writeMarkdownInto/writeOutlineInto have to a raw blackfriday AST
// walk, but driven off the scanner's token stream instead of a parsed tree.
func Walk(r io.Reader, visit func(b Block, token []byte) error) error {
	var blocks BlockStack
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(blocks.Scan)

	for sc.Scan() {
		_, b, _ := blocks.Head()
		if err := visit(b, sc.Bytes()); err != nil {
			return err
		}
	}
	return sc.Err()
}

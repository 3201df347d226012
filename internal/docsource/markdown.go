package docsource

import (
	"io"
	"strings"

	"github.com/jcorbin/godoctest/scandown"
)

// MarkdownBlock is one fenced (or indented) code block from a markdown file
// whose content looks like it contains a doctest.
type MarkdownBlock struct {
	Text     string
	FilePath string
	Line     int // 1-based line of Text's first line (a fenced block's opening fence)
}

// ExtractMarkdown scans r for fenced/indented code blocks containing a
// ">>> " prompt line, using scandown.Walk to drive the block-structure
// scan rather than a full markdown AST parse (the prose around a doctest
// block is never needed here, only the code itself).
func ExtractMarkdown(filePath string, r io.Reader) ([]MarkdownBlock, error) {
	var (
		blocks    []MarkdownBlock
		cur       strings.Builder
		inFence   bool
		startLine int
		lineNo    int
	)

	flush := func() {
		if cur.Len() == 0 {
			return
		}
		text := cur.String()
		if strings.Contains(text, ">>> ") {
			blocks = append(blocks, MarkdownBlock{Text: text, FilePath: filePath, Line: startLine})
		}
		cur.Reset()
	}

	err := scandown.Walk(r, func(b scandown.Block, token []byte) error {
		fence := b.Type == scandown.Codefence || b.Type == scandown.Codeblock
		if fence != inFence {
			flush()
			if fence {
				startLine = lineNo + 1
			}
		}
		inFence = fence
		if fence {
			cur.Write(token)
		}
		lineNo += strings.Count(string(token), "\n")
		return nil
	})
	flush()
	return blocks, err
}

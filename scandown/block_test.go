package scandown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/scandown"
)

func TestBlockStack_FencedDoctest(t *testing.T) {
	input := "prose before\n\n```go\n>>> 1 + 1\n2\n```\n\nprose after\n"

	var types []scandown.BlockType
	var tokens []string
	err := scandown.Walk(strings.NewReader(input), func(b scandown.Block, token []byte) error {
		types = append(types, b.Type)
		tokens = append(tokens, string(token))
		return nil
	})
	require.NoError(t, err)

	require.Contains(t, types, scandown.Paragraph)
	require.Contains(t, types, scandown.Blank)
	require.Contains(t, types, scandown.Codefence)

	var fenced string
	for i, typ := range types {
		if typ == scandown.Codefence {
			fenced = tokens[i]
			break
		}
	}
	require.Contains(t, fenced, ">>> 1 + 1")
	require.Contains(t, fenced, "2")
}

func TestBlockStack_IndentedCodeblock(t *testing.T) {
	input := "prose\n\n    >>> 1 + 1\n    2\n"

	var types []scandown.BlockType
	err := scandown.Walk(strings.NewReader(input), func(b scandown.Block, token []byte) error {
		types = append(types, b.Type)
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, types, scandown.Codeblock)
}

func TestBlockStack_LazyParagraphContinuation(t *testing.T) {
	input := "a paragraph\ncontinued on the next line\n\nanother paragraph\n"

	var tokens []string
	err := scandown.Walk(strings.NewReader(input), func(b scandown.Block, token []byte) error {
		if b.Type == scandown.Paragraph {
			tokens = append(tokens, string(token))
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	require.Contains(t, tokens[0], "a paragraph")
	require.Contains(t, tokens[0], "continued on the next line")
	require.Contains(t, tokens[1], "another paragraph")
}

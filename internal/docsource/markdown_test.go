package docsource_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/internal/docsource"
)

const sampleMarkdown = "" +
	"# Title\n" +
	"\n" +
	"Some prose before the example.\n" +
	"\n" +
	"```go\n" +
	">>> 1 + 1\n" +
	"2\n" +
	"```\n" +
	"\n" +
	"Some prose with no code at all.\n" +
	"\n" +
	"```go\n" +
	"fmt.Println(\"no doctest here\")\n" +
	"```\n"

func TestExtractMarkdown(t *testing.T) {
	blocks, err := docsource.ExtractMarkdown("sample.md", strings.NewReader(sampleMarkdown))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Contains(t, blocks[0].Text, "1 + 1")
	require.Equal(t, "sample.md", blocks[0].FilePath)
}

func TestExtractMarkdown_NoBlocks(t *testing.T) {
	blocks, err := docsource.ExtractMarkdown("sample.md", strings.NewReader("just prose\n"))
	require.NoError(t, err)
	require.Empty(t, blocks)
}

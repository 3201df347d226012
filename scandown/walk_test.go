package scandown_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/scandown"
)

func TestWalk(t *testing.T) {
	var types []scandown.BlockType
	err := scandown.Walk(strings.NewReader("para one\n\n```\nfence\n```\n"), func(b scandown.Block, token []byte) error {
		types = append(types, b.Type)
		return nil
	})
	require.NoError(t, err)
	require.Contains(t, types, scandown.Codefence)
	require.Contains(t, types, scandown.Paragraph)
}

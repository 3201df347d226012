package docsource_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/internal/docsource"
)

const sampleGo = `package sample

// Add returns the sum of its arguments.
//
//	>>> Add(1, 2)
//	3
func Add(a, b int) int { return a + b }

// helper has no doctest.
func helper() {}

// Thing holds a value.
//
//	>>> t := Thing{Value: 1}
//	>>> t.Value
//	1
type Thing struct{ Value int }
`

func TestExtractGo(t *testing.T) {
	comments, err := docsource.ExtractGo("sample.go", []byte(sampleGo))
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Contains(t, comments[0].Doc, "Add(1, 2)")
	require.Contains(t, comments[1].Doc, "t.Value")
	require.Equal(t, "sample.go", comments[0].FilePath)
}

func TestExtractGo_SyntaxError(t *testing.T) {
	_, err := docsource.ExtractGo("bad.go", []byte("package sample\nfunc ("))
	require.Error(t, err)
}

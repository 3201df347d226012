package langgo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/internal/langgo"
)

func TestParseStatements(t *testing.T) {
	// fmt.Println(x) is syntactically a bare expression statement too, but
	// its printed side effect (not its return value) is what a want
	// compares against, so it classifies as "stmt", not "expr".
	stmts, err := langgo.ParseStatements("x := 1\nfmt.Println(x)")
	require.NoError(t, err)
	require.Equal(t, []langgo.Statement{
		{Kind: "stmt", Line: 1},
		{Kind: "stmt", Line: 2},
	}, stmts)
}

func TestParseStatements_BareExpr(t *testing.T) {
	stmts, err := langgo.ParseStatements("x := 1\nx + 1")
	require.NoError(t, err)
	require.Equal(t, []langgo.Statement{
		{Kind: "stmt", Line: 1},
		{Kind: "expr", Line: 2},
	}, stmts)
}

func TestParseStatements_MultilineValue(t *testing.T) {
	stmts, err := langgo.ParseStatements("x := []int{1, 2,\n\t3, 4}\nx[0]")
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, 1, stmts[0].Line)
	require.Equal(t, "expr", stmts[1].Kind)
	require.Equal(t, 3, stmts[1].Line)
}

func TestParseStatements_CallIsNotEvalFinal(t *testing.T) {
	stmts, err := langgo.ParseStatements("len(x)")
	require.NoError(t, err)
	require.Equal(t, "stmt", stmts[0].Kind)
}

func TestParseStatements_SyntaxError(t *testing.T) {
	_, err := langgo.ParseStatements("x := (")
	require.Error(t, err)
}

package socutil_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/internal/socutil"
)

func TestQuotedArgs_ScanArgs_RoundTrip(t *testing.T) {
	args := []string{"extract", "path with spaces/foo.go", "bar.md"}

	encoded := socutil.QuotedArgs(args)

	sc := bufio.NewScanner(bytes.NewReader(encoded))
	sc.Split(socutil.ScanArgs)

	var got []string
	for sc.Scan() {
		got = append(got, socutil.UnquoteArg(sc.Text()))
	}
	require.NoError(t, sc.Err())
	require.Equal(t, args, got)
}

func TestUnquoteArg(t *testing.T) {
	require.Equal(t, "hello", socutil.UnquoteArg("hello"))
	require.Equal(t, "john doe", socutil.UnquoteArg(`"john doe`))
	require.Equal(t, `say "hi"`, socutil.UnquoteArg(`"say \"hi\"`))
	require.Equal(t, "john doe", socutil.UnquoteArg(`'john doe`))
	require.Equal(t, "", socutil.UnquoteArg(""))
}

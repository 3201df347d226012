package doctest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/doctest"
)

func TestPart_Format(t *testing.T) {
	p := &doctest.Part{
		ExecLines:  []string{"x := 1", "fmt.Println(x)"},
		WantLines:  []string{"1"},
		LineOffset: 3,
	}

	require.Equal(t, ">>> x := 1\n>>> fmt.Println(x)\n1\n", p.Format(false, true, 0, 1, false))

	require.Equal(t, "4 >>> x := 1\n5 >>> fmt.Println(x)\n  1\n", p.Format(true, true, 1, 1, false))

	require.Equal(t, ">>> x := 1\n>>> fmt.Println(x)\n", p.Format(false, false, 0, 1, false))
}

func TestPart_Want(t *testing.T) {
	p := &doctest.Part{ExecLines: []string{"2 + 2"}}
	_, ok := p.Want()
	require.False(t, ok)

	p.WantLines = []string{"4"}
	want, ok := p.Want()
	require.True(t, ok)
	require.Equal(t, "4", want)
}

func TestPart_HasDirective(t *testing.T) {
	p := &doctest.Part{Directives: []doctest.Directive{{Name: "SKIP", Enabled: true}}}

	enabled, ok := p.HasDirective("SKIP")
	require.True(t, ok)
	require.True(t, enabled)

	_, ok = p.HasDirective("REQUIRES")
	require.False(t, ok)
}

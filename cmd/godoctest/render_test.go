package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRender_Plain(t *testing.T) {
	var out strings.Builder
	err := runRender(nil, strings.NewReader(">>> 2 + 2\n4\n"), &out)
	require.NoError(t, err)
	require.Equal(t, ">>> 2 + 2\n4\n", out.String())
}

func TestRunRender_HTML(t *testing.T) {
	var out strings.Builder
	err := runRender([]string{"--html"}, strings.NewReader("hello *world*\n"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "<em>world</em>")
}

func TestRunRender_BadFlag(t *testing.T) {
	var out strings.Builder
	err := runRender([]string{"--nope"}, strings.NewReader(""), &out)
	require.Error(t, err)
}
